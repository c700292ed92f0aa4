package sqlchain

import "strings"

/*
Name of a dialect supported by `New`. The choice of dialect belongs to the
caller, for example a flag or a config value; this package never reads it from
the environment.
*/
type Dialect string

const (
	DialectMysql    Dialect = `mysql`
	DialectPostgres Dialect = `postgres`
	DialectOracle   Dialect = `oracle`
)

// Default dialect, used by `New` for an empty `Dialect`.
const DialectDefault = DialectMysql

var dialectAliases = map[string]Dialect{
	`mysql`:      DialectMysql,
	`mariadb`:    DialectMysql,
	`postgres`:   DialectPostgres,
	`postgresql`: DialectPostgres,
	`pg`:         DialectPostgres,
	`sqlite`:     DialectPostgres,
	`oracle`:     DialectOracle,
}

/*
Converts a user-provided dialect name, such as a config value, into a
`Dialect`. Case-insensitive; ignores surrounding whitespace; accepts common
aliases such as "pg" and "mariadb". Empty input yields `DialectDefault`.
*/
func ParseDialect(src string) (Dialect, error) {
	src = strings.ToLower(strings.TrimSpace(src))
	if src == `` {
		return DialectDefault, nil
	}

	val, ok := dialectAliases[src]
	if !ok {
		return ``, ErrUnknownDialect.while(`parsing dialect`).because(
			errf(`unknown dialect %q`, src),
		)
	}
	return val, nil
}

// Returns a new empty builder for the given dialect.
func New(dialect Dialect) (Builder, error) {
	switch dialect {
	case ``, DialectMysql:
		return NewMysql(), nil
	case DialectPostgres:
		return NewPostgres(), nil
	case DialectOracle:
		return NewOracle(), nil
	default:
		return nil, ErrUnknownDialect.while(`creating builder`).because(
			errf(`unknown dialect %q`, string(dialect)),
		)
	}
}
