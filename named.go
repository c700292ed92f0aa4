package sqlchain

import (
	"sort"

	"github.com/mitranim/sqlp"
)

/*
Replaces named parameters of the form ":identifier" with the corresponding
values from the map, enclosed in single quotes. The keys must have the form
"identifier", without a leading ":". Parameters inside quoted strings or
comments are left as-is, and so are Postgres-style casts such as `::text`.

For example, this:

	Named(`zipcode > :lo and zipcode < :hi`, map[string]string{
		`lo`: `78005`,
		`hi`: `94203`,
	})

Is equivalent to this:

	`zipcode > '78005' and zipcode < '94203'`

This is simple literal substitution, not parameter binding: values are not
escaped.

Panics when: the code is malformed; the code has ordinal parameters such as
`$1`; a parameter doesn't have a corresponding argument; an argument doesn't
have a corresponding parameter. Used by `Builder.WhereNamed`.
*/
func Named(src string, args map[string]string) string {
	tokenizer := sqlp.Tokenizer{Source: src}
	used := make(map[string]struct{}, len(args))
	bui := makeBui(len(src))

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			panic(Err{
				Code:  ErrCodeUnexpectedParameter,
				While: `substituting named parameters`,
				Cause: errf(`expected only named params, got ordinal param %v`, node),
			})

		case sqlp.NodeNamedParam:
			key := string(node)
			val, ok := args[key]
			if !ok {
				panic(Err{
					Code:  ErrCodeMissingArgument,
					While: `substituting named parameters`,
					Cause: errf(`missing named argument %q`, key),
				})
			}
			used[key] = struct{}{}
			bui.Quote(val)

		default:
			node.Append(&bui.Text)
		}
	}

	if len(used) < len(args) {
		for _, key := range sortedKeys(args) {
			if _, ok := used[key]; !ok {
				panic(Err{
					Code:  ErrCodeUnusedArgument,
					While: `substituting named parameters`,
					Cause: errf(`unused named argument %q`, key),
				})
			}
		}
	}

	return bui.String()
}

func sortedKeys(src map[string]string) []string {
	out := make([]string, 0, len(src))
	for key := range src {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
