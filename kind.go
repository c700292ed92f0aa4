package sqlchain

/*
Statement kind of a `State`. Set by the statement-initiating steps such as
`Builder.Select` and never changed afterwards. The zero value `KindNone` means
no statement is in progress.
*/
type Kind byte

const (
	KindNone Kind = iota
	KindSelect
	KindInsert
	KindUpdate
	KindDelete
)

// Implement `fmt.Stringer`.
func (self Kind) String() string {
	switch self {
	case KindNone:
		return `none`
	case KindSelect:
		return `select`
	case KindInsert:
		return `insert`
	case KindUpdate:
		return `update`
	case KindDelete:
		return `delete`
	default:
		return `unknown`
	}
}

// True if statements of this kind accept `where` conditions.
func (self Kind) Filterable() bool {
	return self == KindSelect || self == KindUpdate || self == KindDelete
}

// True if statements of this kind accept a row window.
func (self Kind) Pageable() bool { return self == KindSelect }
