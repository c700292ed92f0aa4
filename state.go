package sqlchain

/*
Accumulates one in-progress statement. Owned by exactly one builder, replaced
(not merged) by every statement-initiating step, and read without mutation by
`State.String`.

  - `Kind` is set once by the initiating step.
  - `Base` is the primary clause, such as `SELECT a, b FROM t`.
  - `Conds` are rendered conditions in insertion order, joined with `AND`.
  - `Page` is the rendered pagination clause. Empty means absent.
*/
type State struct {
	Kind  Kind
	Base  string
	Conds []string
	Page  string
}

/*
Renders the final statement: the base clause, a `WHERE` clause joining the
conditions with `AND` (omitted when there are none), the pagination clause if
any, and the `;` terminator. Never fails and never mutates the state.
*/
func (self State) String() string {
	return bytesToMutableString(self.AppendTo(nil))
}

// Same as `State.String` but appends to the provided buffer.
func (self State) AppendTo(buf []byte) []byte {
	bui := bui{buf}
	bui.Grow(self.size())
	bui.Str(self.Base)

	for ind, cond := range self.Conds {
		if ind == 0 {
			bui.Str(` WHERE `)
		} else {
			bui.Str(` AND `)
		}
		bui.Str(cond)
	}

	if self.Page != `` {
		bui.Space()
		bui.Str(self.Page)
	}

	bui.Str(`;`)
	return bui.Text
}

// Copy that doesn't share the conditions with the original.
func (self State) Clone() State {
	if self.Conds != nil {
		self.Conds = append([]string(nil), self.Conds...)
	}
	return self
}

// Upper bound of the rendered length, used for preallocation.
func (self State) size() int {
	size := len(self.Base) + len(` `) + len(self.Page) + len(`;`)
	for _, cond := range self.Conds {
		size += len(` WHERE `) + len(cond)
	}
	return size
}

func (self *State) begin(kind Kind, base string) {
	*self = State{Kind: kind, Base: base}
}

func (self *State) requireFilterable(while string) {
	self.requireStatement(while)
	if !self.Kind.Filterable() {
		panic(ErrUnsupportedStep.while(while).because(
			errf(`%v statements don't support conditions`, self.Kind),
		))
	}
}

func (self *State) requirePageable(while string) {
	self.requireStatement(while)
	if !self.Kind.Pageable() {
		panic(ErrUnsupportedStep.while(while).because(
			errf(`%v statements don't support pagination`, self.Kind),
		))
	}
}

func (self *State) requireStatement(while string) {
	if self.Kind == KindNone {
		panic(ErrSequencing.while(while))
	}
}

func (self *State) addCond(cond string) { self.Conds = append(self.Conds, cond) }

func (self *State) setPage(page string) { self.Page = page }
