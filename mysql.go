package sqlchain

/*
Default dialect, and the base that other dialects delegate to. Renders
pagination in the two-argument comma form `LIMIT <start>, <offset>`. The zero
value is ready to use.
*/
type Mysql struct{ state State }

var _ = Builder((*Mysql)(nil))

func NewMysql() *Mysql { return new(Mysql) }

// Implement `Builder`.
func (self *Mysql) Select(table string, fields ...string) Builder {
	self.beginSelect(table, fields)
	return self
}

// Implement `Builder`.
func (self *Mysql) SelectStruct(table string, dest any) Builder {
	self.beginSelect(table, structCols(dest))
	return self
}

// Implement `Builder`.
func (self *Mysql) Insert(table string, cols []string, vals []string) Builder {
	self.beginInsert(table, cols, vals)
	return self
}

// Implement `Builder`.
func (self *Mysql) Update(table string, sets ...Set) Builder {
	self.beginUpdate(table, sets)
	return self
}

// Implement `Builder`.
func (self *Mysql) UpdateStruct(table string, src any) Builder {
	self.beginUpdate(table, StructSets(src))
	return self
}

// Implement `Builder`.
func (self *Mysql) Delete(table string) Builder {
	self.beginDelete(table)
	return self
}

// Implement `Builder`.
func (self *Mysql) Where(field, value, op string) Builder {
	self.where(field, value, op)
	return self
}

// Implement `Builder`.
func (self *Mysql) WhereEq(field, value string) Builder {
	self.where(field, value, `=`)
	return self
}

// Implement `Builder`.
func (self *Mysql) WhereNamed(src string, args map[string]string) Builder {
	self.whereNamed(src, args)
	return self
}

// Implement `Builder`.
func (self *Mysql) Limit(start, offset int) Builder {
	self.limit(start, offset, appendLimitComma)
	return self
}

// Implement `Builder`.
func (self *Mysql) Render() string { return self.state.String() }

// Implement `Builder`.
func (self *Mysql) State() State { return self.state.Clone() }

func (self *Mysql) beginSelect(table string, fields []string) {
	bui := makeBui(len(`SELECT  FROM `) + len(table) + 16*len(fields))
	bui.Str(`SELECT `)
	bui.List(fields)
	bui.Str(` FROM `)
	bui.Str(table)
	self.state.begin(KindSelect, bui.String())
}

func (self *Mysql) beginInsert(table string, cols []string, vals []string) {
	if len(cols) != len(vals) {
		panic(ErrInvalidInput.while(`beginning insert statement`).because(
			errf(`got %v columns and %v values`, len(cols), len(vals)),
		))
	}

	bui := makeBui(len(`INSERT INTO  () VALUES ()`) + len(table) + 32*len(cols))
	bui.Str(`INSERT INTO `)
	bui.Str(table)
	bui.Str(` (`)
	bui.List(cols)
	bui.Str(`) VALUES (`)
	bui.QuoteList(vals)
	bui.Str(`)`)
	self.state.begin(KindInsert, bui.String())
}

func (self *Mysql) beginUpdate(table string, sets []Set) {
	bui := makeBui(len(`UPDATE  SET `) + len(table) + 32*len(sets))
	bui.Str(`UPDATE `)
	bui.Str(table)
	bui.Str(` SET `)
	for ind, set := range sets {
		if ind > 0 {
			bui.Str(`, `)
		}
		set.appendTo(&bui)
	}
	self.state.begin(KindUpdate, bui.String())
}

func (self *Mysql) beginDelete(table string) {
	self.state.begin(KindDelete, `DELETE FROM `+table)
}

func (self *Mysql) where(field, value, op string) {
	self.state.requireFilterable(`adding condition`)

	bui := makeBui(len(field) + len(op) + len(value) + 4)
	bui.Cond(field, op, value)
	self.state.addCond(bui.String())
}

func (self *Mysql) whereNamed(src string, args map[string]string) {
	self.state.requireFilterable(`adding named condition`)
	self.state.addCond(`(` + Named(src, args) + `)`)
}

/*
Shared by every dialect. Runs the guards, then replaces the pagination clause
with the output of the dialect-specific renderer.
*/
func (self *Mysql) limit(start, offset int, fun func(*bui, int, int)) {
	self.state.requirePageable(`setting limit`)

	bui := makeBui(64)
	fun(&bui, start, offset)
	self.state.setPage(bui.String())
}

func appendLimitComma(bui *bui, start, offset int) {
	bui.Str(`LIMIT `)
	bui.Int(start)
	bui.Str(`, `)
	bui.Int(offset)
}
