package sqlchain

/*
Dialect that renders pagination as
`OFFSET <offset> ROWS FETCH NEXT <start> ROWS ONLY`, the row-limiting clause
supported since Oracle 12c. Otherwise identical to `Postgres`.
*/
type Oracle struct{ base Mysql }

var _ = Builder((*Oracle)(nil))

func NewOracle() *Oracle { return new(Oracle) }

// Implement `Builder`.
func (self *Oracle) Select(table string, fields ...string) Builder {
	self.base.Select(table, fields...)
	return self
}

// Implement `Builder`.
func (self *Oracle) SelectStruct(table string, dest any) Builder {
	self.base.SelectStruct(table, dest)
	return self
}

// Implement `Builder`.
func (self *Oracle) Insert(table string, cols []string, vals []string) Builder {
	self.base.Insert(table, cols, vals)
	return self
}

// Implement `Builder`.
func (self *Oracle) Update(table string, sets ...Set) Builder {
	self.base.Update(table, sets...)
	return self
}

// Implement `Builder`.
func (self *Oracle) UpdateStruct(table string, src any) Builder {
	self.base.UpdateStruct(table, src)
	return self
}

// Implement `Builder`.
func (self *Oracle) Delete(table string) Builder {
	self.base.Delete(table)
	return self
}

// Implement `Builder`.
func (self *Oracle) Where(field, value, op string) Builder {
	self.base.Where(field, value, op)
	return self
}

// Implement `Builder`.
func (self *Oracle) WhereEq(field, value string) Builder {
	self.base.WhereEq(field, value)
	return self
}

// Implement `Builder`.
func (self *Oracle) WhereNamed(src string, args map[string]string) Builder {
	self.base.WhereNamed(src, args)
	return self
}

// Implement `Builder`. Overrides the base pagination syntax.
func (self *Oracle) Limit(start, offset int) Builder {
	self.base.limit(start, offset, appendFetchNext)
	return self
}

// Implement `Builder`.
func (self *Oracle) Render() string { return self.base.Render() }

// Implement `Builder`.
func (self *Oracle) State() State { return self.base.State() }

func appendFetchNext(bui *bui, start, offset int) {
	bui.Str(`OFFSET `)
	bui.Int(offset)
	bui.Str(` ROWS FETCH NEXT `)
	bui.Int(start)
	bui.Str(` ROWS ONLY`)
}
