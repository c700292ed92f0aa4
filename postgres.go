package sqlchain

/*
Dialect that renders pagination as `LIMIT <start> OFFSET <offset>`. Delegates
every other step to an inner `Mysql` and returns itself, so chains keep using
this dialect. The zero value is ready to use.
*/
type Postgres struct{ base Mysql }

var _ = Builder((*Postgres)(nil))

func NewPostgres() *Postgres { return new(Postgres) }

// Implement `Builder`.
func (self *Postgres) Select(table string, fields ...string) Builder {
	self.base.Select(table, fields...)
	return self
}

// Implement `Builder`.
func (self *Postgres) SelectStruct(table string, dest any) Builder {
	self.base.SelectStruct(table, dest)
	return self
}

// Implement `Builder`.
func (self *Postgres) Insert(table string, cols []string, vals []string) Builder {
	self.base.Insert(table, cols, vals)
	return self
}

// Implement `Builder`.
func (self *Postgres) Update(table string, sets ...Set) Builder {
	self.base.Update(table, sets...)
	return self
}

// Implement `Builder`.
func (self *Postgres) UpdateStruct(table string, src any) Builder {
	self.base.UpdateStruct(table, src)
	return self
}

// Implement `Builder`.
func (self *Postgres) Delete(table string) Builder {
	self.base.Delete(table)
	return self
}

// Implement `Builder`.
func (self *Postgres) Where(field, value, op string) Builder {
	self.base.Where(field, value, op)
	return self
}

// Implement `Builder`.
func (self *Postgres) WhereEq(field, value string) Builder {
	self.base.WhereEq(field, value)
	return self
}

// Implement `Builder`.
func (self *Postgres) WhereNamed(src string, args map[string]string) Builder {
	self.base.WhereNamed(src, args)
	return self
}

// Implement `Builder`. Overrides the base pagination syntax.
func (self *Postgres) Limit(start, offset int) Builder {
	self.base.limit(start, offset, appendLimitOffset)
	return self
}

// Implement `Builder`.
func (self *Postgres) Render() string { return self.base.Render() }

// Implement `Builder`.
func (self *Postgres) State() State { return self.base.State() }

func appendLimitOffset(bui *bui, start, offset int) {
	bui.Str(`LIMIT `)
	bui.Int(start)
	bui.Str(` OFFSET `)
	bui.Int(offset)
}
