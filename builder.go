package sqlchain

/*
Chainable statement builder implemented by every dialect in this package. Every
step except `Render` and `State` returns the builder itself, allowing chains
such as:

	bui.Select(`users`, `login`, `phone`).
		Where(`zipcode`, `78005`, `>`).
		Limit(3, 8).
		Render()

Statement-initiating steps (`Select`, `SelectStruct`, `Insert`, `Update`,
`UpdateStruct`, `Delete`) replace the builder's state, which makes builders
reusable across unrelated statements. Other steps are guarded by the statement
kind and panic with `ErrSequencing` or `ErrUnsupportedStep` before touching the
state. Use `Catch` to convert such panics into errors.

Builders are not safe for concurrent use.
*/
type Builder interface {
	// Begins `SELECT <fields> FROM <table>`. Empty fields are rendered
	// literally.
	Select(table string, fields ...string) Builder

	// Same as `Select` but takes the fields from the `db` tags of the given
	// struct type. See `Cols`.
	SelectStruct(table string, dest any) Builder

	// Begins `INSERT INTO <table> (<cols>) VALUES (<vals>)`. Panics with
	// `ErrInvalidInput` if the counts differ.
	Insert(table string, cols []string, vals []string) Builder

	// Begins `UPDATE <table> SET <sets>`. Empty sets are rendered literally,
	// producing `UPDATE <table> SET ;`.
	Update(table string, sets ...Set) Builder

	// Same as `Update` but takes the assignments from the `db`-tagged fields of
	// the given struct. See `StructSets`. A nil struct pointer yields no
	// assignments, rendered like an empty `Update`.
	UpdateStruct(table string, src any) Builder

	// Begins `DELETE FROM <table>`.
	Delete(table string) Builder

	// Appends the condition `<field> <op> '<value>'`. The value is not
	// escaped.
	Where(field, value, op string) Builder

	// Shortcut for `Where(field, value, "=")`.
	WhereEq(field, value string) Builder

	// Appends a raw condition fragment, replacing `:name` parameters with
	// quoted values. See `Named`.
	WhereNamed(src string, args map[string]string) Builder

	// Sets or overwrites the dialect-specific pagination clause. Only
	// select statements support it.
	Limit(start, offset int) Builder

	// Renders the final statement. Never panics and never mutates the state.
	Render() string

	// Returns a copy of the current state.
	State() State
}

/*
Single `field = 'value'` assignment in an update statement. When `Null` is
true, `Value` is ignored and the assignment renders as `field = NULL`.
*/
type Set struct {
	Field string
	Value string
	Null  bool
}

func (self Set) appendTo(bui *bui) {
	if self.Null {
		bui.Str(self.Field)
		bui.Str(` = NULL`)
		return
	}
	bui.Cond(self.Field, `=`, self.Value)
}
