/*
SQL Chain: tiny fluent builder for SQL statement text. Assembles a statement
from a sequence of steps (begin a statement, add conditions, add pagination)
and renders it as a single string terminated with `;`. Never executes SQL.

# Key Features

• One `Builder` interface, several dialects. `Mysql` is the default and the base
that other dialects delegate to; `Postgres` and `Oracle` override only the
pagination syntax.

• Chainable: every step returns the builder itself.

• Fail-fast: steps that make no sense for the current statement, such as
`Limit` before `Select` or `Where` on an insert, panic with `ErrSequencing` or
`ErrUnsupportedStep` at the offending step, leaving the state intact. `Catch`
converts these panics into errors.

• Reusable: each statement-initiating step replaces the builder's state.

• Supports converting structs into select columns and update assignments via
`db` tags, and raw condition fragments with `:named` parameters.

Not a goal: escaping. Values are enclosed in single quotes verbatim; sanitize
untrusted input before passing it.

# Examples

	bui := sqlchain.NewMysql()
	text := bui.Select(`users`, `login`, `password`, `gender`, `phone`).
		Where(`zipcode`, `78005`, `>`).
		Where(`zipcode`, `94203`, `<`).
		Limit(3, 8).
		Render()

Produces:

	SELECT login, password, gender, phone FROM users WHERE zipcode > '78005' AND zipcode < '94203' LIMIT 3, 8;

With `NewPostgres`, the same chain ends with `LIMIT 3 OFFSET 8;` instead. See
`New` and `ParseDialect` for choosing a dialect by name.
*/
package sqlchain
