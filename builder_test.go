package sqlchain

import (
	"errors"
	"strings"
	"testing"
)

const (
	testSelectBase  = `SELECT login, password, gender, phone FROM users`
	testSelectConds = ` WHERE zipcode > '78005' AND zipcode < '94203'`
)

func testSelectChain(bui Builder) Builder {
	return bui.Select(`users`, `login`, `password`, `gender`, `phone`).
		Where(`zipcode`, `78005`, `>`).
		Where(`zipcode`, `94203`, `<`).
		Limit(3, 8)
}

func Test_select_chain(t *testing.T) {
	eq(t, testSelectBase+testSelectConds+` LIMIT 3, 8;`, testSelectChain(NewMysql()).Render())
	eq(t, testSelectBase+testSelectConds+` LIMIT 3 OFFSET 8;`, testSelectChain(NewPostgres()).Render())
	eq(t, testSelectBase+testSelectConds+` OFFSET 8 ROWS FETCH NEXT 3 ROWS ONLY;`, testSelectChain(NewOracle()).Render())
}

func Test_zero_value_builders(t *testing.T) {
	var my Mysql
	var pg Postgres
	var ora Oracle

	eq(t, `SELECT id FROM users LIMIT 1, 2;`, my.Select(`users`, `id`).Limit(1, 2).Render())
	eq(t, `SELECT id FROM users LIMIT 1 OFFSET 2;`, pg.Select(`users`, `id`).Limit(1, 2).Render())
	eq(t, `SELECT id FROM users OFFSET 2 ROWS FETCH NEXT 1 ROWS ONLY;`, ora.Select(`users`, `id`).Limit(1, 2).Render())
}

func Test_chain_returns_same_builder(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			bui := newBui()
			if bui.Select(`users`, `id`) != bui {
				t.Fatalf(`Select returned a different builder`)
			}
			if bui.WhereEq(`id`, `1`) != bui {
				t.Fatalf(`WhereEq returned a different builder`)
			}
			if bui.Limit(1, 2) != bui {
				t.Fatalf(`Limit returned a different builder`)
			}
			if bui.Delete(`users`) != bui {
				t.Fatalf(`Delete returned a different builder`)
			}
		})
	}
}

func Test_render_base_and_terminator(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			out := newBui().Select(`t`, `a`, `b`).WhereEq(`a`, `1`).Limit(0, 10).Render()

			if !strings.HasPrefix(out, `SELECT a, b FROM t`) {
				t.Fatalf(`expected base clause prefix, got %q`, out)
			}
			if !strings.HasSuffix(out, `;`) {
				t.Fatalf(`expected terminator, got %q`, out)
			}
		})
	}
}

func Test_condition_order(t *testing.T) {
	test := func(exp string, conds ...string) {
		t.Helper()
		bui := NewMysql().Select(`t`, `a`)
		for ind, cond := range conds {
			bui.Where(cond, string(rune('0'+ind)), `=`)
		}
		eq(t, exp, bui.Render())
	}

	test(`SELECT a FROM t;`)
	test(`SELECT a FROM t WHERE one = '0';`, `one`)
	test(`SELECT a FROM t WHERE one = '0' AND two = '1';`, `one`, `two`)
	test(
		`SELECT a FROM t WHERE three = '0' AND one = '1' AND two = '2' AND one = '3';`,
		`three`, `one`, `two`, `one`,
	)
}

func Test_dialects_differ_only_in_pagination(t *testing.T) {
	chain := func(bui Builder) string {
		return bui.Select(`orders`, `id`, `price`).
			WhereEq(`status`, `paid`).
			Where(`price`, `100`, `>=`).
			Limit(25, 50).
			Render()
	}

	my := chain(NewMysql())
	pg := chain(NewPostgres())

	eq(t, pg, strings.Replace(my, `LIMIT 25, 50;`, `LIMIT 25 OFFSET 50;`, 1))
	eq(t, my, strings.Replace(pg, `LIMIT 25 OFFSET 50;`, `LIMIT 25, 50;`, 1))
}

func Test_render_idempotent(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			bui := testSelectChain(newBui())
			first := bui.Render()
			state := bui.State()

			eq(t, first, bui.Render())
			eq(t, state, bui.State())
		})
	}
}

func Test_limit_overwrites(t *testing.T) {
	eq(
		t,
		`SELECT id FROM t LIMIT 5, 6;`,
		NewMysql().Select(`t`, `id`).Limit(1, 2).Limit(5, 6).Render(),
	)
	eq(
		t,
		`SELECT id FROM t LIMIT 5 OFFSET 6;`,
		NewPostgres().Select(`t`, `id`).Limit(1, 2).Limit(5, 6).Render(),
	)
}

func Test_limit_before_conditions(t *testing.T) {
	eq(
		t,
		`SELECT id FROM t WHERE id > '3' LIMIT 1, 2;`,
		NewMysql().Select(`t`, `id`).Limit(1, 2).Where(`id`, `3`, `>`).Render(),
	)
}

func Test_empty_fields(t *testing.T) {
	eq(t, `SELECT  FROM users;`, NewMysql().Select(`users`).Render())
	eq(t, `SELECT  FROM users;`, NewPostgres().Select(`users`, list{}...).Render())
}

func Test_values_not_escaped(t *testing.T) {
	eq(
		t,
		`SELECT id FROM t WHERE name = 'o'brien';`,
		NewMysql().Select(`t`, `id`).WhereEq(`name`, `o'brien`).Render(),
	)
}

func Test_insert(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			eq(
				t,
				`INSERT INTO users (login, phone) VALUES ('joe', '555');`,
				newBui().Insert(`users`, list{`login`, `phone`}, list{`joe`, `555`}).Render(),
			)
		})
	}

	panicsWith(t, ErrInvalidInput, func() {
		NewMysql().Insert(`users`, list{`login`, `phone`}, list{`joe`})
	})
}

func Test_update(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			eq(
				t,
				`UPDATE users SET phone = '555', gender = NULL WHERE login = 'joe';`,
				newBui().
					Update(`users`, Set{Field: `phone`, Value: `555`}, Set{Field: `gender`, Null: true}).
					WhereEq(`login`, `joe`).
					Render(),
			)
		})
	}
}

func Test_update_empty_sets(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			eq(t, `UPDATE users SET ;`, newBui().Update(`users`).Render())
			eq(t, `UPDATE users SET  WHERE id = '1';`, newBui().Update(`users`).WhereEq(`id`, `1`).Render())
		})
	}
}

func Test_delete(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			eq(t, `DELETE FROM users;`, newBui().Delete(`users`).Render())
			eq(
				t,
				`DELETE FROM users WHERE age < '18' AND banned = 'true';`,
				newBui().Delete(`users`).Where(`age`, `18`, `<`).WhereEq(`banned`, `true`).Render(),
			)
		})
	}
}

func Test_sequencing_errors(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			panicsWith(t, ErrSequencing, func() { newBui().WhereEq(`id`, `1`) })
			panicsWith(t, ErrSequencing, func() { newBui().Where(`id`, `1`, `>`) })
			panicsWith(t, ErrSequencing, func() { newBui().WhereNamed(`id = :id`, map[string]string{`id`: `1`}) })
			panicsWith(t, ErrSequencing, func() { newBui().Limit(1, 2) })
		})
	}
}

func Test_unsupported_step_errors(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			panicsWith(t, ErrUnsupportedStep, func() { newBui().Delete(`t`).Limit(1, 2) })
			panicsWith(t, ErrUnsupportedStep, func() { newBui().Update(`t`, Set{`a`, `b`, false}).Limit(1, 2) })
			panicsWith(t, ErrUnsupportedStep, func() { newBui().Insert(`t`, list{`a`}, list{`b`}).Limit(1, 2) })
			panicsWith(t, ErrUnsupportedStep, func() { newBui().Insert(`t`, list{`a`}, list{`b`}).WhereEq(`a`, `b`) })
		})
	}

	panics(t, `delete statements don't support pagination`, func() {
		NewMysql().Delete(`t`).Limit(1, 2)
	})
	panics(t, `insert statements don't support conditions`, func() {
		NewMysql().Insert(`t`, nil, nil).WhereEq(`a`, `b`)
	})
}

func Test_rejected_step_keeps_state(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			bui := newBui().Delete(`users`).WhereEq(`id`, `1`)
			before := bui.State()

			panicsWith(t, ErrUnsupportedStep, func() { bui.Limit(1, 2) })
			eq(t, before, bui.State())
			eq(t, `DELETE FROM users WHERE id = '1';`, bui.Render())

			panicsWith(t, ErrMissingArgument, func() { bui.WhereNamed(`id = :id`, nil) })
			eq(t, before, bui.State())
		})
	}
}

func Test_builder_reuse(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			bui := testSelectChain(newBui())
			bui.Delete(`sessions`).WhereEq(`user_id`, `7`)

			eq(t, `DELETE FROM sessions WHERE user_id = '7';`, bui.Render())
			eq(t, State{
				Kind:  KindDelete,
				Base:  `DELETE FROM sessions`,
				Conds: list{`user_id = '7'`},
			}, bui.State())

			bui.Select(`users`, `id`)
			eq(t, `SELECT id FROM users;`, bui.Render())
		})
	}
}

func Test_State_is_a_copy(t *testing.T) {
	bui := NewMysql().Select(`t`, `id`).WhereEq(`a`, `1`)
	state := bui.State()
	state.Conds[0] = `mutated`

	eq(t, `SELECT id FROM t WHERE a = '1';`, bui.Render())
}

func Test_empty_builder_render(t *testing.T) {
	for name, newBui := range dialects() {
		t.Run(name, func(t *testing.T) {
			eq(t, `;`, newBui().Render())
		})
	}
}

func Test_Catch(t *testing.T) {
	bui := NewPostgres()

	text, err := Catch(func() string {
		return bui.Select(`users`, `id`).WhereEq(`id`, `10`).Limit(1, 0).Render()
	})
	eq(t, nil, err)
	eq(t, `SELECT id FROM users WHERE id = '10' LIMIT 1 OFFSET 0;`, text)

	text, err = Catch(func() string {
		return bui.Delete(`users`).Limit(1, 0).Render()
	})
	eq(t, ``, text)
	if !errors.Is(err, ErrUnsupportedStep) {
		t.Fatalf(`expected %v, got %v`, ErrUnsupportedStep, err)
	}

	panics(t, `non-error panic`, func() {
		_, _ = Catch(func() string { panic(`non-error panic`) })
	})
}
