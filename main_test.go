package sqlchain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type list = []string

func eq(t testing.TB, expected, actual any) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != `` {
		t.Fatalf("expected:\n%#v\nactual:\n%#v\ndiff (-expected +actual):\n%v", expected, actual, diff)
	}
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected function to panic, found no panic`)
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(`expected function to panic with a message containing %q, found %q`, msg, str)
	}
}

func panicsWith(t testing.TB, target error, fun func()) {
	t.Helper()
	val := catchAny(fun)

	err, _ := val.(error)
	if err == nil {
		t.Fatalf(`expected function to panic with an error, found %#v`, val)
	}
	if !errors.Is(err, target) {
		t.Fatalf(`expected function to panic with %v, found %v`, target, err)
	}
}

func catchAny(fun func()) (val any) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *any) { *ptr = recover() }

func dialects() map[string]func() Builder {
	return map[string]func() Builder{
		`mysql`:    func() Builder { return NewMysql() },
		`postgres`: func() Builder { return NewPostgres() },
		`oracle`:   func() Builder { return NewOracle() },
	}
}
