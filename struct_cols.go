package sqlchain

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"time"

	"github.com/mitranim/refut"
)

const TagNameDb = `db`

/*
Takes a struct and returns the column names from its `db` tags, suitable for
`Builder.Select`. Also accepts the following inputs and automatically
dereferences them into a struct type:

  - Struct pointer.
  - Struct slice.
  - Struct slice pointer.

Nil slices and pointers are fine, as long as they carry a struct type. Fields
without a `db` tag, or tagged with `db:"-"`, are skipped. Embedded structs of
exported types are treated as part of the enclosing struct; embedded structs of
unexported types are skipped. Any other input causes a panic with
`ErrInvalidInput`.
*/
func Cols(dest any) []string { return structCols(dest) }

func structCols(dest any) []string {
	rtype := reflect.TypeOf(dest)
	if rtype != nil {
		rtype = refut.RtypeDeref(rtype)
	}
	if rtype != nil && rtype.Kind() == reflect.Slice {
		rtype = refut.RtypeDeref(rtype.Elem())
	}

	if rtype == nil || rtype.Kind() != reflect.Struct {
		panic(ErrInvalidInput.while(`generating struct columns for select clause`).because(
			errf(`expected struct, got %v`, rtype),
		))
	}

	var out []string
	err := refut.TraverseStructRtype(rtype, func(sfield reflect.StructField, _ []int) error {
		name := sfieldColumnName(sfield)
		if name != `` && sfield.PkgPath == `` {
			out = append(out, name)
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
	return out
}

/*
Scans a struct, converting fields tagged with `db` into assignments suitable
for `Builder.Update`. The input must be a struct or a struct pointer. A nil
pointer is fine and produces a nil result. Panics with `ErrInvalidInput` on
other inputs. Treats embedded structs of exported types as part of enclosing
structs and skips those of unexported types.

Values are converted to text:

  - nil pointers, nil interfaces, and `driver.Valuer` returning nil become
    `Set{Null: true}`.
  - `driver.Valuer` values are converted via their `.Value()`.
  - `time.Time` is formatted as RFC 3339 with nanoseconds.
  - `[]byte` is used as-is.
  - Everything else is formatted with `fmt.Sprint`.
*/
func StructSets(src any) []Set {
	rval := reflect.ValueOf(src)
	if !rval.IsValid() {
		panic(ErrInvalidInput.while(`traversing struct for DB fields`).because(
			errf(`expected struct, got nil`),
		))
	}

	rtype := refut.RtypeDeref(rval.Type())
	if rtype.Kind() != reflect.Struct {
		panic(ErrInvalidInput.while(`traversing struct for DB fields`).because(
			errf(`expected struct, got %v`, rtype),
		))
	}

	if refut.IsRvalNil(rval) {
		return nil
	}

	var out []Set
	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		name := sfieldColumnName(sfield)
		if name == `` || sfield.PkgPath != `` {
			return nil
		}

		val, err := fieldText(rval)
		if err != nil {
			return ErrInvalidInput.while(fmt.Sprintf(`converting field %q`, sfield.Name)).because(err)
		}
		if val == nil {
			out = append(out, Set{Field: name, Null: true})
		} else {
			out = append(out, Set{Field: name, Value: *val})
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
	return out
}

func sfieldColumnName(sfield reflect.StructField) string {
	name := refut.TagIdent(sfield.Tag.Get(TagNameDb))
	if name == `-` {
		return ``
	}
	return name
}

// Nil output means SQL null.
func fieldText(rval reflect.Value) (*string, error) {
	for rval.Kind() == reflect.Ptr || rval.Kind() == reflect.Interface {
		if rval.IsNil() {
			return nil, nil
		}
		if rval.Type().Implements(typeValuer) {
			break
		}
		rval = rval.Elem()
	}

	iface := rval.Interface()

	if valuer, ok := iface.(driver.Valuer); ok {
		val, err := valuer.Value()
		if err != nil {
			return nil, err
		}
		if val == nil {
			return nil, nil
		}
		iface = val
	}

	var out string
	switch val := iface.(type) {
	case string:
		out = val
	case []byte:
		out = string(val)
	case time.Time:
		out = val.Format(time.RFC3339Nano)
	default:
		out = fmt.Sprint(val)
	}
	return &out, nil
}

var typeValuer = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
