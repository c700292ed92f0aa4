package sqlchain

import (
	"errors"
	"fmt"
)

/*
Error codes. You probably shouldn't use this directly; instead, use the `Err`
variables with `errors.Is`.
*/
type ErrCode string

const (
	ErrCodeUnknown             ErrCode = ""
	ErrCodeSequencing          ErrCode = "Sequencing"
	ErrCodeUnsupportedStep     ErrCode = "UnsupportedStep"
	ErrCodeInvalidInput        ErrCode = "InvalidInput"
	ErrCodeMissingArgument     ErrCode = "MissingArgument"
	ErrCodeUnexpectedParameter ErrCode = "UnexpectedParameter"
	ErrCodeUnusedArgument      ErrCode = "UnusedArgument"
	ErrCodeUnknownDialect      ErrCode = "UnknownDialect"
)

/*
Use blank error variables to detect error types:

	if errors.Is(err, sqlchain.ErrSequencing) {
		// Handle specific error.
	}

Note that errors returned by this package can't be compared via `==` because
they may include additional details about the circumstances. When compared by
`errors.Is`, they compare `.Cause` and fall back on `.Code`.
*/
var (
	ErrSequencing          Err = Err{Code: ErrCodeSequencing, Cause: errors.New(`no statement in progress`)}
	ErrUnsupportedStep     Err = Err{Code: ErrCodeUnsupportedStep, Cause: errors.New(`step not supported by statement kind`)}
	ErrInvalidInput        Err = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
	ErrMissingArgument     Err = Err{Code: ErrCodeMissingArgument, Cause: errors.New(`missing argument`)}
	ErrUnexpectedParameter Err = Err{Code: ErrCodeUnexpectedParameter, Cause: errors.New(`unexpected parameter`)}
	ErrUnusedArgument      Err = Err{Code: ErrCodeUnusedArgument, Cause: errors.New(`unused argument`)}
	ErrUnknownDialect      Err = Err{Code: ErrCodeUnknownDialect, Cause: errors.New(`unknown dialect`)}
)

// Type of errors returned by this package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Implement `error`.
func (self Err) Error() string {
	if self == (Err{}) {
		return ``
	}
	msg := `[sqlchain]`
	if self.Code != ErrCodeUnknown {
		msg += fmt.Sprintf(` %s`, self.Code)
	} else {
		msg += ` error`
	}
	if self.While != `` {
		msg += fmt.Sprintf(` while %v`, self.While)
	}
	if self.Cause != nil {
		msg += `: ` + self.Cause.Error()
	}
	return msg
}

// Implement a hidden interface in "errors".
func (self Err) Is(other error) bool {
	if self.Cause != nil && errors.Is(self.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code != ErrCodeUnknown && err.Code == self.Code
}

// Implement a hidden interface in "errors".
func (self Err) Unwrap() error {
	return self.Cause
}

func (self Err) while(while string) Err {
	self.While = while
	return self
}

func (self Err) because(cause error) Err {
	self.Cause = cause
	return self
}

func errf(pat string, args ...any) error { return fmt.Errorf(pat, args...) }

/*
Runs the given function, usually a chain of builder steps ending with
`.Render()`, converting a panic with an `error` into a returned error. Panics
with non-error values are re-raised. Meant for apps that insist on
errors-as-values:

	text, err := sqlchain.Catch(func() string {
		return bui.Select(`users`, `id`).WhereEq(`id`, `10`).Render()
	})
*/
func Catch(fun func() string) (out string, err error) {
	defer rec(&err)
	out = fun()
	return
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}
