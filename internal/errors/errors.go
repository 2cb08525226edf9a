package errors

import (
	"errors"
	"fmt"
)

type (
	// String is a constant error.
	String string

	// StringF is a constant error whose text is a format string, filled
	// in at the call site with F.
	StringF string

	// Struct is a StringF after F has been applied. It keeps matching
	// the constant it came from under errors.Is, and unwraps any error
	// passed through a %w verb.
	Struct struct {
		e, rr error
	}
)

func (e String) Error() string { return string(e) }

func (e StringF) Error() string { return string(e) }

func (e StringF) F(v ...interface{}) Struct {
	return Struct{e: e, rr: fmt.Errorf(string(e), v...)}
}

func (e Struct) Error() string { return e.rr.Error() }

func (e Struct) Unwrap() error { return errors.Unwrap(e.rr) }

func (e Struct) Is(target error) bool {
	if e.e == target {
		return true
	}
	if werr := errors.Unwrap(e.rr); werr != nil {
		return errors.Is(werr, target)
	}
	return false
}
