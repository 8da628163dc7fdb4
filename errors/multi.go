package errors

import (
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements the Is method, all its errors are tested
// against the match as well.
func Append(errs ...error) error {
	var mul multiError
	for _, err := range errs {
		switch e := err.(type) {
		case nil:
			continue
		case multiError:
			mul = append(mul, e...)
		default:
			mul = append(mul, err)
		}
	}

	switch len(mul) {
	case 0:
		return nil
	case 1:
		return mul[0]
	default:
		return mul
	}
}

// multiError represents a group of errors. It is a flat structure and
// must never contain another multiError instance or a nil.
type multiError []error

func (errs multiError) Error() string {
	switch len(errs) {
	case 0:
		return "<nil>"
	case 1:
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Contains tests each clubbed error against the matcher.
func (errs multiError) Contains(is func(error) bool) bool {
	for _, err := range errs {
		if is(err) {
			return true
		}
	}
	return false
}
