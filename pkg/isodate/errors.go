package isodate

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/pkg/errcode"
)

// DateFormatError is returned when a string is not a YYYY-MM-DD date.
func DateFormatError(s string, err error) error {
	msg := "Invalid ISO date <em>%s</em>, expected YYYY-MM-DD"
	vars := []any{s}
	if err == nil {
		err = errors.New("incomplete date")
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DateFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid ISO date %q: %w",
			fn.Name(), s, err),
	}
}
