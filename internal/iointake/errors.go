package iointake

import (
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/pkg/errcode"
)

// ArrivalLineError adds position of a bad line to an error. When the
// original error is a *gn.Error its code and message are kept, so callers
// can still tell a malformed line from an unsupported species.
func ArrivalLineError(path string, lineNum int, err error) error {
	code := errcode.ArrivalLineError
	msg := "Cannot process line <em>%d</em> of <em>%s</em>"
	vars := []any{lineNum, path}

	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		code = gnErr.Code
		msg = gnErr.Msg + " (line <em>%d</em> of <em>%s</em>)"
		vars = append(slices.Clone(gnErr.Vars), lineNum, path)
	}

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: line %d of %s: %w",
			fn.Name(), lineNum, path, err),
	}
}
