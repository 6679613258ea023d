package naming

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/pkg/errcode"
)

// NamesFormatError is returned when a line of the names file has no
// "species:" part.
func NamesFormatError(lineNum int, line string) error {
	msg := `Expected ':' in line <em>%d</em> of the names file:
   %s`
	vars := []any{lineNum, line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NamesFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: expected ':' in name line %d: %s",
			fn.Name(), lineNum, line),
	}
}
