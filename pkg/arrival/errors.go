package arrival

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/pkg/errcode"
)

// MalformedEntryError is returned when a line has fewer than six
// comma-separated parts.
func MalformedEntryError(line string) error {
	msg := "Malformed arrival entry: %s"
	vars := []any{line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArrivalFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: malformed arrival entry: %s",
			fn.Name(), line),
	}
}

// DescriptionError is returned when age, sex and species cannot be read.
func DescriptionError(segment string, err error) error {
	msg := "Unable to parse age/sex/species segment: <em>%s</em>"
	vars := []any{segment}
	if err == nil {
		err = errors.New("expected '<age> years old <sex> <species>'")
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ArrivalFormatError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse %q: %w",
			fn.Name(), segment, err),
	}
}

// WeightParseError is returned when the weight segment does not start
// with a number.
func WeightParseError(segment string, err error) error {
	msg := "Weight is not a number: <em>%s</em>"
	vars := []any{segment}
	if err == nil {
		err = errors.New("no digits")
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WeightParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse weight %q: %w",
			fn.Name(), segment, err),
	}
}
