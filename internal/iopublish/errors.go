package iopublish

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnzoo/pkg/errcode"
)

func EncodeReportError(format string, err error) error {
	msg := "Cannot encode report as <em>%s</em>"
	vars := []any{format}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.EncodeReportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot encode %s: %w",
			fn.Name(), format, err),
	}
}

func SQLiteExportError(path string, err error) error {
	msg := "Cannot export animals to SQLite file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SQLiteExportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: sqlite export to %s: %w",
			fn.Name(), path, err),
	}
}
