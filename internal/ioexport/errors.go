package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntraits/pkg/errcode"
)

func CSVError(path string, err error) error {
	msg := "Cannot write CSV output to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportCSVError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: write csv %s: %w", fn, path, err),
	}
}

func SQLiteError(path string, err error) error {
	msg := "Cannot write SQLite output to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportSQLiteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: write sqlite %s: %w", fn, path, err),
	}
}
