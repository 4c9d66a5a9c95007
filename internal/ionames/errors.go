package ionames

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntraits/pkg/errcode"
)

func NamesFileError(path string, err error) error {
	msg := "Cannot read abundance table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NamesFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read abundance table: %w",
			fn, err),
	}
}

func NamesColumnError(path, column string) error {
	msg := "Column <em>%s</em> is missing from <em>%s</em>"
	vars := []any{column, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NamesColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: column %q not in header of %s",
			fn, column, path),
	}
}

func NamesEmptyError(path string) error {
	msg := "No usable species names found in <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NamesEmptyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no usable species names in %s",
			fn, path),
	}
}
