package ioharvest

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntraits/pkg/errcode"
)

func PipelineError(err error) error {
	msg := "Harvest pipeline failed"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.HarvestPipelineError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: pipeline: %w", fn, err),
	}
}
