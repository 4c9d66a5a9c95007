package iobacdive

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gntraits/pkg/errcode"
)

func CredentialsError() error {
	msg := "BacDive credentials are not set. " +
		"Add <em>bacdive.user</em> and <em>bacdive.password</em> " +
		"to the config file"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BacDiveCredentialsError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: bacdive credentials missing", fn),
	}
}

func AuthError(err error) error {
	msg := "Cannot authenticate with BacDive"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BacDiveAuthError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: bacdive auth: %w", fn, err),
	}
}

func SearchError(species string, err error) error {
	msg := "Taxon search failed for <em>%s</em>"
	vars := []any{species}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BacDiveSearchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: taxon search %q: %w", fn, species, err),
	}
}

func FetchError(ids []int64, err error) error {
	msg := "Cannot fetch strain records"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BacDiveFetchError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: fetch %v: %w", fn, ids, err),
	}
}

func DecodeError(what string, err error) error {
	msg := "Cannot decode BacDive response"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BacDiveDecodeError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: decode %s: %w", fn, what, err),
	}
}

func CacheError(dir string, err error) error {
	msg := "Cannot open BacDive response cache in <em>%s</em>"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.BacDiveCacheError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: open cache %s: %w", fn, dir, err),
	}
}
