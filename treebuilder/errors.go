package treebuilder

import (
	"fmt"
)

func (e Error) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("%s (mode %s)", e.Err, e.Mode)
	}
	return fmt.Sprintf("%s (mode %s) at token #%d: %s", e.Err, e.Mode, e.Index, e.Token)
}

func (e Error) Unwrap() error {
	return e.Err
}

func (ctx *buildCtx) error(err error) error {
	// If it's wrapped, just return as is
	if _, ok := err.(Error); ok {
		return err
	}
	return Error{
		Err:   err,
		Mode:  ctx.mode,
		Token: ctx.token,
		Index: ctx.index,
	}
}
