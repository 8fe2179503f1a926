package main

import (
	"errors"

	"github.com/ActiveState/pylink/internal/constants"
	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/locale"
	"github.com/ActiveState/pylink/internal/logging"
)

func unwrapError(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var ee errs.Error
	stack := "not provided"
	if errors.As(err, &ee) {
		stack = ee.Stack().String()
	}

	// Log error if this isn't a user input error
	isInput := locale.IsInputError(err)
	if !isInput {
		logging.Error("Returning error:\n%s\nCreated at:\n%s", errs.Join(err, "\n").Error(), stack)
	}

	code := errs.UnwrapExitCode(err)

	if errs.IsSilent(err) {
		logging.Debug("Suppressing silent failure: %v", err.Error())
		return code, nil
	}

	if !isInput && !locale.HasError(err) && !errs.IsUserFacing(err) {
		err = errs.AddTips(err, locale.Tl("err_tip_verbose", "Run with --verbose or set {{.V0}}=true for more information.", constants.VerboseEnvVarName))
	}

	return code, err
}
