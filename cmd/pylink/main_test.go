package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ActiveState/pylink/internal/errs"
	"github.com/ActiveState/pylink/internal/locale"
)

func TestArgsHaveVerbose(t *testing.T) {
	assert.True(t, argsHaveVerbose([]string{"pylink", "generate", "-v"}))
	assert.True(t, argsHaveVerbose([]string{"pylink", "--verbose", "cgo"}))
	assert.False(t, argsHaveVerbose([]string{"pylink", "generate"}))
	assert.False(t, argsHaveVerbose([]string{"pylink", "--", "-v"}))
}

func TestParseOutputFlags(t *testing.T) {
	flags := parseOutputFlags([]string{"pylink", "cgo", "--platform", "win32", "-o", "json", "--mono"})
	assert.Equal(t, "json", flags.Output)
	assert.True(t, flags.Mono)

	flags = parseOutputFlags([]string{"pylink", "--output=plain", "generate", "--help"})
	assert.Equal(t, "plain", flags.Output)

	flags = parseOutputFlags([]string{"pylink"})
	assert.Equal(t, "", flags.Output)
}

func TestUnwrapError(t *testing.T) {
	code, err := unwrapError(nil)
	assert.Equal(t, 0, code)
	assert.NoError(t, err)

	code, err = unwrapError(errs.Silence(errs.WrapExitCode(errs.New("quiet"), 3)))
	assert.Equal(t, 3, code)
	assert.NoError(t, err)

	inputErr := locale.NewInputError("err_test_input", "Bad input")
	code, err = unwrapError(inputErr)
	assert.Equal(t, 1, code)
	assert.Equal(t, inputErr, err)
	assert.Empty(t, locale.ErrorTips(err))

	code, err = unwrapError(errors.New("unexpected"))
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, locale.ErrorTips(err))
}
