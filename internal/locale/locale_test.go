package locale

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/pylink/internal/errs"
)

func TestTl(t *testing.T) {
	assert.Equal(t, "Unknown output format: yaml", Tl("err_unknown_format", "ignored {{.V0}}", "yaml"),
		"registered translation wins over the fallback")
	assert.Equal(t, "Hello, World", Tl("locale_test_unregistered", "Hello, {{.V0}}", "World"))
	assert.Equal(t, "Broken {{.V0", Tl("locale_test_unregistered", "Broken {{.V0", "x"))
}

func TestTr(t *testing.T) {
	assert.Equal(t, "Invalid value for --count flag: bad", Tr("command_flag_invalid_value", "--count", "bad"))
	assert.Equal(t, "locale_test_unregistered", Tr("locale_test_unregistered"))
}

func TestSet(t *testing.T) {
	assert.Equal(t, "en-US", Current())
	assert.Error(t, Set("xx-XX"))
	require.NoError(t, Set("en-US"))
}

func TestLocalizedErrors(t *testing.T) {
	inner := errors.New("inner")
	err := WrapInputError(inner, "locale_test_err", "Outer {{.V0}}", "value")
	assert.Equal(t, "Outer value", err.Error())
	assert.True(t, IsInputError(err))
	assert.True(t, HasError(err))
	assert.True(t, errors.Is(err, inner))

	err.AddTips("a tip")
	assert.Equal(t, []string{"a tip"}, ErrorTips(err))

	wrapped := WrapError(err, "locale_test_err2", "Second")
	assert.Equal(t, "Second: Outer value", JoinedErrorMessage(wrapped))
	assert.True(t, IsInputError(wrapped))
	assert.False(t, IsInputError(NewError("locale_test_err3", "Not input")))
	assert.False(t, IsInputError(nil))
}

func TestJoinedErrorMessageWithoutLocalizedErrors(t *testing.T) {
	assert.Equal(t, "plain", JoinedErrorMessage(errors.New("plain")))
}

func TestJoinedErrorMessageUserFacing(t *testing.T) {
	err := WrapError(errs.WrapUserFacing(errors.New("raw"), "Friendly message."), "locale_test_outer", "Outer")
	assert.Equal(t, "Outer: Friendly message.", JoinedErrorMessage(err))
}
