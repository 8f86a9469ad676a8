package margins_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/margins"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := margins.Errorf(margins.ENOTFOUND, "export %q not found", "test")

	assert.Equal(t, margins.ENOTFOUND, margins.ErrorCode(err))
	assert.Equal(t, "export \"test\" not found", margins.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, margins.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, margins.EINTERNAL, margins.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, margins.ErrorMessage(nil))
}
