package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := apperr.InvalidComposition("condiment has no beverage").WithMeta("condiment", "whip")

	wrapped := apperr.Wrap(base, "failed to price order")
	require.NotNil(t, wrapped)

	assert.Equal(t, apperr.CodeInvalidComposition, wrapped.Code)
	assert.True(t, apperr.IsInvalidComposition(wrapped))
	assert.Equal(t, "failed to price order: condiment has no beverage", wrapped.Error())
	assert.Equal(t, "whip", apperr.GetMeta(wrapped)["condiment"])
	assert.ErrorIs(t, wrapped, base)
}

func TestWrap_ForeignError(t *testing.T) {
	wrapped := apperr.Wrapf(stderrors.New("boom"), "render %s", "statistics")

	assert.Equal(t, apperr.CodeUnknown, wrapped.Code)
	assert.Equal(t, "render statistics: boom", wrapped.Error())
	assert.Nil(t, apperr.GetMeta(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, apperr.Wrap(nil, "nothing"))
	assert.Nil(t, apperr.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, apperr.WrapWithCode(nil, apperr.CodeValidation, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	err := apperr.WrapWithCode(apperr.NotFound("no such observer"), apperr.CodeValidation, "bad config")

	assert.True(t, apperr.IsValidation(err))
	assert.False(t, apperr.IsNotFound(err))
}

func TestIs_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", apperr.Validationf("size %q", "huge"))

	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, apperr.CodeValidation, apperr.GetCode(err))
	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(stderrors.New("plain")))
}
