package errors

import (
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf_CodedTracer(t *testing.T) {
	err := NewTracer("bad credentials").WithCode(ErrInvalidCredentials)

	assert.Equal(t, ErrInvalidCredentials, CodeOf(err))
}

func TestCodeOf_CodeSurvivesWrapping(t *testing.T) {
	inner := NewTracer("publish failed").WithCode(TradePublishError)
	outer := fmt.Errorf("engine: %w", inner)

	assert.Equal(t, TradePublishError, CodeOf(outer))
}

func TestCodeOf_UncodedErrorDefaultsToInternal(t *testing.T) {
	assert.Equal(t, GeneralInternalServerError, CodeOf(fmt.Errorf("boom")))
	assert.Equal(t, GeneralInternalServerError, CodeOf(NewTracer("no code")))
	assert.Equal(t, GeneralInternalServerError, CodeOf(nil))
}

func TestTracer_WrapPreservesStackTrace(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NewTracer("wrapped").Wrap(cause)

	require.NotNil(t, err.StackTrace())
	assert.Equal(t, "wrapped", err.Error())
}

func TestTracerFromError_KeepsExistingStack(t *testing.T) {
	cause := pkgerrors.New("already stacked")
	err := TracerFromError(cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.NotNil(t, err.StackTrace())
}
