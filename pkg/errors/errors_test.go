package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("tour.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "tour.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "tour.yaml")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("marks[1].order", "duplicate order 2", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "marks[1].order", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate order")
}

func TestTargetErrorNamesMark(t *testing.T) {
	t.Parallel()

	err := NewTargetError("sidebar", 3, nil)

	var targetErr *TargetError
	require.ErrorAs(t, err, &targetErr)
	require.Equal(t, "sidebar", targetErr.Target)
	require.Equal(t, 3, targetErr.Order)
	require.Contains(t, err.Error(), `unknown target "sidebar"`)
}

func TestTargetErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("hidden")
	err := NewTargetError("compose", 1, underlying)

	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "hidden")
}
