package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customError struct {
	Msg string
}

func (e customError) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("wrap non-nil error", func(t *testing.T) {
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.True(t, errors.Is(wrapped, baseErr))
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "wrapped"))
	})

	t.Run("wrap sentinel keeps classification", func(t *testing.T) {
		err := Wrap(Wrap(ErrNotFound, "user not found"), "failed to refresh")
		assert.True(t, Is(err, ErrNotFound))
		assert.False(t, Is(err, ErrUnauthorized))
	})
}

func TestAs(t *testing.T) {
	err := Wrap(customError{Msg: "custom"}, "context")

	var target customError
	require.True(t, As(err, &target))
	assert.Equal(t, "custom", target.Msg)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: ""},
		{name: "sentinel", err: ErrForbidden, expected: "forbidden"},
		{name: "wrapped", err: Wrap(ErrUnauthorized, "wrong password"), expected: "wrong password"},
		{
			name:     "double wrapped",
			err:      Wrap(Wrap(ErrInvalidInput, "username is required"), "login"),
			expected: "login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Message(tt.err))
		})
	}
}
