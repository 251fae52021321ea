package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  NewSourceError("history file not found", os.ErrNotExist),
			want: "[SOURCE_NOT_FOUND] history file not found: file does not exist",
		},
		{
			name: "without cause",
			err:  NewValidationError("target year out of range"),
			want: "[VALIDATION] target year out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewSourceError("history file not found", os.ErrNotExist)
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestIsType(t *testing.T) {
	src := NewSourceError("missing", os.ErrNotExist)
	wrapped := NewParsingError("outer", src)

	assert.True(t, IsType(src, ErrTypeSource))
	assert.False(t, IsType(src, ErrTypeStorage))
	// As finds the outermost AppError first.
	assert.True(t, IsType(wrapped, ErrTypeParsing))
	assert.False(t, IsType(stderrors.New("plain"), ErrTypeParsing))
}

func TestWithContext(t *testing.T) {
	err := NewStorageError("write failed", nil).
		WithContext("path", "out/daily_summary.csv").
		WithContext("table", "daily_summary")

	assert.Equal(t, "out/daily_summary.csv", err.Context["path"])
	assert.Equal(t, "daily_summary", err.Context["table"])
}
