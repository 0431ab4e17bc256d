package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := userInputErrorf("could not find package %s", "foo")

	assert.True(t, errors.Is(err, ErrUserInput))
	assert.False(t, errors.Is(err, ErrRegistry))
	assert.Equal(t, "could not find package foo", err.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := registryErrorf(cause, "could not fetch registry '%s'", "https://example.org/index.json")

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrRegistry)
	assert.Equal(t, "could not fetch registry 'https://example.org/index.json': connection refused", err.Error())
}

func TestError_EmptyMessageUsesKind(t *testing.T) {
	assert.Equal(t, "not supported", (&Error{Kind: KindNotSupported}).Error())
	assert.Equal(t, "error", ErrorKind(0).String())
}

func TestError_Kinds(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{configurationErrorf("bad"), ErrConfiguration},
		{installationErrorf("bad"), ErrInstallation},
		{notSupportedErrorf("bad"), ErrNotSupported},
	}

	for _, tt := range tests {
		t.Run(tt.sentinel.Error(), func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}
