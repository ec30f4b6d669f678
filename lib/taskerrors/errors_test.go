package taskerrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	cause := errors.New("execution reverted")

	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{
			name:    "wrapped remote rejection",
			err:     Wrap(ErrRemoteRejection, cause, "failed call to registerAdminViaOwner"),
			kind:    ErrRemoteRejection,
			message: "remote rejection: failed call to registerAdminViaOwner: execution reverted",
		},
		{
			name:    "new validation error",
			err:     New(ErrValidation, "invalid token address: %s", "0x12"),
			kind:    ErrValidation,
			message: "validation error: invalid token address: 0x12",
		},
		{
			name:    "configuration error wrapped again",
			err:     errors.Wrap(New(ErrConfiguration, "network %s not found in config", "mars"), "claim-admin"),
			kind:    ErrConfiguration,
			message: "claim-admin: configuration error: network mars not found in config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.kind))
			assert.Equal(t, tt.kind, Kind(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestKindDoesNotCrossMatch(t *testing.T) {
	err := New(ErrAuthorizationMismatch, "CCIP admin mismatch")
	assert.False(t, errors.Is(err, ErrRemoteRejection))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Nil(t, Kind(errors.New("plain")))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrRemoteRead, cause, "failed call to getCCIPAdmin")
	assert.True(t, errors.Is(err, cause))
	assert.Nil(t, Wrap(ErrRemoteRead, nil, "ignored"))

	err = Wrapf(ErrRemoteRejection, cause, "grant of %s role failed", "minter")
	assert.Equal(t, "remote rejection: grant of minter role failed: connection refused", err.Error())
	assert.Nil(t, Wrapf(ErrRemoteRejection, nil, "ignored %d", 1))
}
