package main

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) error {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	return root.Execute()
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"migrate", "token", "role"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestRoleCmd_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing flags",
			args:    []string{"role"},
			wantErr: "required flag(s)",
		},
		{
			name:    "bad user id",
			args:    []string{"role", "--user", "nobody", "--role", "librarian"},
			wantErr: "invalid user id",
		},
		{
			name:    "unknown role",
			args:    []string{"role", "--user", uuid.NewString(), "--role", "janitor"},
			wantErr: "unknown role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTokenCmd_RejectsBadUserID(t *testing.T) {
	err := execute("token", "--user", "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user id")
}
