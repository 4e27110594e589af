package kmsapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ClientConfig_validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    ClientConfig
		wantErr string
	}{
		{
			name: "valid config",
			give: ClientConfig{Region: "us-west-2"},
		},
		{
			name:    "missing region",
			give:    ClientConfig{AWSProfile: "default"},
			wantErr: "KMS region is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.give.validate()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_NewClient(t *testing.T) {
	t.Parallel()

	got, err := NewClient(ClientConfig{Region: "us-west-2"})
	require.NoError(t, err)
	require.NotNil(t, got)

	_, err = NewClient(ClientConfig{})
	require.ErrorContains(t, err, "invalid KMS config")
}
