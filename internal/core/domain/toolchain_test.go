package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alertcord/alertcord/internal/core/domain"
)

func TestToolchain_Argv(t *testing.T) {
	tc := domain.DefaultToolchain()

	tests := []struct {
		name    string
		target  domain.Target
		want    []string
		wantErr error
	}{
		{name: "build", target: domain.TargetBuild, want: []string{"cargo", "build"}},
		{name: "release", target: domain.TargetRelease, want: []string{"cargo", "build", "--release"}},
		{name: "run", target: domain.TargetRun, want: []string{"cargo", "run"}},
		{name: "unknown", target: domain.Target("test"), wantErr: domain.ErrUnknownTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tc.Argv(tt.target)
			// String check for robustness with zerr wrapping.
			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToolchain_Argv_Invalid(t *testing.T) {
	t.Run("missing tool", func(t *testing.T) {
		tc := domain.Toolchain{Build: []string{"build"}}
		_, err := tc.Argv(domain.TargetBuild)
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrInvalidToolchain.Error())
	})

	t.Run("missing arguments", func(t *testing.T) {
		tc := domain.Toolchain{Tool: "cargo"}
		_, err := tc.Argv(domain.TargetRelease)
		require.Error(t, err)
		require.ErrorContains(t, err, domain.ErrInvalidToolchain.Error())
	})
}

func TestConfig_ValidateWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "valid https", url: "https://discord.com/api/webhooks/1/abc"},
		{name: "valid http", url: "http://localhost:8080/hook"},
		{name: "empty", url: "", wantErr: domain.ErrWebhookNotConfigured},
		{name: "wrong scheme", url: "ftp://discord.com/hook", wantErr: domain.ErrInvalidWebhookURL},
		{name: "no host", url: "https://", wantErr: domain.ErrInvalidWebhookURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.Config{WebhookURL: tt.url}
			err := cfg.ValidateWebhookURL()
			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}
