// Package config provides the configuration loader for alertcord.
package config

import (
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/alertcord/alertcord/internal/core/domain"
	"github.com/alertcord/alertcord/internal/core/ports"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the configuration for the given working directory.
// Missing file and missing sections fall back to defaults. The
// DISCORD_WEBHOOK_URL environment variable overrides the file's webhook URL.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path := l.DiscoverPath(cwd); path != "" {
		var file File
		if err := readAndUnmarshalYAML(path, &file); err != nil {
			return nil, err
		}
		if err := apply(&cfg, file); err != nil {
			return nil, zerr.With(err, "path", path)
		}
	}

	if env := strings.TrimSpace(os.Getenv(domain.EnvWebhookURL)); env != "" {
		cfg.WebhookURL = env
	}
	cfg.WebhookURL = strings.TrimSpace(cfg.WebhookURL)

	return &cfg, nil
}

// DiscoverPath walks up from cwd and returns the path of the nearest
// alertcord.yaml, or "" when none exists.
func (l *Loader) DiscoverPath(cwd string) string {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return ""
		}
		currentDir = parentDir
	}
}

func apply(cfg *domain.Config, file File) error {
	if file.Server.Listen != "" {
		if _, _, err := net.SplitHostPort(file.Server.Listen); err != nil {
			return zerr.Wrap(err, domain.ErrInvalidListenAddr.Error())
		}
		cfg.Listen = file.Server.Listen
	}

	if file.Discord.WebhookURL != "" {
		cfg.WebhookURL = file.Discord.WebhookURL
	}

	if file.Discord.SuppressionWindow != "" {
		window, err := time.ParseDuration(file.Discord.SuppressionWindow)
		if err != nil {
			return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		}
		if window < 0 {
			return zerr.With(domain.ErrConfigParseFailed, "suppression_window", file.Discord.SuppressionWindow)
		}
		cfg.SuppressionWindow = window
	}

	// Empty toolchain fields keep their defaults so a partial override stays
	// valid.
	if file.Toolchain.Tool != "" {
		cfg.Toolchain.Tool = file.Toolchain.Tool
	}
	if len(file.Toolchain.Build) > 0 {
		cfg.Toolchain.Build = file.Toolchain.Build
	}
	if len(file.Toolchain.Release) > 0 {
		cfg.Toolchain.Release = file.Toolchain.Release
	}
	if len(file.Toolchain.Run) > 0 {
		cfg.Toolchain.Run = file.Toolchain.Run
	}
	if file.Toolchain.TargetDir != "" {
		cfg.Toolchain.TargetDir = file.Toolchain.TargetDir
	}

	return nil
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path discovered by walking up from cwd
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
