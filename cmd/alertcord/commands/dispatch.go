package commands

import (
	"github.com/spf13/cobra"

	"github.com/alertcord/alertcord/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Run the configured tool's debug build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Dispatch(cmd.Context(), domain.TargetBuild)
		},
	}
}

func (c *CLI) newReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release",
		Short: "Run the configured tool's optimized build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Dispatch(cmd.Context(), domain.TargetRelease)
		},
	}
}

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Build and run the project through the configured tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Dispatch(cmd.Context(), domain.TargetRun)
		},
	}
}
