package commands

import (
	"github.com/spf13/cobra"

	"github.com/alertcord/alertcord/internal/adapters/logger"
	"github.com/alertcord/alertcord/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Receive Alertmanager webhooks and relay them to Discord",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listen, _ := cmd.Flags().GetString("listen")
			logJSON, _ := cmd.Flags().GetBool("log-json")
			if !cmd.Flags().Changed("log-json") {
				logJSON = logger.DefaultJSON()
			}

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Listen:  listen,
				LogJSON: logJSON,
			})
		},
	}

	cmd.Flags().StringP("listen", "l", "", "Listen address (overrides the config file)")
	cmd.Flags().Bool("log-json", false, "Emit JSON logs instead of pretty output")
	return cmd
}
