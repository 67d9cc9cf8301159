package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd(wireApp).Execute()
}

func newRootCmd(wire wireFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "maxential",
		Short: "MAXential Thinking: branching, taggable thought chains over MCP",
		Long: "maxential runs the MAXential Thinking MCP server on stdio and lets you inspect, summarize and " +
			"export stored thinking sessions from the terminal. Without a subcommand it serves MCP.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(wire, func(app *app) error {
				return runServe(cmd, app)
			})
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(wire),
		newSessionsCmd(wire),
		newCallCmd(wire),
	)

	return rootCmd
}
