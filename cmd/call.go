package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errToolFailed = errors.New("tool call failed")

func newCallCmd(wire wireFunc) *cobra.Command {
	var sessionID string

	callCmd := &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Run one thinking tool outside MCP and print its result",
		Long: "call runs a single tool the way an MCP client would. Pass --session to load a stored " +
			"session first so the call continues it.",
		Example: `  maxential call think '{"thought": "start with the constraints"}'
  maxential call --session 6f1c... visualize '{"format": "ascii"}'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments := map[string]any{}
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &arguments); err != nil {
					return fmt.Errorf("parse tool arguments: %w", err)
				}
			}

			return withApp(wire, func(app *app) error {
				ctx := cmd.Context()
				if sessionID != "" {
					loaded := app.dispatcher.Call(ctx, "session_load", map[string]any{"id": sessionID})
					if loaded.IsError {
						_, _ = fmt.Fprintln(cmd.OutOrStdout(), loaded.Text)
						return fmt.Errorf("%w: session_load", errToolFailed)
					}
				}

				result := app.dispatcher.Call(ctx, args[0], arguments)
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), result.Text); err != nil {
					return err
				}
				if result.IsError {
					return fmt.Errorf("%w: %s", errToolFailed, args[0])
				}
				return nil
			})
		},
	}

	callCmd.Flags().StringVar(&sessionID, "session", "", "Load this stored session before the call")
	return callCmd
}
