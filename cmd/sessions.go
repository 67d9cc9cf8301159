package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/maxential-thinking/internal/adapters/render/chain"
	sessionsrender "github.com/bnema/maxential-thinking/internal/adapters/render/sessions"
	"github.com/bnema/maxential-thinking/internal/application"
	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionsCmd(wire wireFunc) *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect stored thinking sessions",
	}

	sessionsCmd.AddCommand(
		newSessionsListCmd(wire),
		newSessionsSummaryCmd(wire),
		newSessionsExportCmd(wire),
		newSessionsVisualizeCmd(wire),
	)
	return sessionsCmd
}

func newSessionsListCmd(wire wireFunc) *cobra.Command {
	var status string
	var limit int
	var offset int
	var asJSON bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored sessions, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(wire, func(app *app) error {
				listing, err := app.engine.SessionList(cmd.Context(), application.SessionListCommand{
					Status: status,
					Limit:  limit,
					Offset: offset,
				})
				if err != nil {
					return err
				}

				if asJSON {
					return writeJSON(cmd.OutOrStdout(), listing)
				}

				rendered, err := app.sessionsRender(listing, sessionsrender.RenderOptions{Now: app.now()})
				if err != nil {
					return fmt.Errorf("render sessions: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			})
		},
	}

	listCmd.Flags().StringVar(&status, "status", "", "Filter by status (active, complete, archived)")
	listCmd.Flags().IntVar(&limit, "limit", domain.DefaultSessionListLimit, "Maximum sessions to list (1-100)")
	listCmd.Flags().IntVar(&offset, "offset", 0, "Sessions to skip")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return listCmd
}

func newSessionsSummaryCmd(wire wireFunc) *cobra.Command {
	var maxLength int
	var asJSON bool

	summaryCmd := &cobra.Command{
		Use:   "summary <session-id>",
		Short: "Print a compressed summary of a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(wire, func(app *app) error {
				summary, err := app.engine.SessionSummary(cmd.Context(), application.SessionSummaryCommand{
					ID:        args[0],
					MaxLength: maxLength,
				})
				if err != nil {
					return err
				}

				if asJSON {
					return writeJSON(cmd.OutOrStdout(), summary)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), summary.Summary)
				return err
			})
		},
	}

	summaryCmd.Flags().IntVar(&maxLength, "max-length", 0, "Truncate the summary to this many characters (at least 100)")
	summaryCmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	return summaryCmd
}

func newSessionsExportCmd(wire wireFunc) *cobra.Command {
	var format string
	var branchID string

	exportCmd := &cobra.Command{
		Use:   "export <session-id>",
		Short: "Export a stored session as markdown or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(wire, func(app *app) error {
				view, err := app.engine.SessionChain(cmd.Context(), domain.SessionID(args[0]))
				if err != nil {
					return err
				}

				exported, err := chain.Export(view, chain.ExportFormat(format), domain.BranchID(branchID))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), exported)
				return err
			})
		},
	}

	exportCmd.Flags().StringVar(&format, "format", string(chain.FormatMarkdown), "Output format (markdown, json)")
	exportCmd.Flags().StringVar(&branchID, "branch", "", "Export a single branch")
	return exportCmd
}

func newSessionsVisualizeCmd(wire wireFunc) *cobra.Command {
	var format string
	var showContent bool

	visualizeCmd := &cobra.Command{
		Use:   "visualize <session-id>",
		Short: "Draw a stored session as a mermaid or ascii diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(wire, func(app *app) error {
				view, err := app.engine.SessionChain(cmd.Context(), domain.SessionID(args[0]))
				if err != nil {
					return err
				}

				diagram, err := chain.Visualize(view, chain.DiagramFormat(format), showContent)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), diagram)
				return err
			})
		},
	}

	visualizeCmd.Flags().StringVar(&format, "format", string(chain.FormatMermaid), "Diagram format (mermaid, ascii)")
	visualizeCmd.Flags().BoolVar(&showContent, "content", false, "Include thought excerpts in node labels")
	return visualizeCmd
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
