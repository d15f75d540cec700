package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rundown/internal/config"
	"rundown/internal/store"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var episodeFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Show a stored run, or the latest run for an episode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				var run *store.Run
				var err error
				switch {
				case len(args) == 1:
					run, err = st.GetRun(cmd.Context(), args[0])
				case episodeFlag != "":
					run, err = st.LatestRun(cmd.Context(), episodeFlag)
				default:
					return fmt.Errorf("provide a run id or --episode")
				}
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("no matching run found")
				}
				if jsonOutput {
					return writeJSON(cmd, run)
				}
				renderRun(cmd.OutOrStdout(), run)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&episodeFlag, "episode", "e", "", "Show the latest run for this episode")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run as JSON")
	return cmd
}

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var episodeFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				summaries, err := st.ListRuns(cmd.Context(), episodeFlag)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, summaries)
				}
				rows := make([][]string, 0, len(summaries))
				for _, summary := range summaries {
					rows = append(rows, []string{
						summary.ID,
						summary.EpisodeID,
						summary.CreatedAt.Format("2006-01-02 15:04:05"),
						fmt.Sprintf("%d", summary.Matches),
						fmt.Sprintf("%.2f", summary.Consensus),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Run", "Episode", "Created", "Matches", "Consensus"},
					rows,
					3, 4,
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&episodeFlag, "episode", "e", "", "Only list runs for this episode")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit summaries as JSON")
	return cmd
}
