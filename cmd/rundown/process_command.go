package main

import (
	"github.com/spf13/cobra"

	"rundown/internal/config"
	"rundown/internal/pipeline"
	"rundown/internal/store"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "process <episode-id>",
		Short: "Reconstruct the running order for an episode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				p := pipeline.New(cfg, st, logger)
				run, err := p.Process(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, run)
				}
				renderRun(cmd.OutOrStdout(), run)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run as JSON")
	return cmd
}
