package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rundown/internal/registry"
)

func newRegistryCommand(ctx *commandContext) *cobra.Command {
	registryCmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the loaded reference data",
	}

	registryCmd.AddCommand(newRegistryTeamsCommand(ctx))
	registryCmd.AddCommand(newRegistryFixturesCommand(ctx))

	return registryCmd
}

func newRegistryTeamsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List registry teams and their name variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(reg.Teams))
			for _, team := range reg.Teams {
				variants := team.Variants()
				rows = append(rows, []string{
					team.Name,
					team.Abbreviation,
					strings.Join(variants[1:], ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Team", "Abbrev", "Other variants"},
				rows,
			))
			return nil
		},
	}
}

func newRegistryFixturesCommand(ctx *commandContext) *cobra.Command {
	var episodeFlag string

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "List registry fixtures, optionally scoped to an episode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(ctx)
			if err != nil {
				return err
			}

			fixtures := reg.Fixtures
			if episodeFlag != "" {
				episode, known := reg.EpisodeByID(episodeFlag)
				if !known {
					return fmt.Errorf("episode %q not in manifest", episodeFlag)
				}
				fixtures = fixtures[:0:0]
				for _, matchID := range episode.ExpectedMatches {
					if fixture, found := reg.FixtureByID(matchID); found {
						fixtures = append(fixtures, fixture)
					}
				}
			}

			rows := make([][]string, 0, len(fixtures))
			for _, fixture := range fixtures {
				rows = append(rows, []string{
					fixture.MatchID,
					fixture.HomeTeam,
					fixture.AwayTeam,
					fixture.Score,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Match", "Home", "Away", "Score"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&episodeFlag, "episode", "e", "", "Only list fixtures expected in this episode")
	return cmd
}

func loadRegistry(ctx *commandContext) (*registry.Registry, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	return registry.Load(cfg.Paths.RegistryDir)
}
