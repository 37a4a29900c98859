package cmd

import (
	"github.com/letteragent/letteragent/pkg/letter"
	"github.com/letteragent/letteragent/pkg/tui"
	"github.com/spf13/cobra"
)

func newDraftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft",
		Short: "Draft a letter interactively",
		Long: `Opens the interactive drafting flow: pick a template, fill in the
draft text and any structured fields, then review, save, or export the
generated letter.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			st, s, err := loadState(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(cfg, st, letter.New(getLogger()))
		},
	}
}
