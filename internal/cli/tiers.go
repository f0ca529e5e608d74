package cli

import (
	"github.com/spf13/cobra"

	"github.com/okian/tierboard/internal/i18n"
)

func newTiersCommand(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Print the seniority tiers and their score bands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := i18n.New()
			if err != nil {
				return err
			}
			r, _, err := root.rendererFor(cmd, tr)
			if err != nil {
				return err
			}
			return r.Tiers()
		},
	}
}
