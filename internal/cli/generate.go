package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/tierboard/internal/fixtures"
)

type generateFlags struct {
	count int
	seed  int64
	title string
	out   string
}

func newGenerateCommand() *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random leaderboard document.",
		Long: `Write a reproducible leaderboard document with fake players.

The same --seed always produces the same players. The output can be served
over HTTP or passed to "show --file".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.count < 0 {
				return fmt.Errorf("%w: --count must not be negative", ErrInvalidFlag)
			}
			seed := flags.seed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			data, err := fixtures.New(seed, fixtures.WithTitle(flags.title)).JSON(flags.count)
			if err != nil {
				return err
			}
			data = append(data, '\n')
			if flags.out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(flags.out, data, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", flags.out, err)
			}
			cmd.PrintErrf("wrote %d players to %s (seed %d)\n", flags.count, flags.out, seed)
			return nil
		},
	}
	cmd.Flags().IntVarP(&flags.count, "count", "n", 25, "Number of players")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Random seed (default: current time)")
	cmd.Flags().StringVar(&flags.title, "title", "", "Document title")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file (default: stdout)")
	return cmd
}
