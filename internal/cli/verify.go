package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/tierboard/internal/verify"
)

type verifyFlags struct {
	server  string
	workers int
	timeout time.Duration
}

func newVerifyCommand() *cobra.Command {
	flags := &verifyFlags{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a running server for ranking consistency.",
		Long: `Fetch the leaderboard and stats from a running server, look every
player up by id and report any ordering, tier or stats mismatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := verify.New(nil, verify.Config{
				BaseURL: flags.server,
				Workers: flags.workers,
				Timeout: flags.timeout,
			}, nil)
			rep, err := c.Run(cmd.Context())
			for _, v := range rep.Violations {
				cmd.Printf("✗ %s\n", v)
			}
			if err != nil {
				return err
			}
			cmd.Printf("✓ %d players consistent (%d lookups in %s)\n", rep.Players, rep.Looked, rep.Duration.Round(time.Millisecond))
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.server, "server", "http://localhost:9080", "Base URL of the tierboard server")
	cmd.Flags().IntVarP(&flags.workers, "workers", "w", verify.DefaultWorkers, "Concurrent player lookups")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", verify.DefaultTimeout, "Per-request timeout")
	return cmd
}
