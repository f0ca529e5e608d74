package cli

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/tierboard/internal/adapters/source"
	service "github.com/okian/tierboard/internal/app"
	"github.com/okian/tierboard/internal/domain/ranking"
	"github.com/okian/tierboard/internal/domain/seniority"
	"github.com/okian/tierboard/internal/gateway"
	"github.com/okian/tierboard/internal/i18n"
	"github.com/okian/tierboard/internal/render"
)

type showFlags struct {
	url     string
	file    string
	limit   int
	tier    string
	timeout time.Duration
}

func newShowCommand(root *rootFlags) *cobra.Command {
	flags := &showFlags{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Load and print the ranked leaderboard.",
		Long: `Load the leaderboard once and print it.

The source is --url when given, otherwise --file, otherwise the bundled sample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, root, flags)
		},
	}
	cmd.Flags().StringVar(&flags.url, "url", "", "Absolute http(s) URL of the leaderboard document")
	cmd.Flags().StringVar(&flags.file, "file", "", "Path to a local leaderboard document")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", 0, "Number of players to print (0 = all)")
	cmd.Flags().StringVar(&flags.tier, "tier", "", "Only print players of this seniority level")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "Fetch timeout for --url (0 = none)")
	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, flags *showFlags) error {
	if flags.limit < 0 {
		return fmt.Errorf("%w: --limit must not be negative", ErrInvalidFlag)
	}
	tier := strings.ToLower(strings.TrimSpace(flags.tier))
	if tier != "" {
		if _, err := seniority.ByLevel(tier); err != nil {
			return fmt.Errorf("%w: --tier: %w", ErrInvalidFlag, err)
		}
	}

	fetcher, err := source.Resolve(
		source.Descriptor{URL: flags.url, Path: flags.file},
		http.DefaultClient,
		source.WithTimeout(flags.timeout),
	)
	if err != nil {
		return err
	}

	tr, err := i18n.New()
	if err != nil {
		return err
	}
	r, tag, err := root.rendererFor(cmd, tr, render.WithLimit(flags.limit), render.WithTier(tier))
	if err != nil {
		return err
	}

	gw := gateway.New(fetcher, gateway.WithRanker(ranking.New(ranking.WithLocale(tag))))
	svc := service.New(gw, service.WithTranslator(tr), service.WithLanguage(tag))
	r.Attach(svc.Store(), svc.Presentation)

	svc.LoadLeaderboard(cmd.Context())
	if msg := svc.Store().Error.Get(); msg != "" {
		return fmt.Errorf("%w: %s", ErrLoadFailed, msg)
	}
	return nil
}
