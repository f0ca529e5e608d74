// Package cli defines the leaderboardctl command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/i18n"
	"github.com/okian/tierboard/internal/render"
)

// Color modes accepted by --color.
const (
	colorAuto = "auto"
	colorYes  = "yes"
	colorNo   = "no"
)

// ErrLoadFailed is returned when the leaderboard could not be loaded.
var ErrLoadFailed = errors.New("leaderboard load failed")

// ErrInvalidFlag is returned for flag values outside their domain.
var ErrInvalidFlag = errors.New("invalid flag")

type rootFlags struct {
	lang  string
	color string
}

// NewRootCommand builds the command tree. version is printed by the version command.
func NewRootCommand(version string) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:                "leaderboardctl",
		Short:              "Rank players into seniority tiers from a leaderboard document.",
		Long:               `leaderboardctl loads a leaderboard document from a URL, a file or the bundled sample and prints it ranked by points.`,
		Version:            version,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableSuggestions: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&flags.lang, "lang", "en", "Display language (en, es, de)")
	root.PersistentFlags().StringVar(&flags.color, "color", colorAuto, "Colored output: auto, yes or no")

	root.AddCommand(newShowCommand(flags))
	root.AddCommand(newTiersCommand(flags))
	root.AddCommand(newGenerateCommand())
	root.AddCommand(newVerifyCommand())
	root.AddCommand(newVersionCommand(version))
	return root
}

// rendererFor builds a renderer that writes to the command output.
func (f *rootFlags) rendererFor(cmd *cobra.Command, tr *i18n.Translator, opts ...render.Option) (*render.Renderer, language.Tag, error) {
	colored, err := useColor(f.color, cmd.OutOrStdout())
	if err != nil {
		return nil, language.Und, err
	}
	tag := tr.Match(f.lang)
	base := []render.Option{
		render.WithWriter(cmd.OutOrStdout()),
		render.WithTranslator(tr),
		render.WithLanguage(tag),
		render.WithColor(colored),
	}
	return render.New(append(base, opts...)...), tag, nil
}

// useColor resolves --color; auto means color only on a terminal.
func useColor(mode string, out io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case colorYes:
		return true, nil
	case colorNo:
		return false, nil
	case colorAuto, "":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("%w: --color %q", ErrInvalidFlag, mode)
	}
}
