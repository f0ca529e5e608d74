// Package render prints the leaderboard store to a terminal.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/domain/model"
	"github.com/okian/tierboard/internal/domain/seniority"
	"github.com/okian/tierboard/internal/i18n"
	"github.com/okian/tierboard/internal/state"
	"github.com/okian/tierboard/pkg/logger"
)

const dateLayout = "2006-01-02"

// tierColors paints each level; unknown levels print plain.
var tierColors = map[string][]color.Attribute{ //nolint:gochecknoglobals // static palette
	seniority.Rookie:       {color.FgHiBlack},
	seniority.Beginner:     {color.FgGreen},
	seniority.Apprentice:   {color.FgHiGreen},
	seniority.Intermediate: {color.FgCyan},
	seniority.Advanced:     {color.FgBlue},
	seniority.Expert:       {color.FgMagenta},
	seniority.Master:       {color.FgHiMagenta},
	seniority.Champion:     {color.FgYellow},
	seniority.Legend:       {color.FgHiYellow, color.Bold},
	seniority.Hero:         {color.FgRed, color.Bold},
}

// Renderer writes tables and status lines in one language.
type Renderer struct {
	out     io.Writer
	tr      *i18n.Translator
	tag     language.Tag
	colored bool
	limit   int
	tier    string
	now     func() time.Time
	window  time.Duration
	logger  logger.Logger
}

// New creates a Renderer writing to stdout in English with colors on.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		out:     os.Stdout,
		tag:     i18n.Fallback,
		colored: true,
		now:     time.Now,
		window:  model.DefaultActiveWindow,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tr == nil {
		r.tr = i18n.MustNew()
	}
	return r
}

func (r *Renderer) paint(s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if r.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (r *Renderer) text(key string) string { return r.tr.Text(r.tag, key) }

// Attach subscribes to st. Loading and error changes print a status line;
// each committed Stats value prints the leaderboard and the summary, using
// presentation for the current display hints.
func (r *Renderer) Attach(st *state.Store, presentation func() model.Presentation) {
	ctx := context.Background()
	st.Loading.Subscribe(func(loading bool) {
		if loading {
			r.line(r.paint(r.text(i18n.KeyLoading), color.Faint))
		}
	})
	st.Error.Subscribe(func(msg string) {
		if msg != "" {
			r.line(r.paint(msg, color.FgRed))
		}
	})
	st.Stats.Subscribe(func(stats *model.Stats) {
		var p model.Presentation
		if presentation != nil {
			p = presentation()
		}
		if err := r.Leaderboard(st.Players.Get(), p); err != nil {
			r.logger.Error(ctx, "render leaderboard", logger.Error(err))
			return
		}
		if err := r.Stats(stats); err != nil {
			r.logger.Error(ctx, "render stats", logger.Error(err))
		}
	})
}

func (r *Renderer) line(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// Leaderboard prints a header and one row per player after the tier and
// limit filters. Presentation columns follow the built-in ones.
func (r *Renderer) Leaderboard(players []model.Player, p model.Presentation) error {
	title, subtitle := p.Title, p.Subtitle
	if title == "" {
		title = r.text(i18n.KeyTitle)
	}
	if subtitle == "" {
		subtitle = r.text(i18n.KeySubtitle)
	}
	if _, err := fmt.Fprintf(r.out, "%s\n%s\n", r.paint(title, color.Bold), r.paint(subtitle, color.Faint)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	players = r.filter(players)
	if len(players) == 0 {
		r.line(r.text(i18n.KeyNoData))
		return nil
	}

	table := tablewriter.NewWriter(r.out)

	headers := []string{
		r.text(i18n.KeyColRank),
		r.text(i18n.KeyColPlayer),
		r.text(i18n.KeyColPoints),
		r.text(i18n.KeyColLevel),
		r.text(i18n.KeyStatus),
		r.text(i18n.KeyLastActive),
	}
	for _, c := range p.Columns {
		label := c.Label
		if label == "" {
			label = c.Key
		}
		headers = append(headers, label)
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	now := r.now()
	data := make([][]string, 0, len(players))
	for _, pl := range players {
		row := []string{
			pl.FormattedPosition(),
			pl.Name,
			r.tr.Number(r.tag, pl.Score),
			r.paint(r.tr.SeniorityName(r.tag, pl.Seniority.Level), tierColors[pl.Seniority.Level]...),
			r.activity(pl, now),
			r.lastActive(pl),
		}
		for _, c := range p.Columns {
			v, _ := pl.Field(c.Key)
			row = append(row, v.String())
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("fill table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func (r *Renderer) filter(players []model.Player) []model.Player {
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if r.tier != "" && p.Seniority.Level != r.tier {
			continue
		}
		out = append(out, p)
		if r.limit > 0 && len(out) == r.limit {
			break
		}
	}
	return out
}

func (r *Renderer) activity(p model.Player, now time.Time) string {
	if p.IsActive(now, r.window) {
		return r.paint("● "+r.text(i18n.KeyActive), color.FgGreen)
	}
	return r.paint("○ "+r.text(i18n.KeyInactive), color.FgHiBlack)
}

func (r *Renderer) lastActive(p model.Player) string {
	if p.LastActive.IsZero() {
		return r.text(i18n.KeyNotAvailable)
	}
	return p.LastActive.UTC().Format(dateLayout)
}

// Stats prints the aggregate summary. A nil stats prints nothing.
func (r *Renderer) Stats(stats *model.Stats) error {
	if stats == nil {
		return nil
	}
	top := r.text(i18n.KeyNotAvailable)
	if stats.TopPlayer != nil {
		top = stats.TopPlayer.Name
	}
	_, err := fmt.Fprintf(r.out, "%s: %s · %s: %s · %s: %s · %s: %s\n",
		r.text(i18n.KeyStatsPlayers), r.tr.Number(r.tag, int64(stats.TotalPlayers)),
		r.text(i18n.KeyStatsTotal), r.tr.Number(r.tag, stats.TotalPoints),
		r.text(i18n.KeyStatsAverage), r.tr.Number(r.tag, stats.AveragePoints),
		r.text(i18n.KeyStatsTop), r.paint(top, color.Bold),
	)
	if err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

// Tiers prints every seniority band with its translated name and description.
func (r *Renderer) Tiers() error {
	table := tablewriter.NewWriter(r.out)
	table.Header([]string{r.text(i18n.KeyColLevel), "Min", "Max", ""})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	tiers := seniority.Tiers()
	data := make([][]string, 0, len(tiers))
	for _, t := range tiers {
		maxScore := "∞"
		if !t.Unbounded {
			maxScore = r.tr.Number(r.tag, t.Max)
		}
		data = append(data, []string{
			r.paint(r.tr.SeniorityName(r.tag, t.Level), tierColors[t.Level]...),
			r.tr.Number(r.tag, t.Min),
			maxScore,
			r.tr.SeniorityDescription(r.tag, t.Level),
		})
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("fill table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
