// Package verify checks a running tierboard server for ranking consistency.
package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/okian/tierboard/internal/domain/seniority"
	"github.com/okian/tierboard/pkg/logger"
)

// Defaults for Config fields left at zero.
const (
	DefaultWorkers = 8
	DefaultTimeout = 10 * time.Second

	workerChannelMultiplier = 2
	maxBodyBytes            = 8 << 20
)

// ErrInconsistent is returned when at least one check failed.
var ErrInconsistent = errors.New("leaderboard is inconsistent")

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config selects the server and the lookup concurrency.
type Config struct {
	BaseURL string
	Workers int
	Timeout time.Duration
}

// Entry is the part of a player the checks read.
type Entry struct {
	ID        string `json:"id"`
	Name      string `json:"playerName"`
	Points    int64  `json:"points"`
	Position  int    `json:"position"`
	Seniority struct {
		Level string `json:"level"`
	} `json:"seniority"`
}

type leaderboardBody struct {
	Players []Entry `json:"players"`
	Total   int     `json:"total"`
}

type statsBody struct {
	TotalPlayers int   `json:"totalPlayers"`
	TotalPoints  int64 `json:"totalPoints"`
}

// Report lists what was checked and every violation found.
type Report struct {
	Players    int
	Looked     int
	Violations []string
	Duration   time.Duration
}

// OK reports whether no violations were found.
func (r Report) OK() bool { return len(r.Violations) == 0 }

// Checker runs the consistency checks.
type Checker struct {
	doer   Doer
	cfg    Config
	logger logger.Logger
}

// New creates a Checker. A nil doer uses an http.Client with cfg.Timeout.
func New(doer Doer, cfg Config, l logger.Logger) *Checker {
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if doer == nil {
		doer = &http.Client{Timeout: cfg.Timeout}
	}
	if l == nil {
		l = logger.Nop()
	}
	return &Checker{doer: doer, cfg: cfg, logger: l}
}

// Run fetches the whole leaderboard and the stats, then looks every player up
// by id. It returns ErrInconsistent together with the report when any check fails.
func (c *Checker) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	var board leaderboardBody
	if err := c.getJSON(ctx, "/leaderboard", &board); err != nil {
		return Report{}, err
	}
	var stats statsBody
	if err := c.getJSON(ctx, "/stats", &stats); err != nil {
		return Report{}, err
	}

	rep := Report{Players: len(board.Players)}
	rep.Violations = append(rep.Violations, checkOrder(board.Players)...)
	rep.Violations = append(rep.Violations, checkStats(board, stats)...)

	looked, lookupViolations := c.checkLookups(ctx, board.Players)
	rep.Looked = looked
	rep.Violations = append(rep.Violations, lookupViolations...)
	rep.Duration = time.Since(start)

	c.logger.Info(ctx, "verification completed",
		logger.Int("players", rep.Players),
		logger.Int("looked", rep.Looked),
		logger.Int("violations", len(rep.Violations)),
		logger.Duration("took", rep.Duration),
	)
	if !rep.OK() {
		return rep, fmt.Errorf("%w: %d violations", ErrInconsistent, len(rep.Violations))
	}
	return rep, nil
}

// checkOrder verifies descending points, consecutive positions and tiers.
func checkOrder(players []Entry) []string {
	var out []string
	for i, p := range players {
		if p.Position != i+1 {
			out = append(out, fmt.Sprintf("player %s at index %d has position %d", p.ID, i, p.Position))
		}
		if i > 0 && p.Points > players[i-1].Points {
			out = append(out, fmt.Sprintf("player %s (%d) ranked below %s (%d)", p.ID, p.Points, players[i-1].ID, players[i-1].Points))
		}
		tier, err := seniority.Classify(p.Points)
		switch {
		case err != nil:
			out = append(out, fmt.Sprintf("player %s: %v", p.ID, err))
		case tier.Level != p.Seniority.Level:
			out = append(out, fmt.Sprintf("player %s with %d points is %s, want %s", p.ID, p.Points, p.Seniority.Level, tier.Level))
		}
	}
	return out
}

// checkStats compares the stats with the list. Points are only summed when
// the list was not truncated by the server limit.
func checkStats(board leaderboardBody, stats statsBody) []string {
	var out []string
	if stats.TotalPlayers != board.Total {
		out = append(out, fmt.Sprintf("stats report %d players, leaderboard has %d", stats.TotalPlayers, board.Total))
	}
	if len(board.Players) != board.Total {
		return out
	}
	var sum int64
	for _, p := range board.Players {
		sum += p.Points
	}
	if stats.TotalPoints != sum {
		out = append(out, fmt.Sprintf("stats report %d points, leaderboard sums to %d", stats.TotalPoints, sum))
	}
	return out
}

// checkLookups fetches every player by id with a worker pool and compares
// position and points with the list.
func (c *Checker) checkLookups(ctx context.Context, players []Entry) (int, []string) {
	var (
		mu         sync.Mutex
		looked     int
		violations []string
		wg         sync.WaitGroup
	)
	report := func(msg string) {
		mu.Lock()
		violations = append(violations, msg)
		mu.Unlock()
	}

	indexChan := make(chan int, c.cfg.Workers*workerChannelMultiplier)
	for i := 0; i < c.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indexChan {
				want := players[index]
				var got Entry
				if err := c.getJSON(ctx, "/players/"+url.PathEscape(want.ID), &got); err != nil {
					report(fmt.Sprintf("player %s: %v", want.ID, err))
					continue
				}
				mu.Lock()
				looked++
				mu.Unlock()
				if got.Position != want.Position || got.Points != want.Points {
					report(fmt.Sprintf("player %s lookup returned position %d with %d points, list has %d with %d",
						want.ID, got.Position, got.Points, want.Position, want.Points))
				}
			}
		}()
	}

	go func() {
		defer close(indexChan)
		for i := range players {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	wg.Wait()
	return looked, violations
}

func (c *Checker) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
