// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/okian/tierboard/internal/domain/seniority"
)

// DefaultActiveWindow is how recently a player must have played to count as active.
const DefaultActiveWindow = 7 * 24 * time.Hour

// Player is one leaderboard row. Position is assigned by the ranker and is
// zero until then; every other field is fixed at construction.
type Player struct {
	ID         string           `json:"id"`
	Name       string           `json:"playerName"`
	Score      int64            `json:"points"`
	LastActive time.Time        `json:"lastActive"`
	Position   int              `json:"position"`
	Seniority  seniority.Tier   `json:"seniority"`
	Extra      map[string]Value `json:"extraFields,omitempty"`
}

// NewPlayer builds a player and derives its seniority tier.
func NewPlayer(id, name string, score int64, lastActive time.Time, extra map[string]Value) (Player, error) {
	if strings.TrimSpace(id) == "" {
		return Player{}, fmt.Errorf("%w: empty id", ErrInvalidPlayer)
	}
	tier, err := seniority.Classify(score)
	if err != nil {
		return Player{}, fmt.Errorf("player %s: %w", id, err)
	}
	return Player{
		ID:         id,
		Name:       name,
		Score:      score,
		LastActive: lastActive,
		Seniority:  tier,
		Extra:      extra,
	}, nil
}

// Field looks up an extra field by key.
func (p Player) Field(key string) (Value, bool) {
	v, ok := p.Extra[key]
	return v, ok
}

// IsActive reports whether the player was active within window before now.
// A non-positive window falls back to DefaultActiveWindow.
func (p Player) IsActive(now time.Time, window time.Duration) bool {
	if window <= 0 {
		window = DefaultActiveWindow
	}
	if p.LastActive.IsZero() {
		return false
	}
	return !p.LastActive.Before(now.Add(-window))
}

// FormattedPosition renders the position with a medal for the podium and an
// English ordinal suffix otherwise, e.g. "🥇 1st", "12th", "22nd".
func (p Player) FormattedPosition() string {
	switch p.Position {
	case 1:
		return "🥇 1st"
	case 2:
		return "🥈 2nd"
	case 3:
		return "🥉 3rd"
	}
	return strconv.Itoa(p.Position) + ordinalSuffix(p.Position)
}

func ordinalSuffix(n int) string {
	if mod := n % 100; mod >= 11 && mod <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
