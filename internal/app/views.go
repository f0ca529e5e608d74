package service

import (
	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/domain/model"
	"github.com/okian/tierboard/internal/domain/seniority"
	"github.com/okian/tierboard/internal/i18n"
)

// Level is a seniority tier with its translated texts.
type Level struct {
	seniority.Tier
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FormattedStats adds display strings to the committed stats.
type FormattedStats struct {
	model.Stats
	FormattedTotalPoints   string `json:"formattedTotalPoints"`
	FormattedAveragePoints string `json:"formattedAveragePoints"`
	TopPlayerName          string `json:"topPlayerName"`
}

// Status summarises the service for health and state endpoints.
type Status struct {
	Version     string `json:"version"`
	Initialized bool   `json:"initialized"`
	HasData     bool   `json:"hasData"`
	PlayerCount int    `json:"playerCount"`
	Loading     bool   `json:"loading"`
	Error       string `json:"error,omitempty"`
	Source      string `json:"source"`
	Language    string `json:"language"`
}

// SeniorityLevels lists every tier, lowest first, translated into tag.
func (s *Service) SeniorityLevels(tag language.Tag) []Level {
	tiers := seniority.Tiers()
	out := make([]Level, len(tiers))
	for i, t := range tiers {
		out[i] = Level{
			Tier:        t,
			Name:        s.translator.SeniorityName(tag, t.Level),
			Description: s.translator.SeniorityDescription(tag, t.Level),
		}
	}
	return out
}

// FormattedStats returns the committed stats with localized numbers, or nil
// before the first successful load.
func (s *Service) FormattedStats(tag language.Tag) *FormattedStats {
	stats := s.store.Stats.Get()
	if stats == nil {
		return nil
	}
	top := s.translator.Text(tag, i18n.KeyNotAvailable)
	if stats.TopPlayer != nil {
		top = stats.TopPlayer.Name
	}
	return &FormattedStats{
		Stats:                  *stats,
		FormattedTotalPoints:   s.translator.Number(tag, stats.TotalPoints),
		FormattedAveragePoints: s.translator.Number(tag, stats.AveragePoints),
		TopPlayerName:          top,
	}
}

// Status reports the current state of the service.
func (s *Service) Status() Status {
	s.mu.RLock()
	initialized := s.initialized
	s.mu.RUnlock()

	snap := s.store.Snapshot()
	return Status{
		Version:     s.version,
		Initialized: initialized,
		HasData:     len(snap.Players) > 0,
		PlayerCount: len(snap.Players),
		Loading:     snap.Loading,
		Error:       snap.Error,
		Source:      s.gateway.SourceName(),
		Language:    s.lang.String(),
	}
}
