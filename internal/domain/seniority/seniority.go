// Package seniority maps player scores to fixed seniority tiers.
package seniority

import (
	"fmt"
)

// Level tags, lowest band first.
const (
	Rookie       = "rookie"
	Beginner     = "beginner"
	Apprentice   = "apprentice"
	Intermediate = "intermediate"
	Advanced     = "advanced"
	Expert       = "expert"
	Master       = "master"
	Champion     = "champion"
	Legend       = "legend"
	Hero         = "hero"
)

// classPrefix is prepended to the level to form the display class token.
const classPrefix = "seniority-"

// Tier is an inclusive score band. The last tier has no upper bound.
type Tier struct {
	Min       int64  `json:"min"`
	Max       int64  `json:"max,omitempty"`
	Unbounded bool   `json:"unbounded,omitempty"`
	Level     string `json:"level"`
	Class     string `json:"class"`
}

// Contains reports whether score falls inside the band.
func (t Tier) Contains(score int64) bool {
	return score >= t.Min && (t.Unbounded || score <= t.Max)
}

// String renders the band, e.g. "master [2200, 2999]".
func (t Tier) String() string {
	if t.Unbounded {
		return fmt.Sprintf("%s [%d, +inf)", t.Level, t.Min)
	}
	return fmt.Sprintf("%s [%d, %d]", t.Level, t.Min, t.Max)
}

func band(minScore, maxScore int64, level string) Tier {
	return Tier{Min: minScore, Max: maxScore, Level: level, Class: classPrefix + level}
}

// tiers is contiguous and ordered; Classify relies on both.
var tiers = [...]Tier{ //nolint:gochecknoglobals // immutable lookup table
	band(0, 99, Rookie),
	band(100, 299, Beginner),
	band(300, 599, Apprentice),
	band(600, 999, Intermediate),
	band(1000, 1499, Advanced),
	band(1500, 2199, Expert),
	band(2200, 2999, Master),
	band(3000, 3999, Champion),
	band(4000, 4999, Legend),
	{Min: 5000, Unbounded: true, Level: Hero, Class: classPrefix + Hero},
}

// Classify returns the tier for a non-negative score.
func Classify(score int64) (Tier, error) {
	if score < 0 {
		return Tier{}, fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	for i := len(tiers) - 1; i >= 0; i-- {
		if score >= tiers[i].Min {
			return tiers[i], nil
		}
	}
	// Unreachable while tiers[0].Min == 0.
	return tiers[0], nil
}

// MustClassify is Classify for scores already known to be valid.
func MustClassify(score int64) Tier {
	t, err := Classify(score)
	if err != nil {
		panic(err)
	}
	return t
}

// Tiers returns a copy of the tier table, lowest band first.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers[:])
	return out
}

// ByLevel looks a tier up by its level tag.
func ByLevel(level string) (Tier, error) {
	for _, t := range tiers {
		if t.Level == level {
			return t, nil
		}
	}
	return Tier{}, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}
