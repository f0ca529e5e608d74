// Package repository defines the write-back surface for player data.
package repository

import (
	"context"
	"fmt"

	"github.com/okian/tierboard/internal/domain/model"
)

// Writer persists player changes. No storage backend exists yet; the only
// implementation is Unimplemented.
type Writer interface {
	// SavePlayer stores a player record.
	SavePlayer(ctx context.Context, p model.Player) error
	// UpdatePlayerPoints replaces the score of the player with id.
	UpdatePlayerPoints(ctx context.Context, id string, points int64) error
}

// Unimplemented rejects every write with ErrNotImplemented.
type Unimplemented struct{}

var _ Writer = Unimplemented{}

func (Unimplemented) SavePlayer(_ context.Context, p model.Player) error {
	return fmt.Errorf("save player %s: %w", p.ID, ErrNotImplemented)
}

func (Unimplemented) UpdatePlayerPoints(_ context.Context, id string, _ int64) error {
	return fmt.Errorf("update points of %s: %w", id, ErrNotImplemented)
}
