package state

import (
	"fmt"

	"github.com/okian/tierboard/internal/domain/model"
	"github.com/okian/tierboard/pkg/metrics"
)

// SlotName identifies a slot for name-based subscription.
type SlotName string

const (
	SlotPlayers SlotName = "players"
	SlotLoading SlotName = "loading"
	SlotError   SlotName = "error"
	SlotStats   SlotName = "stats"
)

// Names lists every slot in a stable order.
func Names() []SlotName {
	return []SlotName{SlotPlayers, SlotLoading, SlotError, SlotStats}
}

// Store groups the four slots. Setting one slot never sets another.
// Error holds a user-facing message; the empty string means no error.
type Store struct {
	Players *Slot[[]model.Player]
	Loading *Slot[bool]
	Error   *Slot[string]
	Stats   *Slot[*model.Stats]
}

// New returns a store with empty slots.
func New() *Store {
	return &Store{
		Players: newSlot[[]model.Player](string(SlotPlayers), nil, metrics.RecordNotification),
		Loading: newSlot(string(SlotLoading), false, metrics.RecordNotification),
		Error:   newSlot(string(SlotError), "", metrics.RecordNotification),
		Stats:   newSlot[*model.Stats](string(SlotStats), nil, metrics.RecordNotification),
	}
}

// Subscribe registers fn on the named slot. fn receives the slot's value
// boxed as any: []model.Player, bool, string or *model.Stats.
func (s *Store) Subscribe(name SlotName, fn func(any)) error {
	if fn == nil {
		return fmt.Errorf("subscribe %s: nil listener", name)
	}
	switch name {
	case SlotPlayers:
		s.Players.Subscribe(func(v []model.Player) { fn(v) })
	case SlotLoading:
		s.Loading.Subscribe(func(v bool) { fn(v) })
	case SlotError:
		s.Error.Subscribe(func(v string) { fn(v) })
	case SlotStats:
		s.Stats.Subscribe(func(v *model.Stats) { fn(v) })
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
	return nil
}

// Snapshot is a point-in-time copy of every slot.
type Snapshot struct {
	Players []model.Player `json:"players"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
	Stats   *model.Stats   `json:"stats"`
}

// Snapshot reads each slot. Slots are read independently, so a concurrent
// load may be observed half-committed.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Players: s.Players.Get(),
		Loading: s.Loading.Get(),
		Error:   s.Error.Get(),
		Stats:   s.Stats.Get(),
	}
}
