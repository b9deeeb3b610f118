package walk

import (
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// EntityID identifies a walker entity. IDs are stable values, so cursors can
// be listed, compared and stored independently of the entities themselves.
type EntityID uuid.UUID

// NewEntityID returns a new random entity ID.
func NewEntityID() EntityID {
	return EntityID(uuid.New())
}

// ParseEntityID parses the textual form of an entity ID, as produced by
// [EntityID.String].
func ParseEntityID(s string) (EntityID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return EntityID{}, err
	}
	return EntityID(u), nil
}

func (id EntityID) String() string {
	return uuid.UUID(id).String()
}

func (id EntityID) hash() uint64 {
	return xxhash.Sum64(id[:])
}

// State is the position of an entity in its life cycle:
// Unregistered → Active → Exhausted.
type State int

const (
	// Unregistered entities have never stepped, or were reset.
	Unregistered State = iota
	// Active entities have a sample at their cursor.
	Active
	// Exhausted entities stepped past the last sample. This state is
	// terminal.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Unregistered:
		return "unregistered"
	case Active:
		return "active"
	case Exhausted:
		return "exhausted"
	default:
		return "invalid"
	}
}

// Cursor is the position of one entity in the sample sequence.
type Cursor struct {
	Index     int
	Exhausted bool
}

// State returns the life cycle state of a registered cursor.
func (c Cursor) State() State {
	if c.Exhausted {
		return Exhausted
	}
	return Active
}
