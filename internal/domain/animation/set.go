package animation

import "fmt"

// ID names one clip of the player's closed clip table
type ID int

const (
	Move ID = iota
	Idle
	Jump
	Fall
	TakeDamage

	NumIDs
)

// String returns the config name of the clip
func (id ID) String() string {
	switch id {
	case Move:
		return "move"
	case Idle:
		return "idle"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	case TakeDamage:
		return "takedamage"
	default:
		return "unknown"
	}
}

// ParseID converts a config name into a clip ID
func ParseID(name string) (ID, bool) {
	for id := ID(0); id < NumIDs; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return 0, false
}

// Def is the configuration of a single clip
type Def struct {
	Frames        int
	FrameDuration float64
	Layout        Layout
}

// Set holds one clip per ID
type Set [NumIDs]*Clip

// NewSet builds every clip from defs. A missing or empty definition is a
// configuration error and fails construction.
func NewSet(defs map[ID]Def, target Framer) (*Set, error) {
	var s Set
	for id := ID(0); id < NumIDs; id++ {
		def, ok := defs[id]
		if !ok {
			return nil, fmt.Errorf("animation %q not defined", id)
		}
		if def.Frames < 1 {
			return nil, fmt.Errorf("animation %q: frames must be >= 1, got %d", id, def.Frames)
		}
		if def.FrameDuration <= 0 {
			return nil, fmt.Errorf("animation %q: frame duration must be > 0", id)
		}
		s[id] = NewClip(def.Frames, def.FrameDuration, def.Layout, target)
	}
	return &s, nil
}

// Get returns the clip for id
func (s *Set) Get(id ID) *Clip {
	return s[id]
}
