package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDefs() map[ID]Def {
	defs := make(map[ID]Def, NumIDs)
	for id := ID(0); id < NumIDs; id++ {
		defs[id] = Def{Frames: int(id) + 1, FrameDuration: 0.1, Layout: Layout{FrameW: 8, FrameH: 8, Row: int(id)}}
	}
	return defs
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name string
		id   ID
	}{
		{"move", Move},
		{"idle", Idle},
		{"jump", Jump},
		{"fall", Fall},
		{"takedamage", TakeDamage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ParseID(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.name, id.String())
		})
	}

	_, ok := ParseID("walk")
	assert.False(t, ok)
}

func TestNewSet(t *testing.T) {
	t.Run("builds every clip", func(t *testing.T) {
		s, err := NewSet(createTestDefs(), nil)

		require.NoError(t, err)
		for id := ID(0); id < NumIDs; id++ {
			require.NotNil(t, s.Get(id))
			assert.Equal(t, int(id)+1, s.Get(id).FrameCount())
		}
	})

	t.Run("missing clip", func(t *testing.T) {
		defs := createTestDefs()
		delete(defs, TakeDamage)

		_, err := NewSet(defs, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "takedamage")
	})

	t.Run("zero frames", func(t *testing.T) {
		defs := createTestDefs()
		defs[Idle] = Def{Frames: 0, FrameDuration: 0.1}

		_, err := NewSet(defs, nil)
		assert.Error(t, err)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		defs := createTestDefs()
		defs[Jump] = Def{Frames: 2}

		_, err := NewSet(defs, nil)
		assert.Error(t, err)
	})
}
