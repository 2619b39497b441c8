package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/ledgegrab/internal/application/system"
)

// ErrEmpty is returned when saving a recording that holds no frames
var ErrEmpty = errors.New("replay: no frames recorded")

// Recorder captures the input snapshot of every simulated frame
type Recorder struct {
	data ReplayData
}

// NewRecorder starts an empty recording for stage. seed is stored so the
// scene's random effects repeat on playback.
func NewRecorder(seed int64, stage string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   "1.0",
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		},
	}
}

// Record appends one frame
func (r *Recorder) Record(in system.InputState) {
	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  len(r.data.Frames),
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
		JP: in.JumpPressed,
	})
}

// Len returns the number of recorded frames
func (r *Recorder) Len() int {
	return len(r.data.Frames)
}

// Data returns the recording so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the recording as indented JSON
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	out, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := os.WriteFile(filename, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// DefaultFilename names a recording after its start time
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("replay_%s.json", t.Format("20060102_150405"))
}
