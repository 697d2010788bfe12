package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/duality/internal/application/replay"
	"github.com/younwookim/duality/internal/application/system"
)

// Recorder captures per-tick input for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	tick      int
}

// NewRecorder creates a new recorder for the given stage
func NewRecorder(stage string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   "1.0",
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 6000), // ~1 minute of ticks
		},
		recording: true,
		tick:      0,
	}
}

// RecordTick records the held buttons for one simulation tick
func (r *Recorder) RecordTick(in *system.Input) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:  r.tick,
		L:  in.Button(system.ButtonLeft).Pressed(),
		R:  in.Button(system.ButtonRight).Pressed(),
		U:  in.Button(system.ButtonUp).Pressed(),
		D:  in.Button(system.ButtonDown).Pressed(),
		J:  in.Button(system.ButtonJump).Pressed(),
		A:  in.Button(system.ButtonAbility).Pressed(),
		S:  in.Button(system.ButtonSwitch).Pressed(),
		SA: in.Button(system.ButtonSwitchAndAbility).Pressed(),
	})
	r.tick++
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// TickCount returns the number of recorded ticks
func (r *Recorder) TickCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
