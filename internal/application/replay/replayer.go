package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ReplayInput is the decoded button state for one tick
type ReplayInput struct {
	Left             bool
	Right            bool
	Up               bool
	Down             bool
	Jump             bool
	Ability          bool
	Switch           bool
	SwitchAndAbility bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current tick and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Left:             fi.L,
		Right:            fi.R,
		Up:               fi.U,
		Down:             fi.D,
		Jump:             fi.J,
		Ability:          fi.A,
		Switch:           fi.S,
		SwitchAndAbility: fi.SA,
	}, true
}

// CurrentFrame returns the current tick number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of recorded ticks
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
