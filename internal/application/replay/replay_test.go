package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: "1.0",
		Stage:   "map01",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.False(t, input.Right)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_ReturnsCorrectInputState(t *testing.T) {
	data := ReplayData{
		Frames: []FrameInput{
			{F: 0, L: true, R: true, U: true, D: true, J: true, A: true, S: true, SA: true},
		},
	}

	replayer := NewReplayer(data)
	input, ok := replayer.GetInput()

	require.True(t, ok)
	assert.True(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Up)
	assert.True(t, input.Down)
	assert.True(t, input.Jump)
	assert.True(t, input.Ability)
	assert.True(t, input.Switch)
	assert.True(t, input.SwitchAndAbility)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	data := CreateTestReplayData(10)
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestReplayer_Stage(t *testing.T) {
	replayer := NewReplayer(ReplayData{Stage: "map03"})
	assert.Equal(t, "map03", replayer.Stage())
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3)
	data.Frames[0].J = true
	replayer := NewReplayer(data)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Jump)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, "test", data.Stage)
	assert.Len(t, data.Frames, 60)

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
	}
}

func TestLoadReplay(t *testing.T) {
	data := ReplayData{
		Version:   "1.0",
		Stage:     "map02",
		StartTime: "2025-01-01T00:00:00Z",
		Frames: []FrameInput{
			{F: 0, R: true},
			{F: 1, R: true, J: true},
		},
	}

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, data, *loaded)
}

func TestLoadReplay_Errors(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadReplay(path)
	assert.Error(t, err)
}

func TestFrameInput_OmitsReleasedButtons(t *testing.T) {
	raw, err := json.Marshal(FrameInput{F: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f": 3}`, string(raw), "idle frames stay compact")
}
