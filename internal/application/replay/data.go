// Package replay records and plays back per-tick input streams. The
// simulation is fully deterministic, so a stage name and a sequence of held
// buttons reproduce a run exactly.
package replay

// FrameInput records the held buttons for a single simulation tick
type FrameInput struct {
	F  int  `json:"f"`            // Tick number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	J  bool `json:"j,omitempty"`  // Jump
	A  bool `json:"a,omitempty"`  // Ability
	S  bool `json:"s,omitempty"`  // World switch
	SA bool `json:"sa,omitempty"` // Switch and ability together
}

// ReplayData contains everything needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
