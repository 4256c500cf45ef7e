// Package replay stores recorded input so a charge jump session can be played back frame by frame.
package replay

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	J  bool `json:"j,omitempty"`  // Jump held
	JP bool `json:"jp,omitempty"` // JumpPressed
	JR bool `json:"jr,omitempty"` // JumpReleased
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	P  bool `json:"p,omitempty"`  // Pause toggled
}

// ReplayData contains all data needed to replay a game session.
// Charge is the charge.yaml in effect when recording started; playback
// uses it instead of the current file so old recordings stay reproducible.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Charge    string       `json:"charge,omitempty"`
	Frames    []FrameInput `json:"frames"`
}
