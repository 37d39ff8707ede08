// Package types holds the Bubble Tea messages exchanged by the planner view.
package types

// ResponseMsg carries the assistant's reply for a completed submission.
// Failed submissions arrive here too, carrying the fixed error text.
type ResponseMsg struct {
	Text string
}

// TranscriptMsg carries a dictation result destined for a form field.
// Token identifies the capture that produced it; stale tokens are dropped.
type TranscriptMsg struct {
	Token string
	Field int
	Text  string
}

// CaptureErrorMsg signals a failed or unavailable dictation.
type CaptureErrorMsg struct {
	Token string
	Field int
	Err   error
}

// ExportResultMsg signals the outcome of a transcript export.
type ExportResultMsg struct {
	Path string
	Err  error
}
