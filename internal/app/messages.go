package app

import "github.com/amanlall/QuickTranscipt/internal/speech"

// HelperConnectedMsg is sent when both helper connections are established.
type HelperConnectedMsg struct {
	Client   speech.Commander   // for commands (start, stop)
	EvClient speech.EventReader // for event subscription
}

// HelperConnectErrorMsg is sent when the helper connection fails.
type HelperConnectErrorMsg struct {
	Err error
}

// HelperEventMsg wraps a streamed event from the helper.
type HelperEventMsg struct {
	Event speech.Event
}

// HelperEventErrorMsg is sent when the event stream encounters an error.
type HelperEventErrorMsg struct {
	Err error
}

// StartResponseMsg carries the response to a start command.
type StartResponseMsg struct {
	Response speech.Response
}

// StopResponseMsg carries the response to a stop command.
type StopResponseMsg struct {
	Response speech.Response
}

// AutosaveTickMsg fires the periodic segment flush. Gen identifies the
// recording session's timer generation; ticks from a cancelled generation
// are ignored, so no flush lands after a stop.
type AutosaveTickMsg struct {
	Gen int
}

// SavingFlashDoneMsg clears the "saving" indicator shortly after a flush.
type SavingFlashDoneMsg struct{}

// EnhanceResultMsg carries the outcome of an enhancement request.
type EnhanceResultMsg struct {
	NoteID string
	Token  int
	Text   string
	Err    error
}

// ClearTransientErrorMsg clears a transient error after a timeout.
type ClearTransientErrorMsg struct{}

// ReconnectTickMsg triggers a reconnection attempt.
type ReconnectTickMsg struct{}
