// Package speech provides the client and protocol types for talking to
// the audio capture helper over a Unix socket using NDJSON. The helper
// owns the microphone and the recognition engines; this module only
// consumes its result stream.
package speech

// Engine names understood by the helper's start command.
const (
	// EngineWeb is the on-device recognition engine.
	EngineWeb = "web"
	// EngineAzure is the Azure cloud recognition engine.
	EngineAzure = "azure"
)

// Command is sent from a client to the helper.
type Command struct {
	Cmd    string   `json:"cmd"`
	Locale string   `json:"locale,omitempty"`
	Engine string   `json:"engine,omitempty"`
	Events []string `json:"events,omitempty"`
}

// Response is returned by the helper after processing a command.
type Response struct {
	OK        bool   `json:"ok"`
	Listening *bool  `json:"listening,omitempty"`
	Engine    string `json:"engine,omitempty"`
	Status    string `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Event is streamed from the helper to subscribed clients.
type Event struct {
	Event      string   `json:"event"`
	ResultID   string   `json:"resultId,omitempty"`
	Final      *bool    `json:"final,omitempty"`
	Text       string   `json:"text,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Code       string   `json:"code,omitempty"`
	Message    string   `json:"message,omitempty"`
	Listening  *bool    `json:"listening,omitempty"`
}

// Event names streamed by the helper.
const (
	EventResult = "result" // a recognition result fragment
	EventStatus = "status" // listening state change
	EventError  = "error"  // recognition failure; session is not listening
	EventEnd    = "end"    // stream ended normally; not an error
)

// BoolPtr returns a pointer to a bool value. Convenience for building
// events in tests.
func BoolPtr(b bool) *bool { return &b }
