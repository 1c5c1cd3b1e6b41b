// Package app implements the QuickTranscript TUI: a live recording panel
// with auto-saved segments on the left, the saved note history on the
// right.
package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/amanlall/QuickTranscipt/internal/config"
	"github.com/amanlall/QuickTranscipt/internal/enhance"
	"github.com/amanlall/QuickTranscipt/internal/note"
	"github.com/amanlall/QuickTranscipt/internal/session"
	"github.com/amanlall/QuickTranscipt/internal/speech"
	"github.com/amanlall/QuickTranscipt/internal/store"
	"github.com/amanlall/QuickTranscipt/internal/transcript"
)

// PanelFocus tracks which panel has keyboard focus.
type PanelFocus int

const (
	FocusLive PanelFocus = iota
	FocusHistory
)

// Model is the root bubbletea model.
type Model struct {
	cfg config.Config

	// Connection state
	client    speech.Commander   // command connection
	evClient  speech.EventReader // event subscription connection
	connected bool
	connError string

	// Recording state
	recorder    *session.Recorder
	recording   bool
	listening   bool
	localeIndex int
	autosaveGen int
	saving      bool

	// Notes
	store    *store.Store
	pending  *enhance.Pending
	enhancer enhance.Enhancer

	// History panel state
	selectedNote int
	searchTerm   string
	searching    bool
	filterIndex  int // 0 = all, then note.Languages
	renaming     bool
	renameText   string

	// UI state
	focusedPanel PanelFocus
	width        int
	height       int

	// Errors
	errorMessage   string
	errorTransient bool

	// Status
	statusText string

	// Reconnect
	reconnecting     bool
	reconnectAttempt int
}

// New creates a model over a loaded store. The enhancer may be nil when no
// enhancement service is configured; requests then fall back to the
// offline enhancer.
func New(cfg config.Config, st *store.Store, enhancer enhance.Enhancer) Model {
	if enhancer == nil {
		enhancer = enhance.Offline{}
	}
	m := Model{
		cfg:          cfg,
		recorder:     session.NewRecorder(),
		store:        st,
		pending:      enhance.NewPending(),
		enhancer:     enhancer,
		statusText:   "Connecting to capture helper...",
		focusedPanel: FocusLive,
	}
	for i, l := range note.Languages {
		if l.Code == cfg.Locale {
			m.localeIndex = i
			break
		}
	}
	return m
}

// NewReplay creates a model wired to a replay source instead of the live
// helper.
func NewReplay(cfg config.Config, st *store.Store, enhancer enhance.Enhancer, src *speech.Replay) Model {
	m := New(cfg, st, enhancer)
	m.client = src
	m.evClient = src
	m.connected = true
	m.statusText = "Replay"
	return m
}

// Init returns the initial command — connect to the helper, unless a
// replay source is already wired in.
func (m Model) Init() tea.Cmd {
	if m.connected {
		return readEventCmd(m.evClient)
	}
	return connectCmd(m.cfg.SocketPath)
}

func (m Model) locale() string {
	return note.Languages[m.localeIndex].Code
}

// connectCmd attempts to connect to the helper with two connections: one
// for commands, one for event subscription.
func connectCmd(socketPath string) tea.Cmd {
	return func() tea.Msg {
		client, err := speech.Connect(socketPath)
		if err != nil {
			return HelperConnectErrorMsg{Err: err}
		}
		evClient, err := speech.Connect(socketPath)
		if err != nil {
			client.Close()
			return HelperConnectErrorMsg{Err: err}
		}
		return HelperConnectedMsg{Client: client, EvClient: evClient}
	}
}

// subscribeCmd subscribes the event client and starts reading events.
func subscribeCmd(evClient speech.EventReader) tea.Cmd {
	return func() tea.Msg {
		if c, ok := evClient.(speech.Commander); ok {
			if _, err := c.SendCommand(speech.Command{Cmd: "subscribe"}); err != nil {
				return HelperEventErrorMsg{Err: err}
			}
		}
		return readEventCmd(evClient)()
	}
}

// readEventCmd reads the next event from the event client.
func readEventCmd(evClient speech.EventReader) tea.Cmd {
	return func() tea.Msg {
		ev, err := evClient.ReadEvent()
		if err != nil {
			return HelperEventErrorMsg{Err: err}
		}
		return HelperEventMsg{Event: ev}
	}
}

// startCmd asks the helper to start recognition.
func startCmd(client speech.Commander, locale, engine string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.SendCommand(speech.Command{
			Cmd:    "start",
			Locale: locale,
			Engine: engine,
		})
		if err != nil {
			return HelperEventErrorMsg{Err: err}
		}
		return StartResponseMsg{Response: resp}
	}
}

// stopCmd asks the helper to stop recognition.
func stopCmd(client speech.Commander) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.SendCommand(speech.Command{Cmd: "stop"})
		if err != nil {
			return HelperEventErrorMsg{Err: err}
		}
		return StopResponseMsg{Response: resp}
	}
}

// autosaveTickCmd schedules the next segment flush for a timer generation.
func autosaveTickCmd(gen int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return AutosaveTickMsg{Gen: gen}
	})
}

// savingFlashCmd clears the saving indicator after a moment.
func savingFlashCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return SavingFlashDoneMsg{}
	})
}

// enhanceCmd runs an enhancement request for a note.
func enhanceCmd(enhancer enhance.Enhancer, id string, token int, content string) tea.Cmd {
	return func() tea.Msg {
		text, err := enhancer.Enhance(context.Background(), content)
		return EnhanceResultMsg{NoteID: id, Token: token, Text: text, Err: err}
	}
}

// clearTransientErrorCmd fires after a delay to clear transient errors.
func clearTransientErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearTransientErrorMsg{}
	})
}

// reconnectCmd schedules a reconnection attempt with exponential backoff.
func reconnectCmd(attempt int) tea.Cmd {
	delay := time.Duration(1<<min(attempt, 4)) * time.Second // 1s, 2s, 4s, 8s, 16s cap
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ReconnectTickMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case HelperConnectedMsg:
		m.client = msg.Client
		m.evClient = msg.EvClient
		m.connected = true
		m.connError = ""
		m.reconnecting = false
		m.reconnectAttempt = 0
		m.statusText = "Ready to record"
		return m, subscribeCmd(m.evClient)

	case HelperConnectErrorMsg:
		m.connected = false
		m.connError = msg.Err.Error()
		m.reconnecting = true
		m.statusText = "Helper not running. Reconnecting..."
		return m, reconnectCmd(m.reconnectAttempt)

	case StartResponseMsg:
		r := msg.Response
		if !r.OK {
			m.errorMessage = r.Error
			m.errorTransient = true
			return m, clearTransientErrorCmd()
		}
		m.recording = true
		m.statusText = "Recording"
		m.recorder.Start(m.locale(), time.Now())
		m.autosaveGen++
		return m, autosaveTickCmd(m.autosaveGen, m.cfg.AutosaveInterval)

	case StopResponseMsg:
		if !msg.Response.OK {
			m.errorMessage = msg.Response.Error
		}
		m.statusText = "Ready to record"
		return m, nil

	case AutosaveTickMsg:
		// A tick from a cancelled generation arrives after stop or a
		// restart; drop it.
		if msg.Gen != m.autosaveGen || !m.recording {
			return m, nil
		}
		var cmds []tea.Cmd
		if seg := m.recorder.Flush(time.Now()); seg != nil {
			m.saving = true
			cmds = append(cmds, savingFlashCmd())
		}
		cmds = append(cmds, autosaveTickCmd(msg.Gen, m.cfg.AutosaveInterval))
		return m, tea.Batch(cmds...)

	case SavingFlashDoneMsg:
		m.saving = false
		return m, nil

	case HelperEventMsg:
		cmd := m.handleEvent(msg.Event)
		// Continue reading events on the event client.
		return m, tea.Batch(cmd, readEventCmd(m.evClient))

	case HelperEventErrorMsg:
		m.connected = false
		m.connError = msg.Err.Error()
		m.listening = false
		m.reconnecting = true
		m.statusText = "Disconnected. Reconnecting..."
		if m.recording {
			m.stopRecording(time.Now())
		}
		if m.client != nil {
			m.client.Close()
			m.client = nil
		}
		if m.evClient != nil {
			m.evClient.Close()
			m.evClient = nil
		}
		return m, reconnectCmd(m.reconnectAttempt)

	case ReconnectTickMsg:
		m.reconnectAttempt++
		return m, connectCmd(m.cfg.SocketPath)

	case EnhanceResultMsg:
		if msg.Err != nil {
			m.pending.Fail(msg.NoteID, msg.Token)
			m.errorMessage = fmt.Sprintf("enhancement failed: %v", msg.Err)
			m.errorTransient = true
			return m, clearTransientErrorCmd()
		}
		m.pending.Complete(msg.NoteID, msg.Token, msg.Text)
		return m, nil

	case ClearTransientErrorMsg:
		if m.errorTransient {
			m.errorMessage = ""
			m.errorTransient = false
		}
		return m, nil
	}

	return m, nil
}

// handleEvent processes a helper event and returns any resulting command.
func (m *Model) handleEvent(ev speech.Event) tea.Cmd {
	switch ev.Event {
	case speech.EventResult:
		if !m.recording {
			return nil
		}
		res := transcript.Result{ResultID: ev.ResultID, Text: ev.Text}
		if ev.Final != nil {
			res.Final = *ev.Final
		}
		if ev.Confidence != nil {
			res.Confidence = *ev.Confidence
		}
		m.recorder.Result(res)
		m.listening = true

	case speech.EventStatus:
		if ev.Listening != nil {
			m.listening = *ev.Listening
		}

	case speech.EventError:
		// Recognition failed: the session is no longer listening and
		// recording is forced off, but nothing already flushed is lost.
		m.errorMessage = fmt.Sprintf("recognition error: %s", ev.Code)
		m.errorTransient = true
		m.listening = false
		if m.recording {
			m.stopRecording(time.Now())
		}
		return clearTransientErrorCmd()

	case speech.EventEnd:
		// End of stream is a normal stop, not an error.
		m.listening = false
	}

	return nil
}

// stopRecording cancels the autosave timer, runs the final flush plus the
// transcript fallback, and marks the session stopped. Timer cancellation
// happens first so no tick can land after the stop is processed.
func (m *Model) stopRecording(now time.Time) {
	m.autosaveGen++
	m.recorder.Stop(now)
	m.recording = false
	m.saving = false
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry modes capture printable keys first.
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.renaming {
		return m.handleRenameKey(msg)
	}

	switch msg.String() {
	case KeyQuit, KeyQuitUpper, KeyCtrlC:
		if m.client != nil {
			m.client.Close()
		}
		if m.evClient != nil && any(m.evClient) != any(m.client) {
			m.evClient.Close()
		}
		return m, tea.Quit

	case KeySpace:
		if !m.connected {
			return m, nil
		}
		if m.recording {
			m.stopRecording(time.Now())
			return m, stopCmd(m.client)
		}
		return m, startCmd(m.client, m.locale(), m.cfg.Engine)

	case KeyTab:
		if m.focusedPanel == FocusLive {
			m.focusedPanel = FocusHistory
		} else {
			m.focusedPanel = FocusLive
		}
		return m, nil

	case KeyCombine:
		n, ok := m.recorder.Combine(time.Now())
		if !ok {
			return m, nil
		}
		if err := m.store.Prepend(n); err != nil {
			m.errorMessage = err.Error()
		}
		m.selectedNote = 0
		return m, nil

	case KeySaveNote:
		return m.saveTranscriptNote(time.Now()), nil

	case KeyCycleLocale:
		if m.recording {
			return m, nil
		}
		m.localeIndex = (m.localeIndex + 1) % len(note.Languages)
		return m, nil

	case KeyJ, KeyDown:
		if m.focusedPanel == FocusHistory {
			if m.selectedNote < len(m.filteredNotes())-1 {
				m.selectedNote++
			}
		}
		return m, nil

	case KeyK, KeyUp:
		if m.focusedPanel == FocusHistory && m.selectedNote > 0 {
			m.selectedNote--
		}
		return m, nil

	case KeySearch:
		m.focusedPanel = FocusHistory
		m.searching = true
		return m, nil

	case KeyFilterLang:
		m.filterIndex = (m.filterIndex + 1) % (len(note.Languages) + 1)
		m.selectedNote = 0
		return m, nil

	case KeyRename:
		if n, ok := m.selected(); ok {
			m.renaming = true
			m.renameText = n.DisplayTitle()
		}
		return m, nil

	case KeyDelete:
		if n, ok := m.selected(); ok {
			if err := m.store.Delete(n.ID); err != nil {
				m.errorMessage = err.Error()
				return m, nil
			}
			m.pending.Discard(n.ID)
			if last := len(m.filteredNotes()) - 1; m.selectedNote > last && last >= 0 {
				m.selectedNote = last
			}
		}
		return m, nil

	case KeyClearAll:
		if err := m.store.ClearAll(); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.pending = enhance.NewPending()
		m.selectedNote = 0
		return m, nil

	case KeyEnhance:
		n, ok := m.selected()
		if !ok {
			return m, nil
		}
		token := m.pending.Begin(n.ID)
		return m, enhanceCmd(m.enhancer, n.ID, token, n.Content)

	case KeyAcceptEnh:
		n, ok := m.selected()
		if !ok {
			return m, nil
		}
		text, ready := m.pending.Text(n.ID)
		if !ready {
			return m, nil
		}
		if err := m.store.ReplaceContent(n.ID, text); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.pending.Discard(n.ID)
		return m, nil

	case KeyDiscardEnh:
		if n, ok := m.selected(); ok {
			m.pending.Discard(n.ID)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
	case tea.KeyBackspace:
		if len(m.searchTerm) > 0 {
			runes := []rune(m.searchTerm)
			m.searchTerm = string(runes[:len(runes)-1])
		}
		m.selectedNote = 0
	case tea.KeyRunes:
		m.searchTerm += string(msg.Runes)
		m.selectedNote = 0
	case tea.KeySpace:
		m.searchTerm += " "
		m.selectedNote = 0
	}
	return m, nil
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.renaming = false
		if n, ok := m.selected(); ok {
			if err := m.store.Rename(n.ID, m.renameText); err != nil {
				m.errorMessage = err.Error()
			}
		}
		m.renameText = ""
	case tea.KeyEsc:
		m.renaming = false
		m.renameText = ""
	case tea.KeyBackspace:
		if len(m.renameText) > 0 {
			runes := []rune(m.renameText)
			m.renameText = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes:
		m.renameText += string(msg.Runes)
	case tea.KeySpace:
		m.renameText += " "
	}
	return m, nil
}

// saveTranscriptNote saves the live transcript directly as a note without
// going through the segment list. Used when the user wants the raw session
// text as-is.
func (m Model) saveTranscriptNote(now time.Time) Model {
	content := m.recorder.Transcript().Remainder()
	if content == "" {
		return m
	}
	n := note.Note{
		ID:           "note-" + uuid.NewString(),
		Content:      content,
		Language:     m.locale(),
		LanguageName: note.LanguageName(m.locale()),
		Timestamp:    now.UnixMilli(),
		Confidence:   note.Float64Ptr(m.recorder.Transcript().Confidence()),
	}
	n.Title = note.DefaultTitle(n.Timestamp)
	if err := m.store.Prepend(n); err != nil {
		m.errorMessage = err.Error()
		return m
	}
	m.selectedNote = 0
	return m
}

// filterLanguage returns the active language filter code.
func (m Model) filterLanguage() string {
	if m.filterIndex == 0 {
		return store.FilterAll
	}
	return note.Languages[m.filterIndex-1].Code
}

// filteredNotes returns the history list under the current search term and
// language filter.
func (m Model) filteredNotes() []note.Note {
	return m.store.Filter(m.searchTerm, m.filterLanguage())
}

// selected returns the currently selected note in the filtered history.
func (m Model) selected() (note.Note, bool) {
	notes := m.filteredNotes()
	if m.selectedNote < 0 || m.selectedNote >= len(notes) {
		return note.Note{}, false
	}
	return notes[m.selectedNote], true
}
