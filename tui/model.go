// Package tui is the terminal front end: a single state machine that
// coordinates video submission, analysis, clip previews and chat.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/ridhoarazzak/Clipper/internal/models"
	"github.com/ridhoarazzak/Clipper/shared/chat"
	"github.com/ridhoarazzak/Clipper/shared/monitoring"
	"github.com/ridhoarazzak/Clipper/shared/player"
	"github.com/ridhoarazzak/Clipper/shared/youtube"
)

// State is the single source of truth for which UI is shown. Transitions
// happen only on user actions and async completions, never on timers, and
// ready/error return to idle only through an explicit reset.
type State string

const (
	StateIdle      State = "idle"
	StateAnalyzing State = "analyzing"
	StateReady     State = "ready"
	StateError     State = "error"
)

// AnalysisService is the slice of the gateway the TUI depends on,
// satisfied by *ai.Analyzer and by fakes in tests.
type AnalysisService interface {
	AnalyzeFile(ctx context.Context, src *models.VideoSource) (*models.VideoAnalysis, error)
	AnalyzeURL(ctx context.Context, src *models.VideoSource, meta *youtube.Metadata) (*models.VideoAnalysis, error)
	Chat(ctx context.Context, src *models.VideoSource, history []models.ChatTurn, message string) (string, error)
}

// MetadataLookup fetches public video metadata for URL submissions. Nil
// when no YouTube API key is configured.
type MetadataLookup func(ctx context.Context, videoID string) (*youtube.Metadata, error)

// Deps carries everything the model needs; nothing is read from ambient
// state.
type Deps struct {
	Analyzer      AnalysisService
	Lookup        MetadataLookup
	Monitor       *monitoring.Monitor
	PlayerCommand string
	// Seed pre-fills the input with a path or URL given on the command line.
	Seed string
}

type Model struct {
	state    State
	analyzer AnalysisService
	lookup   MetadataLookup
	monitor  *monitoring.Monitor

	playerCommand string
	player        player.Player

	input   textinput.Model
	warning string
	spinner spinner.Model

	source   *models.VideoSource
	analysis *models.VideoAnalysis
	errMsg   string

	clips list.Model

	chatFocused bool
	chatInput   textinput.Model
	chatBusy    bool
	conv        *chat.Conversation
	renderer    *glamour.TermRenderer

	width    int
	quitting bool
}

func NewModel(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	input := textinput.New()
	input.Placeholder = "video file path or YouTube URL"
	input.CharLimit = 512
	input.Width = 60
	input.SetValue(deps.Seed)
	input.Focus()

	chatInput := textinput.New()
	chatInput.Placeholder = "ask about this video"
	chatInput.CharLimit = 512
	chatInput.Width = 60

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		renderer = nil
	}

	return Model{
		state:         StateIdle,
		analyzer:      deps.Analyzer,
		lookup:        deps.Lookup,
		monitor:       deps.Monitor,
		playerCommand: deps.PlayerCommand,
		input:         input,
		chatInput:     chatInput,
		spinner:       s,
		renderer:      renderer,
		width:         80,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State is exposed for tests of the transition table.
func (m Model) State() State { return m.state }

// Analysis returns the current result, nil outside ready.
func (m Model) Analysis() *models.VideoAnalysis { return m.analysis }

// Source returns the current video source, nil in idle.
func (m Model) Source() *models.VideoSource { return m.source }

// ErrorMessage returns the user-facing error text, empty outside error.
func (m Model) ErrorMessage() string { return m.errMsg }

// Warning returns the inline input-validation message shown in idle.
func (m Model) Warning() string { return m.warning }

func newClipList(clips []models.SuggestedClip, width int) list.Model {
	items := make([]list.Item, len(clips))
	for i, c := range clips {
		items[i] = clipItem{clip: c}
	}

	l := list.New(items, clipDelegate{}, width, 14)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	return l
}

type clipItem struct {
	clip models.SuggestedClip
}

func (i clipItem) FilterValue() string { return i.clip.Title }

type clipDelegate struct{}

func (d clipDelegate) Height() int                             { return 2 }
func (d clipDelegate) Spacing() int                            { return 0 }
func (d clipDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d clipDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(clipItem)
	if !ok {
		return
	}

	meta := fmt.Sprintf("%s - %s  ★%d  %s",
		i.clip.StartTime, i.clip.EndTime, i.clip.ViralScore, strings.Join(i.clip.Hashtags, " "))

	fn := ItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return SelectedStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprintf(w, "%s\n%s\n", TimestampStyle.Render(meta), fn(i.clip.Title))
}
