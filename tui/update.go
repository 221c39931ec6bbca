package tui

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ridhoarazzak/Clipper/internal/models"
	"github.com/ridhoarazzak/Clipper/shared/ai"
	"github.com/ridhoarazzak/Clipper/shared/chat"
	"github.com/ridhoarazzak/Clipper/shared/player"
	"github.com/ridhoarazzak/Clipper/shared/youtube"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.state == StateReady {
			m.clips.SetWidth(msg.Width)
		}
		return m, nil
	case analysisDoneMsg:
		return m.handleAnalysisDone(msg)
	case analysisErrMsg:
		return m.handleAnalysisErr(msg)
	case chatReplyMsg:
		return m.handleChatReply(msg)
	case seekErrMsg:
		log.Printf("Seek failed: %v", msg.err)
		m.warning = "Could not start the preview player."
		return m, nil
	case spinner.TickMsg:
		if m.state == StateAnalyzing || m.chatBusy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	}

	switch m.state {
	case StateIdle:
		return m.handleIdleKey(msg)
	case StateAnalyzing:
		// The in-flight analysis cannot be cancelled; only quitting works.
		if msg.String() == "q" {
			return m.quit()
		}
		return m, nil
	case StateReady:
		return m.handleReadyKey(msg)
	case StateError:
		switch msg.String() {
		case "r":
			return m.reset()
		case "q":
			return m.quit()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleIdleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit(strings.TrimSpace(m.input.Value()))
	case "esc":
		return m.quit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates the idle input and, if it names a playable video,
// moves to analyzing. Validation failures stay in idle with an inline
// warning and never touch the network.
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	if value == "" {
		m.warning = "Enter a video file path or a YouTube URL."
		return m, nil
	}

	var src *models.VideoSource
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		videoID, err := youtube.ExtractVideoID(value)
		if err != nil {
			m.warning = "That doesn't look like a YouTube video URL."
			return m, nil
		}
		src = models.NewYouTubeSource(value, videoID)
	} else {
		if _, err := os.Stat(value); err != nil {
			m.warning = "No file exists at that path."
			return m, nil
		}
		fileSrc, err := models.NewFileSource(value)
		if err != nil {
			m.warning = "That file is not a supported video format."
			return m, nil
		}
		src = fileSrc
	}

	m.state = StateAnalyzing
	m.source = src
	m.warning = ""
	m.errMsg = ""
	m.analysis = nil

	return m, tea.Batch(m.spinner.Tick, analyzeCmd(m.analyzer, m.lookup, src))
}

func (m Model) handleReadyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.chatFocused = !m.chatFocused
		if m.chatFocused {
			m.chatInput.Focus()
		} else {
			m.chatInput.Blur()
		}
		return m, nil
	}

	// While chat has focus every printable key belongs to the input.
	if m.chatFocused {
		if msg.String() == "enter" {
			text := strings.TrimSpace(m.chatInput.Value())
			if text == "" || m.chatBusy {
				return m, nil
			}
			m.chatBusy = true
			m.chatInput.Reset()
			return m, tea.Batch(m.spinner.Tick, chatCmd(m.conv, text))
		}
		var cmd tea.Cmd
		m.chatInput, cmd = m.chatInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "r":
		return m.reset()
	case "q":
		return m.quit()
	case "enter", "p":
		if item, ok := m.clips.SelectedItem().(clipItem); ok {
			m.warning = ""
			return m, seekCmd(m.player, item.clip.StartTime)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.clips, cmd = m.clips.Update(msg)
	return m, cmd
}

func (m Model) handleAnalysisDone(msg analysisDoneMsg) (tea.Model, tea.Cmd) {
	m.state = StateReady
	m.analysis = msg.analysis
	m.errMsg = ""
	m.clips = newClipList(msg.analysis.SuggestedClips, m.width)
	m.player = player.ForSource(m.playerCommand, m.source)

	src := m.source
	svc := m.analyzer
	m.conv = chat.NewConversation(func(ctx context.Context, history []models.ChatTurn, message string) (string, error) {
		return svc.Chat(ctx, src, history, message)
	})

	if m.monitor != nil {
		m.monitor.RecordAnalysis(msg.analysis.VideoTitle, msg.duration)
	}
	return m, nil
}

func (m Model) handleAnalysisErr(msg analysisErrMsg) (tea.Model, tea.Cmd) {
	m.state = StateError
	m.analysis = nil
	m.errMsg = userFacingMessage(msg.err)

	var decodeErr *ai.DecodeError
	if errors.As(msg.err, &decodeErr) {
		log.Printf("Decode failure, raw model output: %s", decodeErr.Raw)
	}
	if m.monitor != nil {
		m.monitor.RecordAnalysisFailure(msg.err, msg.duration)
	}
	return m, nil
}

func (m Model) handleChatReply(msg chatReplyMsg) (tea.Model, tea.Cmd) {
	m.chatBusy = false
	if m.monitor != nil {
		if msg.err != nil {
			m.monitor.RecordChatFailure(msg.err, msg.duration)
		} else {
			m.monitor.RecordChat(msg.duration)
		}
	}
	return m, nil
}

// reset returns to idle, clearing the source, analysis, conversation and
// error so nothing leaks into the next run.
func (m Model) reset() (tea.Model, tea.Cmd) {
	if m.player != nil {
		_ = m.player.Close()
	}
	m.state = StateIdle
	m.source = nil
	m.analysis = nil
	m.errMsg = ""
	m.warning = ""
	m.conv = nil
	m.player = nil
	m.chatFocused = false
	m.chatBusy = false
	m.chatInput.Reset()
	m.chatInput.Blur()
	m.input.Reset()
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.player != nil {
		_ = m.player.Close()
	}
	m.quitting = true
	return m, tea.Quit
}

// userFacingMessage maps internal failures onto the generic text shown in
// the error state. The underlying detail goes to the log only.
func userFacingMessage(err error) string {
	var decodeErr *ai.DecodeError
	switch {
	case errors.Is(err, ai.ErrEmptyResponse):
		return "The model returned an empty response. Please try again."
	case errors.As(err, &decodeErr):
		return "The model's response could not be understood. Please try again."
	default:
		return "Analysis failed. Check your network connection and API key, then try again."
	}
}
