package tui

import (
	"fmt"
	"strings"

	"github.com/ridhoarazzak/Clipper/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Clipper"))
	b.WriteString(DimTextStyle.Render("  AI viral clip finder"))
	b.WriteString("\n\n")

	switch m.state {
	case StateIdle:
		b.WriteString(TextStyle.Render("Drop in a video:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.warning != "" {
			b.WriteString(WarningStyle.Render(m.warning))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(DimTextStyle.Render("enter analyze • esc quit"))

	case StateAnalyzing:
		b.WriteString(fmt.Sprintf("%s%s", m.spinner.View(), TextStyle.Render("Analyzing video with Gemini...")))
		b.WriteString("\n\n")
		b.WriteString(DimTextStyle.Render(m.sourceLine()))

	case StateReady:
		b.WriteString(m.readyView())

	case StateError:
		b.WriteString(ErrorStyle.Render(m.errMsg))
		b.WriteString("\n\n")
		b.WriteString(DimTextStyle.Render("r start over • q quit"))
	}

	if m.monitor != nil {
		b.WriteString("\n\n")
		b.WriteString(FooterStyle.Render(m.monitor.StatusLine()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) sourceLine() string {
	if m.source == nil {
		return ""
	}
	if m.source.Kind == models.SourceYouTube {
		return "source: " + m.source.WatchURL()
	}
	return "source: " + m.source.Path
}

func (m Model) readyView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.analysis.VideoTitle))
	b.WriteString("  ")
	b.WriteString(CategoryStyle.Render(m.analysis.Category))
	b.WriteString("\n")
	b.WriteString(TextStyle.Render(wrap(m.analysis.Summary, m.width-2)))
	b.WriteString("\n\n")

	if m.chatFocused {
		b.WriteString(m.chatView())
	} else {
		b.WriteString(m.clips.View())
		b.WriteString("\n")
		if m.warning != "" {
			b.WriteString(WarningStyle.Render(m.warning))
			b.WriteString("\n")
		}
		b.WriteString(DimTextStyle.Render("enter/p preview clip • tab chat • r start over • q quit"))
	}

	return b.String()
}

func (m Model) chatView() string {
	var b strings.Builder

	for _, turn := range m.conv.Turns() {
		if turn.Role == models.RoleUser {
			b.WriteString(UserTurnStyle.Render("You: "))
			b.WriteString(TextStyle.Render(turn.Text))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.renderMarkdown(turn.Text))
		b.WriteString("\n")
	}

	if m.chatBusy {
		b.WriteString(fmt.Sprintf("%s%s\n", m.spinner.View(), DimTextStyle.Render("thinking...")))
	}

	b.WriteString("\n")
	b.WriteString(m.chatInput.View())
	b.WriteString("\n")
	b.WriteString(DimTextStyle.Render("enter send • tab back to clips"))

	return b.String()
}

// renderMarkdown pretty-prints a model reply, falling back to plain text
// when the renderer is unavailable.
func (m Model) renderMarkdown(text string) string {
	if m.renderer == nil {
		return TextStyle.Render(text) + "\n"
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return TextStyle.Render(text) + "\n"
	}
	return out
}

// wrap is a crude word wrapper for the summary line.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	var b strings.Builder
	line := 0
	for i, w := range words {
		if i > 0 {
			if line+len(w)+1 > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}
