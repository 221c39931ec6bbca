package tui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ridhoarazzak/Clipper/internal/models"
	"github.com/ridhoarazzak/Clipper/shared/chat"
	"github.com/ridhoarazzak/Clipper/shared/player"
	"github.com/ridhoarazzak/Clipper/shared/youtube"
)

// analyzeCmd runs one analysis. For URL sources it first tries a metadata
// lookup; a lookup failure is logged and analysis proceeds on search
// grounding alone.
func analyzeCmd(svc AnalysisService, lookup MetadataLookup, src *models.VideoSource) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx := context.Background()

		var analysis *models.VideoAnalysis
		var err error

		switch src.Kind {
		case models.SourceFile:
			analysis, err = svc.AnalyzeFile(ctx, src)
		case models.SourceYouTube:
			var meta *youtube.Metadata
			if lookup != nil {
				meta, err = lookup(ctx, src.VideoID)
				if err != nil {
					log.Printf("Warning: metadata lookup for %s failed: %v", src.VideoID, err)
					meta = nil
				}
			}
			analysis, err = svc.AnalyzeURL(ctx, src, meta)
		}

		if err != nil {
			return analysisErrMsg{err: err, duration: time.Since(start)}
		}
		return analysisDoneMsg{analysis: analysis, duration: time.Since(start)}
	}
}

// chatCmd sends one message through the conversation. The user turn is
// already visible by the time this runs; the conversation appends the
// model turn or the apology turn itself.
func chatCmd(conv *chat.Conversation, text string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := conv.SendMessage(context.Background(), text)
		return chatReplyMsg{err: err, duration: time.Since(start)}
	}
}

// seekCmd translates the clip's MM:SS start into an absolute offset and
// drives whichever player backend is active.
func seekCmd(p player.Player, startTime string) tea.Cmd {
	return func() tea.Msg {
		seconds, err := player.ParseTimestamp(startTime)
		if err != nil {
			return seekErrMsg{err: err}
		}
		if err := p.SeekAndPlay(seconds); err != nil {
			return seekErrMsg{err: err}
		}
		return nil
	}
}
