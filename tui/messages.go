package tui

import (
	"time"

	"github.com/ridhoarazzak/Clipper/internal/models"
)

// analysisDoneMsg is sent when the model produced a valid analysis.
type analysisDoneMsg struct {
	analysis *models.VideoAnalysis
	duration time.Duration
}

// analysisErrMsg is sent when analysis failed for any reason past input
// validation. The raw error is logged; the user sees a generic message.
type analysisErrMsg struct {
	err      error
	duration time.Duration
}

// chatReplyMsg is sent when a chat round-trip finished. A failed reply has
// already been turned into an apology turn by the conversation; err is
// kept for diagnostics only.
type chatReplyMsg struct {
	err      error
	duration time.Duration
}

// seekErrMsg is sent when the preview player could not be driven.
type seekErrMsg struct {
	err error
}
