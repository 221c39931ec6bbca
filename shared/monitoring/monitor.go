package monitoring

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Monitor keeps per-session counters for the status footer and mirrors
// every outcome to the diagnostic log. Nothing is persisted.
type Monitor struct {
	mu             sync.Mutex
	analyses       int
	chatTurns      int
	failures       int
	lastOpSuccess  bool
	lastOpTime     time.Time
	lastOpDuration time.Duration
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordAnalysis(summary string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses++
	m.lastOpSuccess = true
	m.lastOpTime = time.Now()
	m.lastOpDuration = duration

	log.Printf("✅ Analysis completed - %s (took %v)", summary, duration)
}

func (m *Monitor) RecordAnalysisFailure(err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures++
	m.lastOpSuccess = false
	m.lastOpTime = time.Now()
	m.lastOpDuration = duration

	log.Printf("🚨 ANALYSIS FAILED: %s (Duration: %v)", err.Error(), duration)
}

func (m *Monitor) RecordChat(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatTurns++
	m.lastOpSuccess = true
	m.lastOpTime = time.Now()
	m.lastOpDuration = duration

	log.Printf("✅ Chat reply received (took %v)", duration)
}

func (m *Monitor) RecordChatFailure(err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Chat failures are non-fatal to the session; count them but leave
	// the last-success marker to analysis outcomes.
	m.chatTurns++
	m.failures++

	log.Printf("⚠️  CHAT FAILURE: %s (Duration: %v)", err.Error(), duration)
}

// StatusLine summarizes the session for display.
func (m *Monitor) StatusLine() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastOpTime.IsZero() && m.chatTurns == 0 {
		return "No activity yet"
	}

	return fmt.Sprintf("analyses: %d | chat turns: %d | failures: %d", m.analyses, m.chatTurns, m.failures)
}
