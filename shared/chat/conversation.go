// Package chat holds the append-only conversation about the current video.
package chat

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/ridhoarazzak/Clipper/internal/models"
)

// ApologyText is appended as a model turn when a reply cannot be fetched.
// Chat failures never escalate beyond the conversation itself.
const ApologyText = "Sorry, I ran into a problem answering that. Please try asking again."

// ErrBusy is returned when a send is attempted while another reply is
// still outstanding.
var ErrBusy = errors.New("a chat reply is already in flight")

// ReplyFunc fetches a model reply given the prior turn history and the
// new user message.
type ReplyFunc func(ctx context.Context, history []models.ChatTurn, message string) (string, error)

// Conversation is an ordered, append-only log of turns. Every send replays
// the whole log as context for the model.
type Conversation struct {
	reply ReplyFunc

	mu       sync.Mutex
	turns    []models.ChatTurn
	inFlight bool
}

func NewConversation(reply ReplyFunc) *Conversation {
	return &Conversation{reply: reply}
}

// SendMessage appends the user turn immediately, fetches a reply with the
// full history as context, and appends the model turn, or the apology turn
// if the reply fails. A failed reply is reported to the caller for
// diagnostics but the conversation itself absorbs it: the session never
// enters an error state over chat. Exactly one send may be in flight at a
// time; this is enforced here, not left to UI discipline.
func (c *Conversation) SendMessage(ctx context.Context, text string) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrBusy
	}
	c.inFlight = true

	history := make([]models.ChatTurn, len(c.turns))
	copy(history, c.turns)
	c.turns = append(c.turns, models.ChatTurn{Role: models.RoleUser, Text: text})
	c.mu.Unlock()

	replyText, err := c.reply(ctx, history, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if err != nil {
		log.Printf("Chat reply failed: %v", err)
		c.turns = append(c.turns, models.ChatTurn{Role: models.RoleModel, Text: ApologyText})
		return err
	}

	c.turns = append(c.turns, models.ChatTurn{Role: models.RoleModel, Text: replyText})
	return nil
}

// Turns returns a copy of the turn log.
func (c *Conversation) Turns() []models.ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	turns := make([]models.ChatTurn, len(c.turns))
	copy(turns, c.turns)
	return turns
}

// Busy reports whether a reply is outstanding.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}
