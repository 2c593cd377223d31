package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"brandbear/internal/model"

	"github.com/rs/zerolog"
)

// Config holds the request parameters shared by all conversations.
type Config struct {
	SystemInstruction string
	Temperature       float32
	Timeout           time.Duration
}

// Client mediates exchanges with a completion service. One Client is shared by
// every session; each session owns a Conversation created from it.
type Client struct {
	completer Completer
	cfg       Config
	logger    zerolog.Logger
}

// NewClient creates a new assistant client.
func NewClient(completer Completer, cfg Config, logger zerolog.Logger) *Client {
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		completer: completer,
		cfg:       cfg,
		logger:    logger.With().Str("component", "assistant").Logger(),
	}
}

// NewConversation starts a transcript seeded with the welcome message.
func (c *Client) NewConversation() *Conversation {
	return &Conversation{
		client: c,
		messages: []model.Message{
			{Role: model.RoleAssistant, Text: WelcomeMessage},
		},
	}
}

// reply performs one round trip and never fails: any error is logged and
// replaced with FallbackMessage.
func (c *Client) reply(ctx context.Context, history []model.Message, userText string) string {
	req := CompletionRequest{
		SystemInstruction: c.cfg.SystemInstruction,
		History:           history,
		UserText:          userText,
		Temperature:       c.cfg.Temperature,
	}
	if err := validateRequest(req); err != nil {
		c.logger.Error().Err(err).Msg("refusing to send malformed completion request")
		return FallbackMessage
	}

	// The reply belongs to the transcript even if the caller goes away.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	text, err := c.completer.Complete(ctx, req)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("completion failed, using fallback reply")
		return FallbackMessage
	}

	c.logger.Debug().
		Int("history_len", len(history)).
		Int("reply_len", len(text)).
		Dur("duration", time.Since(start)).
		Msg("completion received")

	return text
}

func validateRequest(req CompletionRequest) error {
	if strings.TrimSpace(req.UserText) == "" {
		return fmt.Errorf("user text is empty")
	}
	for i, m := range req.History {
		if !m.Role.Valid() {
			return fmt.Errorf("message %d: unknown role %q", i, m.Role)
		}
	}
	return nil
}

// Conversation is an append-only transcript with at most one request in flight.
type Conversation struct {
	client *Client

	mu       sync.Mutex
	messages []model.Message
	pending  bool
}

// Send appends the trimmed user text, asks the completion service for a reply
// and appends exactly one assistant message, the fallback on failure.
//
// Send is a no-op returning false when text is blank or a previous Send has
// not yet settled. It blocks until the reply is appended.
func (c *Conversation) Send(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		c.client.logger.Debug().Msg("send dropped, a reply is still pending")
		return false
	}
	history := append([]model.Message(nil), c.messages...)
	c.messages = append(c.messages, model.Message{Role: model.RoleUser, Text: text})
	c.pending = true
	c.mu.Unlock()

	reply := c.client.reply(ctx, history, text)

	c.mu.Lock()
	c.messages = append(c.messages, model.Message{Role: model.RoleAssistant, Text: reply})
	c.pending = false
	c.mu.Unlock()

	return true
}

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Message(nil), c.messages...)
}

// Pending reports whether a reply is outstanding.
func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}
