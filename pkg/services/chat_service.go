package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/xdpzq/devcore/pkg/auth"
	"github.com/xdpzq/devcore/pkg/domain"
	"github.com/xdpzq/devcore/pkg/logger"
	"github.com/xdpzq/devcore/pkg/persona"
)

type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest, apiKeys []string) (string, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (domain.GlobalSettings, error)
	Save(ctx context.Context, settings domain.GlobalSettings) error
}

type HistoryRepository interface {
	ByUsername(ctx context.Context, username string) ([]domain.ChatSession, error)
	Append(ctx context.Context, session domain.ChatSession) error
}

type chatService struct {
	generator Generator
	settings  SettingsRepository
	history   HistoryRepository
}

func NewChatService(generator Generator, settings SettingsRepository, history HistoryRepository) *chatService {
	return &chatService{
		generator: generator,
		settings:  settings,
		history:   history,
	}
}

// SendMessage runs one terminal exchange: persona resolution, generation
// with key rotation, and a history snapshot of the updated transcript.
// Generation failures become a synthetic model message so the transcript
// stays linear; only persistence failures surface as errors.
func (c *chatService) SendMessage(ctx context.Context, sess *auth.Session, prompt string, image *domain.ImageAttachment) (domain.Message, error) {
	user := sess.User()
	if user == nil {
		return domain.Message{}, domain.ErrUnauthorized
	}

	settings, err := c.settings.Get(ctx)
	if err != nil {
		return domain.Message{}, err
	}
	if image != nil && !settings.FeatureImageGen {
		slog.WarnContext(ctx, "image attachment dropped, feature disabled", "username", user.Username)
		image = nil
	}

	userMsg := newMessage(domain.MessageRoleUser, prompt)
	if image != nil {
		userMsg.Image = image.DataURI()
	}

	template, _ := lo.Coalesce(settings.CustomPersona, domain.DefaultPersona)
	req := domain.GenerationRequest{
		Prompt:            prompt,
		Image:             image,
		History:           asTurns(sess.Messages()),
		SystemInstruction: persona.ResolveFor(template, *user),
	}

	text, err := c.generator.Generate(ctx, req, settings.APIKeys)
	if err != nil {
		slog.ErrorContext(ctx, "generation failed", "username", user.Username, logger.Err(err))
		text = systemErrorText(err)
	}

	reply := newMessage(domain.MessageRoleModel, text)
	sess.Append(userMsg, reply)

	if err := c.snapshot(ctx, user.Username, sess.Messages()); err != nil {
		return reply, fmt.Errorf("saving history snapshot: %w", err)
	}
	return reply, nil
}

// Reset clears the live buffer. Saved snapshots are untouched.
func (c *chatService) Reset(sess *auth.Session) {
	sess.ResetBuffer()
}

func (c *chatService) Transcript(sess *auth.Session) []domain.Message {
	return sess.Messages()
}

func (c *chatService) HistoryFor(ctx context.Context, username string) ([]domain.ChatSession, error) {
	return c.history.ByUsername(ctx, username)
}

// snapshot appends a new immutable history record. One snapshot per
// completed exchange; nothing is pruned or rewritten.
func (c *chatService) snapshot(ctx context.Context, username string, messages []domain.Message) error {
	if len(messages) == 0 {
		return nil
	}
	return c.history.Append(ctx, domain.ChatSession{
		ID:          uuid.NewString(),
		Username:    username,
		Messages:    messages,
		Title:       domain.SessionTitle(messages),
		LastUpdated: time.Now().UnixMilli(),
	})
}

func newMessage(role, text string) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
}

// asTurns strips the transcript down to role+text. Images are never
// replayed in history turns.
func asTurns(messages []domain.Message) []domain.Turn {
	turns := make([]domain.Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, domain.Turn{Role: m.Role, Text: m.Text})
	}
	return turns
}

// systemErrorText converts a generation failure into the line shown in the
// transcript. Configuration and exhaustion errors carry their own
// user-facing text; anything else is masked.
func systemErrorText(err error) string {
	if errors.Is(err, domain.ErrNoAPIKeys) || errors.Is(err, domain.ErrKeysExhausted) {
		return err.Error()
	}
	return "SYSTEM ERROR: CONNECTION REFUSED"
}
