package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdpzq/devcore/pkg/auth"
	"github.com/xdpzq/devcore/pkg/domain"
)

func terminalSession(user *domain.User) *auth.Session {
	sess := auth.NewSessionStore().Create()
	sess.SetUser(user)
	return sess
}

func TestSendMessageHappyPath(t *testing.T) {
	gen := &fakeGenerator{text: "ACCESS GRANTED"}
	settings := &fakeSettingsRepo{settings: &domain.GlobalSettings{
		APIKeys:         []string{"key-0"},
		FeatureImageGen: true,
		CustomPersona:   "I am {{AI_NAME}}, built by {{DEV_NAME}}",
	}}
	history := &fakeHistoryRepo{}
	svc := NewChatService(gen, settings, history)

	sess := terminalSession(&domain.User{
		Username: "neo", RequestedAIName: "Rex", RequestedDevName: "Jo", IsNameApproved: true,
	})

	reply, err := svc.SendMessage(context.Background(), sess, "hello core", nil)
	require.NoError(t, err)
	assert.Equal(t, domain.MessageRoleModel, reply.Role)
	assert.Equal(t, "ACCESS GRANTED", reply.Text)

	// Persona resolved before the generator sees it.
	require.Len(t, gen.requests, 1)
	assert.Equal(t, "I am Rex, built by Jo", gen.requests[0].SystemInstruction)
	assert.Equal(t, []string{"key-0"}, gen.keys[0])
	assert.Empty(t, gen.requests[0].History, "first turn has no prior context")

	// Both turns land in the live buffer, then the snapshot.
	msgs := sess.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.MessageRoleUser, msgs[0].Role)
	assert.Equal(t, "hello core", msgs[0].Text)

	require.Len(t, history.sessions, 1)
	snap := history.sessions[0]
	assert.Equal(t, "neo", snap.Username)
	assert.Equal(t, "hello core...", snap.Title)
	assert.Len(t, snap.Messages, 2)
	assert.NotEmpty(t, snap.ID)
}

func TestSendMessageCarriesHistoryAsTextOnly(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	svc := NewChatService(gen, &fakeSettingsRepo{settings: &domain.GlobalSettings{APIKeys: []string{"k"}}}, &fakeHistoryRepo{})

	sess := terminalSession(&domain.User{Username: "neo"})
	sess.Append(
		domain.Message{Role: domain.MessageRoleUser, Text: "first", Image: "data:image/png;base64,aGk="},
		domain.Message{Role: domain.MessageRoleModel, Text: "reply"},
	)

	_, err := svc.SendMessage(context.Background(), sess, "second", nil)
	require.NoError(t, err)

	require.Len(t, gen.requests, 1)
	turns := gen.requests[0].History
	require.Len(t, turns, 2)
	assert.Equal(t, domain.Turn{Role: domain.MessageRoleUser, Text: "first"}, turns[0])
	assert.Equal(t, domain.Turn{Role: domain.MessageRoleModel, Text: "reply"}, turns[1])
}

func TestSendMessageGenerationFailureBecomesSystemMessage(t *testing.T) {
	gen := &fakeGenerator{err: domain.ErrKeysExhausted}
	history := &fakeHistoryRepo{}
	svc := NewChatService(gen, &fakeSettingsRepo{settings: &domain.GlobalSettings{APIKeys: []string{"badkey"}}}, history)

	sess := terminalSession(&domain.User{Username: "neo"})

	reply, err := svc.SendMessage(context.Background(), sess, "hello", nil)
	require.NoError(t, err, "generation failure is not an application error")
	assert.Equal(t, "SYSTEM FAILURE: ALL API KEYS EXHAUSTED.", reply.Text)
	assert.Equal(t, domain.MessageRoleModel, reply.Role)

	// The transcript stays linear and the snapshot still lands.
	assert.Len(t, sess.Messages(), 2)
	assert.Len(t, history.sessions, 1)
}

func TestSendMessageUnknownFailureIsMasked(t *testing.T) {
	gen := &fakeGenerator{err: errBoom}
	svc := NewChatService(gen, &fakeSettingsRepo{}, &fakeHistoryRepo{})

	sess := terminalSession(&domain.User{Username: "neo"})

	reply, err := svc.SendMessage(context.Background(), sess, "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "SYSTEM ERROR: CONNECTION REFUSED", reply.Text)
}

func TestSendMessageDropsImageWhenFeatureDisabled(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	settings := &fakeSettingsRepo{settings: &domain.GlobalSettings{APIKeys: []string{"k"}, FeatureImageGen: false}}
	svc := NewChatService(gen, settings, &fakeHistoryRepo{})

	sess := terminalSession(&domain.User{Username: "neo"})
	img := &domain.ImageAttachment{Data: []byte("png"), MimeType: "image/png"}

	_, err := svc.SendMessage(context.Background(), sess, "look", img)
	require.NoError(t, err)

	require.Len(t, gen.requests, 1)
	assert.Nil(t, gen.requests[0].Image)
	assert.Empty(t, sess.Messages()[0].Image)
}

func TestSendMessageAttachesImageWhenFeatureEnabled(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	settings := &fakeSettingsRepo{settings: &domain.GlobalSettings{APIKeys: []string{"k"}, FeatureImageGen: true}}
	svc := NewChatService(gen, settings, &fakeHistoryRepo{})

	sess := terminalSession(&domain.User{Username: "neo"})
	img := &domain.ImageAttachment{Data: []byte("png"), MimeType: "image/png"}

	_, err := svc.SendMessage(context.Background(), sess, "look", img)
	require.NoError(t, err)

	require.Len(t, gen.requests, 1)
	require.NotNil(t, gen.requests[0].Image)
	assert.Equal(t, "image/png", gen.requests[0].Image.MimeType)
	assert.Equal(t, img.DataURI(), sess.Messages()[0].Image)
}

func TestSendMessageRequiresUser(t *testing.T) {
	svc := NewChatService(&fakeGenerator{}, &fakeSettingsRepo{}, &fakeHistoryRepo{})
	sess := auth.NewSessionStore().Create()

	_, err := svc.SendMessage(context.Background(), sess, "hello", nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSendMessageSurfacesSnapshotFailure(t *testing.T) {
	history := &fakeHistoryRepo{appendErr: errBoom}
	svc := NewChatService(&fakeGenerator{text: "ok"}, &fakeSettingsRepo{settings: &domain.GlobalSettings{APIKeys: []string{"k"}}}, history)

	sess := terminalSession(&domain.User{Username: "neo"})

	reply, err := svc.SendMessage(context.Background(), sess, "hello", nil)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, "ok", reply.Text, "the reply is still returned")
}

func TestResetClearsBufferOnly(t *testing.T) {
	history := &fakeHistoryRepo{sessions: []domain.ChatSession{{ID: "1", Username: "neo"}}}
	svc := NewChatService(&fakeGenerator{}, &fakeSettingsRepo{}, history)

	sess := terminalSession(&domain.User{Username: "neo"})
	sess.Append(domain.Message{Role: domain.MessageRoleUser, Text: "x"})

	svc.Reset(sess)
	assert.Empty(t, svc.Transcript(sess))
	assert.Len(t, history.sessions, 1, "saved snapshots are untouched")
}

func TestHistoryForFiltersByUsername(t *testing.T) {
	history := &fakeHistoryRepo{sessions: []domain.ChatSession{
		{ID: "1", Username: "neo"},
		{ID: "2", Username: "trinity"},
		{ID: "3", Username: "neo"},
	}}
	svc := NewChatService(&fakeGenerator{}, &fakeSettingsRepo{}, history)

	got, err := svc.HistoryFor(context.Background(), "neo")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}
