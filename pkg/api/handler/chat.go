package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/russross/blackfriday"

	"github.com/xdpzq/devcore/pkg/api/response"
	"github.com/xdpzq/devcore/pkg/auth"
	"github.com/xdpzq/devcore/pkg/domain"
)

type ChatProvider interface {
	SendMessage(ctx context.Context, sess *auth.Session, prompt string, image *domain.ImageAttachment) (domain.Message, error)
	Transcript(sess *auth.Session) []domain.Message
	Reset(sess *auth.Session)
	HistoryFor(ctx context.Context, username string) ([]domain.ChatSession, error)
}

type chatHandler struct {
	provider ChatProvider
	writer   response.JSONResponseWriter
}

func NewChat(provider ChatProvider) *chatHandler {
	return &chatHandler{
		provider: provider,
		writer:   response.JSONResponseWriter{},
	}
}

type sendRequest struct {
	Prompt string `json:"prompt"`
	Image  string `json:"image"`
}

type sendResponse struct {
	Message domain.Message `json:"message"`
	HTML    string         `json:"html"`
}

func (h *chatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var image *domain.ImageAttachment
	if req.Image != "" {
		parsed, err := domain.ParseDataURI(req.Image)
		if err != nil {
			h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid image data URI")
			return
		}
		image = parsed
	}

	// An image alone is a valid turn; only a fully empty one is rejected.
	if req.Prompt == "" && image == nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "prompt is missing or empty")
		return
	}

	sess := auth.SessionFromContext(r.Context())
	reply, err := h.provider.SendMessage(r.Context(), sess, req.Prompt, image)
	if errors.Is(err, domain.ErrUnauthorized) {
		h.writer.WriteErrorResponse(w, http.StatusUnauthorized, "login required")
		return
	}
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writer.WriteSuccessResponse(w, sendResponse{
		Message: reply,
		HTML:    string(blackfriday.MarkdownCommon([]byte(reply.Text))),
	})
}

func (h *chatHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	h.writer.WriteSuccessResponse(w, h.provider.Transcript(sess))
}

func (h *chatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	h.provider.Reset(sess)
	h.writer.WriteSuccessResponse(w, map[string]string{"status": "cleared"})
}

func (h *chatHandler) History(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	user := sess.User()
	if user == nil {
		h.writer.WriteErrorResponse(w, http.StatusUnauthorized, "login required")
		return
	}

	sessions, err := h.provider.HistoryFor(r.Context(), user.Username)
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sessions == nil {
		sessions = []domain.ChatSession{}
	}
	h.writer.WriteSuccessResponse(w, sessions)
}
