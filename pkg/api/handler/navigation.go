package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xdpzq/devcore/pkg/api/response"
	"github.com/xdpzq/devcore/pkg/auth"
	"github.com/xdpzq/devcore/pkg/domain"
)

type Navigator interface {
	Navigate(ctx context.Context, sess *auth.Session, target domain.Page) (domain.Page, error)
}

type navigationHandler struct {
	navigator Navigator
	writer    response.JSONResponseWriter
}

func NewNavigation(navigator Navigator) *navigationHandler {
	return &navigationHandler{
		navigator: navigator,
		writer:    response.JSONResponseWriter{},
	}
}

type navigateRequest struct {
	Page domain.Page `json:"page"`
}

// Navigate applies the gating rules and reports where the client actually
// landed, which may differ from where it asked to go.
func (h *navigationHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess := auth.SessionFromContext(r.Context())
	resolved, err := h.navigator.Navigate(r.Context(), sess, req.Page)
	if errors.Is(err, domain.ErrUnknownPage) {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writer.WriteSuccessResponse(w, map[string]domain.Page{"page": resolved})
}
