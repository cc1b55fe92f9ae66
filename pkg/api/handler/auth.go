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

type AuthProvider interface {
	Register(ctx context.Context, username, password, aiName, devName string) (domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

type authHandler struct {
	provider AuthProvider
	writer   response.JSONResponseWriter
}

func NewAuth(provider AuthProvider) *authHandler {
	return &authHandler{
		provider: provider,
		writer:   response.JSONResponseWriter{},
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	AIName   string `json:"aiName"`
	DevName  string `json:"devName"`
}

// userView is the wire shape of an identity. The password never leaves
// the server.
type userView struct {
	Username         string `json:"username"`
	RequestedAIName  string `json:"requestedAiName"`
	RequestedDevName string `json:"requestedDevName"`
	IsNameApproved   bool   `json:"isNameApproved"`
	IsAdmin          bool   `json:"isAdmin"`
	AIName           string `json:"aiName"`
	DevName          string `json:"devName"`
}

func viewOf(u domain.User) userView {
	return userView{
		Username:         u.Username,
		RequestedAIName:  u.RequestedAIName,
		RequestedDevName: u.RequestedDevName,
		IsNameApproved:   u.IsNameApproved,
		IsAdmin:          u.IsAdmin,
		AIName:           u.AIName(),
		DevName:          u.DevName(),
	}
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.provider.Register(r.Context(), req.Username, req.Password, req.AIName, req.DevName)
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, domain.ErrUserExists):
		h.writer.WriteErrorResponse(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sess := auth.SessionFromContext(r.Context())
	sess.SetUser(&user)
	h.writer.WriteSuccessResponse(w, viewOf(user))
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.provider.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		h.writer.WriteErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sess := auth.SessionFromContext(r.Context())
	sess.SetUser(user)
	h.writer.WriteSuccessResponse(w, viewOf(*user))
}

// Logout drops the identity but keeps the session, so the visitor
// continues as a guest on HOME.
func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	sess.Logout()
	h.writer.WriteSuccessResponse(w, map[string]string{"page": string(domain.PageHome)})
}

func (h *authHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFromContext(r.Context())
	user := sess.User()
	if user == nil {
		h.writer.WriteErrorResponse(w, http.StatusUnauthorized, "not logged in")
		return
	}
	h.writer.WriteSuccessResponse(w, viewOf(*user))
}
