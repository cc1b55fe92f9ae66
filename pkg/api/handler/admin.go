package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xdpzq/devcore/pkg/api/response"
	"github.com/xdpzq/devcore/pkg/domain"
)

type AdminProvider interface {
	Users(ctx context.Context) ([]domain.User, error)
	Settings(ctx context.Context) (domain.GlobalSettings, error)
	SetNameApproval(ctx context.Context, username string, approved bool) (domain.User, error)
	DeleteUser(ctx context.Context, username string) error
	AddAPIKey(ctx context.Context, key string) (domain.GlobalSettings, error)
	RemoveAPIKey(ctx context.Context, index int) (domain.GlobalSettings, error)
	SetMaintenanceMode(ctx context.Context, enabled bool) (domain.GlobalSettings, error)
	SetImageFeature(ctx context.Context, enabled bool) (domain.GlobalSettings, error)
	SetPersona(ctx context.Context, template string) (domain.GlobalSettings, error)
}

type adminHandler struct {
	provider AdminProvider
	writer   response.JSONResponseWriter
}

func NewAdmin(provider AdminProvider) *adminHandler {
	return &adminHandler{
		provider: provider,
		writer:   response.JSONResponseWriter{},
	}
}

func (h *adminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.provider.Users(r.Context())
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, viewOf(u))
	}
	h.writer.WriteSuccessResponse(w, views)
}

func (h *adminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.provider.Settings(r.Context())
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writer.WriteSuccessResponse(w, settings)
}

type approvalRequest struct {
	Approved bool `json:"approved"`
}

func (h *adminHandler) SetNameApproval(w http.ResponseWriter, r *http.Request) {
	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.provider.SetNameApproval(r.Context(), chi.URLParam(r, "username"), req.Approved)
	if errors.Is(err, domain.ErrNotFound) {
		h.writer.WriteErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writer.WriteSuccessResponse(w, viewOf(user))
}

func (h *adminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.provider.DeleteUser(r.Context(), chi.URLParam(r, "username"))
	if errors.Is(err, domain.ErrNotFound) {
		h.writer.WriteErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writer.WriteSuccessResponse(w, map[string]string{"status": "deleted"})
}

type addKeyRequest struct {
	Key string `json:"key"`
}

func (h *adminHandler) AddAPIKey(w http.ResponseWriter, r *http.Request) {
	var req addKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.provider.AddAPIKey(r.Context(), req.Key)
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writer.WriteSuccessResponse(w, settings)
}

func (h *adminHandler) RemoveAPIKey(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "index must be a number")
		return
	}

	settings, err := h.provider.RemoveAPIKey(r.Context(), index)
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.writer.WriteSuccessResponse(w, settings)
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *adminHandler) SetMaintenanceMode(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.provider.SetMaintenanceMode)
}

func (h *adminHandler) SetImageFeature(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.provider.SetImageFeature)
}

func (h *adminHandler) toggle(w http.ResponseWriter, r *http.Request, apply func(context.Context, bool) (domain.GlobalSettings, error)) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := apply(r.Context(), req.Enabled)
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writer.WriteSuccessResponse(w, settings)
}

type personaRequest struct {
	Template string `json:"template"`
}

func (h *adminHandler) SetPersona(w http.ResponseWriter, r *http.Request) {
	var req personaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.provider.SetPersona(r.Context(), req.Template)
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writer.WriteSuccessResponse(w, settings)
}
