package form

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"registration/internal/adapters/http/response"
	"registration/internal/core/domain/form"
	httpErrors "registration/internal/platform/http"
	"registration/internal/platform/logger"
	"registration/internal/platform/validator"
)

const maxBodyBytes = 4 << 10

type Handler struct {
	manager  Manager
	validate validator.Validator
}

func NewHandler(manager Manager, validate validator.Validator) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
	}
}

func (h *Handler) mapDomainError(err error) error {
	switch {
	case errors.Is(err, form.ErrSessionNotFound):
		return httpErrors.NewNotFound("Form session not found", err)
	case errors.Is(err, form.ErrUnknownField):
		return httpErrors.NewBadRequest("Unknown field", err)
	case errors.Is(err, form.ErrSessionLimitReached):
		return httpErrors.NewTooManyRequests("Too many open form sessions", err)
	case errors.Is(err, form.ErrInvalidSessionID):
		return httpErrors.NewBadRequest("Invalid session ID", err)
	default:
		var alreadyExistsErr *form.AlreadyExistsError
		if errors.As(err, &alreadyExistsErr) {
			return httpErrors.NewConflict("Form session already exists", err)
		}
		return err
	}
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) error {
	view, err := h.manager.CreateSession(r.Context())
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusCreated, view)
	return nil
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) error {
	view, err := h.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, view)
	return nil
}

type SetFieldRequest struct {
	Value *string `json:"value" validate:"required,max=256"`
}

func (h *Handler) SetField(w http.ResponseWriter, r *http.Request) error {
	contextLogger := logger.FromContext(r.Context())

	var req SetFieldRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		contextLogger.Warn("Failed to decode request body", logger.Error(err))
		response.RespondError(w, http.StatusBadRequest, errors.New("invalid request payload"))
		return nil
	}

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed", logger.Error(err))
			response.RespondJSON(w, http.StatusBadRequest, validationErr)
		} else {
			contextLogger.Error("Unexpected validation error", logger.Error(err))
			response.RespondError(w, http.StatusBadRequest, errors.New("invalid request data"))
		}
		return nil
	}

	view, err := h.manager.SetField(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "field"), *req.Value)
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, view)
	return nil
}

func (h *Handler) ValidateSession(w http.ResponseWriter, r *http.Request) error {
	view, err := h.manager.ValidateSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondJSON(w, http.StatusOK, view)
	return nil
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) error {
	if err := h.manager.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		return h.mapDomainError(err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
