package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	"github.com/Finaxis002/FCOBackend/internal/usecase"
	"github.com/Finaxis002/FCOBackend/pkg/response"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

type UserHandler struct {
	uc     *usecase.UserUsecase
	logger *zap.Logger
}

func NewUserHandler(uc *usecase.UserUsecase, logger *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in domain.User
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := h.uc.CreateUser(r.Context(), &in)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrUserIDRequired):
			response.Error(w, http.StatusBadRequest, "User ID and name are required")
		case errors.Is(err, xerrors.ErrUserAlreadyExists):
			response.Error(w, http.StatusBadRequest, "User ID already exists")
		default:
			h.logger.Error("Failed to create user", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.uc.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.uc.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to fetch user", zap.String("user_id", id), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Server error fetching user")
		return
	}
	response.JSON(w, http.StatusOK, u)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var in domain.User
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid input")
		return
	}
	in.ID = chi.URLParam(r, "id")

	updated, err := h.uc.UpdateUser(r.Context(), &in)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to update user", zap.String("user_id", in.ID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.uc.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			response.Error(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("Failed to delete user", zap.String("user_id", id), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	response.JSONMessage(w, http.StatusOK, "User deleted", nil)
}
