package httphandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Finaxis002/FCOBackend/internal/middleware"
	"github.com/Finaxis002/FCOBackend/internal/usecase"
	"github.com/Finaxis002/FCOBackend/pkg/response"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

type NotificationHandler struct {
	uc     *usecase.NotificationUsecase
	logger *zap.Logger
}

func NewNotificationHandler(uc *usecase.NotificationUsecase, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.uc.ListNotifications(r.Context(), userID, middleware.IsAdmin(r.Context()), limit)
	if err != nil {
		h.logger.Error("Failed to list notifications", zap.String("user_id", userID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Error fetching notifications")
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, _ := middleware.GetUserID(r.Context())

	n, err := h.uc.MarkAsRead(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Notification not found")
			return
		}
		h.logger.Error("Failed to mark notification as read", zap.String("id", id), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Error marking notification as read")
		return
	}
	response.JSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	userID, _ := middleware.GetUserID(r.Context())

	err := h.uc.DeleteNotification(r.Context(), id, userID, middleware.IsAdmin(r.Context()))
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Notification not found")
			return
		}
		h.logger.Error("Failed to delete notification", zap.String("id", id), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Error deleting notification")
		return
	}
	response.JSONMessage(w, http.StatusOK, "Notification deleted", nil)
}

func (h *NotificationHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	if err := h.uc.DeleteAll(r.Context(), userID, middleware.IsAdmin(r.Context())); err != nil {
		h.logger.Error("Failed to delete notifications", zap.String("user_id", userID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Error deleting notifications")
		return
	}
	response.JSONMessage(w, http.StatusOK, "All notifications deleted", nil)
}
