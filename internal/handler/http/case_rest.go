package httphandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Finaxis002/FCOBackend/internal/domain"
	"github.com/Finaxis002/FCOBackend/internal/middleware"
	"github.com/Finaxis002/FCOBackend/internal/usecase"
	"github.com/Finaxis002/FCOBackend/pkg/response"
	xerrors "github.com/Finaxis002/FCOBackend/pkg/xerrors"
)

type CaseHandler struct {
	uc     *usecase.CaseUsecase
	logger *zap.Logger
}

func NewCaseHandler(uc *usecase.CaseUsecase, logger *zap.Logger) *CaseHandler {
	return &CaseHandler{uc: uc, logger: logger}
}

func (h *CaseHandler) AddCase(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateCaseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := h.uc.CreateCase(r.Context(), &in)
	if err != nil {
		if errors.Is(err, xerrors.ErrUnitNameMissing) {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("Failed to create case", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to create case")
		return
	}
	response.JSONMessage(w, http.StatusCreated, "Case created successfully", created)
}

func (h *CaseHandler) GetCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.uc.ListCases(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch cases", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch cases")
		return
	}
	response.JSON(w, http.StatusOK, cases)
}

func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.uc.GetCase(r.Context(), id)
	if err != nil {
		if errors.Is(err, xerrors.ErrCaseNotFound) {
			response.Error(w, http.StatusNotFound, "Case not found")
			return
		}
		h.logger.Error("Failed to fetch case", zap.String("case_id", id), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch case")
		return
	}
	response.JSON(w, http.StatusOK, c)
}

func (h *CaseHandler) UpdateCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in domain.UpdateCaseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid input")
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	result, err := h.uc.UpdateCase(r.Context(), id, &in, actorID)
	if err != nil {
		if errors.Is(err, xerrors.ErrCaseNotFound) {
			response.Error(w, http.StatusNotFound, "Case not found")
			return
		}
		h.logger.Error("Failed to update case", zap.String("case_id", id), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to update case")
		return
	}
	response.JSONMessage(w, http.StatusOK, "Case updated successfully", result)
}

func (h *CaseHandler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	actorName, _ := middleware.GetUserName(r.Context())

	if err := h.uc.DeleteCase(r.Context(), id, actorName); err != nil {
		if errors.Is(err, xerrors.ErrCaseNotFound) {
			response.Error(w, http.StatusNotFound, "Case not found")
			return
		}
		h.logger.Error("Failed to delete case", zap.String("case_id", id), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to delete case")
		return
	}
	response.JSONMessage(w, http.StatusOK, "Case deleted successfully", nil)
}
