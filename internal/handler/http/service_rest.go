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

type ServiceHandler struct {
	uc     *usecase.ServiceUsecase
	logger *zap.Logger
}

func NewServiceHandler(uc *usecase.ServiceUsecase, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{uc: uc, logger: logger}
}

func (h *ServiceHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.uc.ListServices(r.Context())
	if err != nil {
		h.logger.Error("Failed to list services", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Server error fetching services")
		return
	}
	response.JSON(w, http.StatusOK, services)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := h.uc.CreateService(r.Context(), in.Name)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrServiceNameRequired):
			response.Error(w, http.StatusBadRequest, "Service name is required")
		case errors.Is(err, xerrors.ErrServiceExists):
			response.Error(w, http.StatusConflict, "Service already exists")
		default:
			h.logger.Error("Failed to create service", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "Server error adding service")
		}
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ServiceHandler) ListRemarks(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseId")
	serviceID := chi.URLParam(r, "serviceId")

	remarks, err := h.uc.ListRemarks(r.Context(), caseID, serviceID)
	if err != nil {
		h.logger.Error("Failed to list remarks",
			zap.String("case_id", caseID), zap.String("service_id", serviceID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to fetch remarks")
		return
	}
	response.JSON(w, http.StatusOK, remarks)
}

func (h *ServiceHandler) CreateRemark(w http.ResponseWriter, r *http.Request) {
	var in domain.Remark
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid input")
		return
	}
	in.CaseID = chi.URLParam(r, "caseId")
	in.ServiceID = chi.URLParam(r, "serviceId")

	created, err := h.uc.CreateRemark(r.Context(), &in)
	if err != nil {
		if errors.Is(err, xerrors.ErrRemarkFields) {
			response.Error(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		h.logger.Error("Failed to save remark",
			zap.String("case_id", in.CaseID), zap.String("service_id", in.ServiceID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to save remark")
		return
	}
	response.JSON(w, http.StatusCreated, created)
}
