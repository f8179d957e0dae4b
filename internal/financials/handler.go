package financials

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/JeremyDong22/gp-calculator/internal/transport"
	"github.com/JeremyDong22/gp-calculator/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ProjectFinancials(projectID int64, cutoff *time.Time) (*ProjectFinancials, error)
	BonusPool(projectID int64, salaryRatio *float64, cutoff *time.Time) (*BonusPool, error)
	DepartmentSummary(cutoff *time.Time) (*DepartmentSummary, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// parseCutoff reads the optional cutoff=YYYY-MM-DD query parameter.
func parseCutoff(r *http.Request) (*time.Time, error) {
	raw := r.URL.Query().Get("cutoff")
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handler) ProjectFinancials(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	cutoff, err := parseCutoff(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "cutoff must be YYYY-MM-DD")
		return
	}

	fin, err := h.Service.ProjectFinancials(projectID, cutoff)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, fin)
}

func (h *Handler) BonusPool(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	cutoff, err := parseCutoff(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "cutoff must be YYYY-MM-DD")
		return
	}

	var salaryRatio *float64
	if raw := r.URL.Query().Get("salary_ratio"); raw != "" {
		ratio, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "salary_ratio must be a number")
			return
		}
		salaryRatio = &ratio
	}

	pool, err := h.Service.BonusPool(projectID, salaryRatio, cutoff)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, pool)
}

func (h *Handler) DepartmentSummary(w http.ResponseWriter, r *http.Request) {
	cutoff, err := parseCutoff(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "cutoff must be YYYY-MM-DD")
		return
	}

	summary, err := h.Service.DepartmentSummary(cutoff)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}
