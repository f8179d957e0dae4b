package report

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/JeremyDong22/gp-calculator/internal/transport"
	"github.com/JeremyDong22/gp-calculator/pkg/logger"
	"github.com/xuri/excelize/v2"
)

type ServiceAPI interface {
	BuildProjectControlWorkbook(cutoff *time.Time) (*excelize.File, error)
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

func (h *Handler) ProjectControl(w http.ResponseWriter, r *http.Request) {
	var cutoff *time.Time
	if raw := r.URL.Query().Get("cutoff"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "cutoff must be YYYY-MM-DD")
			return
		}
		cutoff = &t
	}

	f, err := h.Service.BuildProjectControlWorkbook(cutoff)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="project-control.xlsx"`)
	if err := f.Write(w); err != nil {
		h.Logger.Error("failed to stream workbook", "error", err)
	}
}
