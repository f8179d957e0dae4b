package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/JeremyDong22/gp-calculator/internal/auth"
	"github.com/JeremyDong22/gp-calculator/internal/cashreceipt"
	"github.com/JeremyDong22/gp-calculator/internal/expense"
	"github.com/JeremyDong22/gp-calculator/internal/financials"
	"github.com/JeremyDong22/gp-calculator/internal/project"
	"github.com/JeremyDong22/gp-calculator/internal/report"
	"github.com/JeremyDong22/gp-calculator/internal/timesheet"
	"github.com/JeremyDong22/gp-calculator/internal/transport/middleware"
	"github.com/JeremyDong22/gp-calculator/internal/transport/swagger"
	"github.com/JeremyDong22/gp-calculator/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Project     *project.Handler
	Timesheet   *timesheet.Handler
	Expense     *expense.Handler
	CashReceipt *cashreceipt.Handler
	Financials  *financials.Handler
	Report      *report.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.Metrics)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/", h.User.ListUsers)
				ur.Get("/{id}", h.User.GetUser)

				ur.Group(func(ar chi.Router) {
					ar.Use(middleware.RequireRoles(auth.RoleDepartmentHead))
					ar.Post("/", h.User.CreateUser)
					ar.Patch("/{id}/rates", h.User.UpdateRates)
				})
			})

			pr.Route("/projects", func(prj chi.Router) {
				prj.Post("/", h.Project.CreateProject)
				prj.Get("/", h.Project.ListProjects)
				prj.Get("/{id}", h.Project.GetProject)
				prj.Patch("/{id}/completion-date", h.Project.SetCompletionDate)
				prj.Get("/{id}/timesheets", h.Timesheet.ListForProject)
				prj.Get("/{id}/expenses", h.Expense.ListForProject)
				prj.Get("/{id}/cash-receipt", h.CashReceipt.GetForProject)
				prj.Get("/{id}/financials", h.Financials.ProjectFinancials)
				prj.Get("/{id}/bonus-pool", h.Financials.BonusPool)
			})

			pr.Route("/timesheets", func(tr chi.Router) {
				tr.Post("/", h.Timesheet.Submit)
				tr.Get("/", h.Timesheet.ListMine)
				tr.Patch("/{id}/approve", h.Timesheet.Approve)
				tr.Patch("/{id}/reject", h.Timesheet.Reject)
				tr.Put("/{id}", h.Timesheet.Update)
				tr.Delete("/{id}", h.Timesheet.Delete)
			})

			pr.Route("/expenses", func(er chi.Router) {
				er.Post("/", h.Expense.Submit)
				er.Get("/", h.Expense.ListMine)
				er.Patch("/{id}/advance", h.Expense.Advance)
				er.Patch("/{id}/reject", h.Expense.Reject)
				er.Put("/{id}", h.Expense.Update)
				er.Delete("/{id}", h.Expense.Delete)
			})

			pr.Route("/cash-receipts", func(cr chi.Router) {
				cr.Post("/", h.CashReceipt.Create)
				cr.Put("/{id}", h.CashReceipt.Update)
			})

			pr.Get("/executors/{id}/cash-summary", h.CashReceipt.ExecutorSummary)
			pr.Get("/financials/department", h.Financials.DepartmentSummary)
			pr.Get("/reports/project-control.xlsx", h.Report.ProjectControl)
		})
	})
}
