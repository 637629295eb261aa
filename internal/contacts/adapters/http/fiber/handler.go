package fiber

import (
	"context"
	"errors"
	"net/http"

	"contact-analytics-service/internal/contacts/core/domain"
	"contact-analytics-service/internal/contacts/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.ContactQueryInput) (*domain.Dashboard, error)
}

type ListContactsUseCase interface {
	Execute(ctx context.Context, in usecase.ContactQueryInput) (*domain.ContactSet, domain.Filters, error)
}

type ExportContactsUseCase interface {
	Execute(ctx context.Context, in usecase.ExportInput) (*usecase.ExportResult, error)
}

type GetDatabaseStatsUseCase interface {
	Execute(ctx context.Context) (*domain.DatabaseStats, error)
}

type RefreshUseCase interface {
	Execute(ctx context.Context) error
}

// UseCases groups the collaborators of ContactsHandler.
type UseCases struct {
	Dashboard GetDashboardUseCase
	List      ListContactsUseCase
	Export    ExportContactsUseCase
	Stats     GetDatabaseStatsUseCase
	Refresh   RefreshUseCase
}

type ContactsHandler struct {
	uc UseCases
}

func NewContactsHandler(uc UseCases) *ContactsHandler {
	return &ContactsHandler{uc: uc}
}

// Register mounts every contact route on r.
func (h *ContactsHandler) Register(r fiber.Router) {
	r.Get("/healthz", h.Health)
	r.Get("/filters", h.GetFilterOptions)
	r.Get("/dashboard", h.GetDashboard)
	r.Get("/contacts", h.ListContacts)
	r.Get("/contacts/export", h.ExportContacts)
	r.Get("/stats", h.GetStats)
	r.Post("/cache/refresh", h.RefreshCache)
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *ContactsHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{Status: "ok"})
}

// GetFilterOptions godoc
// @Summary Filter choices
// @Description Reference topic vocabulary and channel choices, each led by its "All" option
// @Tags Dashboard
// @Produce json
// @Success 200 {object} FilterOptionsResponse
// @Router /filters [get]
func (h *ContactsHandler) GetFilterOptions(c *fiber.Ctx) error {
	opts := usecase.GetFilterOptions()
	return c.Status(http.StatusOK).JSON(FilterOptionsResponse{
		Categories: opts.Categories,
		Channels:   opts.Channels,
	})
}

// GetDashboard godoc
// @Summary Contact dashboard
// @Description KPIs and every chart panel for the selected filters. Missing dates default to the last 90 days.
// @Tags Dashboard
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param channel query string false "Channel, e.g. Telefon | Chat"
// @Param primary_topic query string false "Topic substring"
// @Param secondary_topic query string false "Subtopic substring"
// @Param age query string false "Exact age"
// @Param gender query string false "Exact gender"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *ContactsHandler) GetDashboard(c *fiber.Ctx) error {
	var q ContactQuery
	if msg, ok := bindQuery(c, &q); !ok {
		return invalidQuery(c, msg)
	}

	res, err := h.uc.Dashboard.Execute(c.UserContext(), q.toInput())
	if err != nil {
		return writeError(c, err)
	}

	if res.RowCount == 0 {
		requestLogger(c).WithField("filters", q).Info("empty selection")
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(res))
}

// ListContacts godoc
// @Summary Filtered contact rows
// @Tags Contacts
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param channel query string false "Channel"
// @Param primary_topic query string false "Topic substring"
// @Param secondary_topic query string false "Subtopic substring"
// @Param age query string false "Exact age"
// @Param gender query string false "Exact gender"
// @Success 200 {object} ContactsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts [get]
func (h *ContactsHandler) ListContacts(c *fiber.Ctx) error {
	var q ContactQuery
	if msg, ok := bindQuery(c, &q); !ok {
		return invalidQuery(c, msg)
	}

	set, f, err := h.uc.List.Execute(c.UserContext(), q.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toContactsResponse(set, f))
}

// ExportContacts godoc
// @Summary Download filtered contacts
// @Description CSV (default) or XLSX file of the filtered rows
// @Tags Contacts
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv | xlsx"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, inclusive (YYYY-MM-DD)"
// @Param channel query string false "Channel"
// @Param primary_topic query string false "Topic substring"
// @Param secondary_topic query string false "Subtopic substring"
// @Param age query string false "Exact age"
// @Param gender query string false "Exact gender"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts/export [get]
func (h *ContactsHandler) ExportContacts(c *fiber.Ctx) error {
	var q ContactQuery
	if msg, ok := bindQuery(c, &q); !ok {
		return invalidQuery(c, msg)
	}
	var eq ExportQuery
	if msg, ok := bindQuery(c, &eq); !ok {
		return invalidQuery(c, msg)
	}

	res, err := h.uc.Export.Execute(c.UserContext(), usecase.ExportInput{
		Query:  q.toInput(),
		Format: eq.Format,
	})
	if err != nil {
		return writeError(c, err)
	}

	requestLogger(c).WithField("file", res.FileName).WithField("rows", res.Rows).Info("export generated")

	c.Attachment(res.FileName)
	c.Set(fiber.HeaderContentType, res.ContentType)
	return c.Status(http.StatusOK).Send(res.Body)
}

// GetStats godoc
// @Summary Database statistics
// @Description Total records, date coverage and distinct channels of the whole table
// @Tags Admin
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 503 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func (h *ContactsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats.Execute(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toStatsResponse(stats))
}

// RefreshCache godoc
// @Summary Refresh data
// @Description Drops every cached read so the next request hits the database
// @Tags Admin
// @Produce json
// @Success 200 {object} RefreshResponse
// @Failure 500 {object} ErrorResponse
// @Router /cache/refresh [post]
func (h *ContactsHandler) RefreshCache(c *fiber.Ctx) error {
	if err := h.uc.Refresh.Execute(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(RefreshResponse{Status: "refreshed"})
}

func invalidQuery(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: msg,
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidExportFormat):
		return invalidQuery(c, err.Error())
	case errors.Is(err, domain.ErrDataAccess):
		requestLogger(c).WithError(err).Error("data access failed")
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "data_access_error",
			Message: "failed to fetch data from database",
		})
	default:
		requestLogger(c).WithError(err).Error("request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
