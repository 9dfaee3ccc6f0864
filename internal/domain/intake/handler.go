package intake

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/intake/pkg/pagination"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the intake endpoints on the authenticated API group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/submissions", h.Submit)
	g.GET("/patients", h.ListPatients)
	g.GET("/patients/search", h.SearchPatients)
	g.GET("/patients/:id", h.GetPatient)
	g.GET("/patients/:id/submissions", h.ListPatientSubmissions)
	g.GET("/patients/:id/export", h.ExportPatient)
	g.GET("/family-problems", h.ListFamilyProblems)
}

func (h *Handler) Submit(c echo.Context) error {
	var sub Submission
	if err := c.Bind(&sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid submission body")
	}

	result, err := h.svc.Submit(c.Request().Context(), &sub)
	if err != nil {
		rid, _ := c.Get("request_id").(string)
		h.logger.Error().Err(err).Str("request_id", rid).Msg("intake submission failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to store submission")
	}

	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) ListPatients(c echo.Context) error {
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListPersons(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return fmt.Errorf("list patients: %w", err)
	}
	if items == nil {
		items = []*PersonSummary{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) SearchPatients(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	items, err := h.svc.SearchPersons(c.Request().Context(), q)
	if err != nil {
		return fmt.Errorf("search patients: %w", err)
	}
	if items == nil {
		items = []*Person{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := parsePersonID(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.GetPersonDetail(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListPatientSubmissions(c echo.Context) error {
	id, err := parsePersonID(c)
	if err != nil {
		return err
	}

	subs, err := h.svc.ListSubmissions(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": subs})
}

func (h *Handler) ExportPatient(c echo.Context) error {
	id, err := parsePersonID(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.GetPersonDetail(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}

	fields := FlattenPersonDetail(detail)

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="patient_%d.csv"`, id))
	c.Response().WriteHeader(http.StatusOK)
	return WriteCSV(c.Response(), fields)
}

func (h *Handler) ListFamilyProblems(c echo.Context) error {
	items, err := h.svc.ListFamilyProblems(c.Request().Context())
	if err != nil {
		return fmt.Errorf("list family problems: %w", err)
	}
	if items == nil {
		items = []*FamilyProblemLookup{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

func parsePersonID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	return id, nil
}
