package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "gigworks.com/gigworks/internal/data_models"
	apperrors "gigworks.com/gigworks/internal/errors"
	"gigworks.com/gigworks/internal/http/validators"
	model "gigworks.com/gigworks/internal/models"
	"gigworks.com/gigworks/internal/services"
)

type Handler struct {
	gigs      *services.GigService
	lifecycle *services.LifecycleService
	payments  *services.PaymentRecorder
}

func NewHandler(gigs *services.GigService, lifecycle *services.LifecycleService, payments *services.PaymentRecorder) *Handler {
	return &Handler{
		gigs:      gigs,
		lifecycle: lifecycle,
		payments:  payments,
	}
}

// domainError maps service errors onto HTTP responses.
func domainError(err error) error {
	return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
}

func callerID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

func callerRole(c echo.Context) string {
	role, _ := c.Get("role").(string)
	return role
}

func (h *Handler) CreateGig(c echo.Context) error {
	var req dto.CreateGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateGigRequest(&req); err != nil {
		return err
	}

	in := services.CreateGigInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    model.GigCategory(req.Category),
		Location: model.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			Pincode: req.Location.Pincode,
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
		},
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		HourlyRate:      req.HourlyRate,
		MaxApplications: req.MaxApplications,
	}

	gig, err := h.gigs.CreateGig(c.Request().Context(), callerID(c), in)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, gig)
}

func (h *Handler) GetGig(c echo.Context) error {
	gig, err := h.gigs.GetGig(c.Request().Context(), c.Param("id"))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, gig)
}

func (h *Handler) ListGigs(c echo.Context) error {
	in := services.ListGigsInput{
		Status:        model.GigStatus(c.QueryParam("status")),
		Category:      model.GigCategory(c.QueryParam("category")),
		City:          c.QueryParam("city"),
		SortField:     c.QueryParam("sort"),
		SortDirection: c.QueryParam("dir"),
		Page:          queryInt(c, "page"),
		Limit:         queryInt(c, "limit"),
	}

	gigs, total, err := h.gigs.ListGigs(c.Request().Context(), in)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total": total,
		"gigs":  gigs,
	})
}

func (h *Handler) ListMyGigs(c echo.Context) error {
	gigs, total, err := h.gigs.ListMyGigs(
		c.Request().Context(),
		callerID(c),
		callerRole(c),
		model.GigStatus(c.QueryParam("status")),
		queryInt(c, "page"),
		queryInt(c, "limit"),
	)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total": total,
		"gigs":  gigs,
	})
}

func (h *Handler) UpdateGig(c echo.Context) error {
	var req dto.UpdateGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	in := services.UpdateGigInput{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		HourlyRate:  req.HourlyRate,
	}
	if req.Category != nil {
		category := model.GigCategory(*req.Category)
		in.Category = &category
	}
	if req.Location != nil {
		in.Location = &model.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			Pincode: req.Location.Pincode,
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
		}
	}

	gig, err := h.gigs.UpdateGig(c.Request().Context(), callerID(c), c.Param("id"), in)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, gig)
}

func (h *Handler) ApplyForGig(c echo.Context) error {
	var req dto.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	application, err := h.lifecycle.Apply(c.Request().Context(), c.Param("id"), callerID(c), req.Message)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, application)
}

func (h *Handler) ResolveApplication(c echo.Context) error {
	var req dto.ResolveApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	gig, err := h.lifecycle.Resolve(
		c.Request().Context(),
		c.Param("id"),
		c.Param("applicationId"),
		callerID(c),
		services.ResolveAction(req.Action),
	)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, gig)
}

func (h *Handler) StartGig(c echo.Context) error {
	gig, err := h.lifecycle.Start(c.Request().Context(), c.Param("id"), callerID(c))
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, gig)
}

func (h *Handler) CompleteGig(c echo.Context) error {
	gig, payment, err := h.lifecycle.Complete(c.Request().Context(), c.Param("id"), callerID(c))
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"gig":     gig,
		"payment": payment,
	})
}

func (h *Handler) CancelGig(c echo.Context) error {
	var req dto.CancelGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	gig, err := h.lifecycle.Cancel(c.Request().Context(), c.Param("id"), callerID(c), req.Reason)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, gig)
}

func (h *Handler) AddReview(c echo.Context) error {
	var req dto.AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	review, err := h.gigs.AddReview(c.Request().Context(), c.Param("id"), callerID(c), services.ReviewInput{
		Stars:   req.Stars,
		Comment: req.Comment,
	})
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusCreated, review)
}

func (h *Handler) InitiatePayment(c echo.Context) error {
	var req dto.InitiatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Method == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "method is required")
	}

	payment, err := h.payments.Initiate(c.Request().Context(), c.Param("id"), req.Method)
	if err != nil {
		return domainError(err)
	}

	return c.JSON(http.StatusOK, payment)
}

func queryInt(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}
