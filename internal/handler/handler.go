package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-service/internal/errs"
	"github.com/Astemirdum/lending-service/internal/model"
	"github.com/Astemirdum/lending-service/pkg/auth"
	mw "github.com/Astemirdum/lending-service/pkg/middleware"
	"github.com/Astemirdum/lending-service/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	log        *zap.Logger
}

func New(lendingSvc LendingService, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter(jwtKey []byte) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.JwtAuthentication(jwtKey),
	)

	staff := mw.RequireRoles(auth.RoleStaff, auth.RoleAdmin)

	api.POST("/borrowings/schedule", h.ScheduleBooking)
	api.GET("/borrowings", h.ListBookings)
	api.GET("/borrowings/:borrowingUid", h.GetBooking)
	api.PATCH("/borrowings/:borrowingUid/approve", h.ApproveBooking, staff)
	api.PATCH("/borrowings/:borrowingUid/reject", h.RejectBooking, staff)
	api.POST("/borrowings/:borrowingUid/activate", h.ActivateBooking, staff)
	api.POST("/borrowings/:borrowingUid/return", h.ReturnBooking, staff)

	api.GET("/items", h.ListItems)
	api.GET("/items/:id", h.GetItem)
	api.GET("/items/:id/availability", h.ItemAvailability)
	api.POST("/items", h.CreateItem, staff)
	api.PATCH("/items/:id", h.UpdateItem, staff)
	api.DELETE("/items/:id", h.DeleteItem, staff)

	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:id", h.GetCategory)
	api.POST("/categories", h.CreateCategory, staff)
	api.PATCH("/categories/:id", h.UpdateCategory, staff)
	api.DELETE("/categories/:id", h.DeleteCategory, staff)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func principal(c echo.Context) (auth.Profile, error) {
	p, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Profile{}, echo.NewHTTPError(http.StatusUnauthorized, "no principal")
	}
	return p, nil
}

func (h *Handler) ScheduleBooking(c echo.Context) error {
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := principal(c)
	if err != nil {
		return err
	}
	req.Username = p.Username

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	b, err := h.lendingSvc.ScheduleBooking(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPastStartDate), errors.Is(err, errs.ErrInvalidWindow):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		case errors.Is(err, errs.ErrUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	return h.transitionBooking(c, h.lendingSvc.ApproveBooking)
}

func (h *Handler) RejectBooking(c echo.Context) error {
	return h.transitionBooking(c, h.lendingSvc.RejectBooking)
}

func (h *Handler) transitionBooking(c echo.Context, transition func(ctx context.Context, bookingUid string) (model.Booking, error)) error {
	bookingUid := c.Param("borrowingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowingUid is empty")
	}
	b, err := transition(c.Request().Context(), bookingUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found in expected state")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ActivateBooking(c echo.Context) error {
	bookingUid := c.Param("borrowingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowingUid is empty")
	}
	b, err := h.lendingSvc.ActivateBooking(c.Request().Context(), bookingUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "scheduled booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	// the re-check failed and the booking was cancelled instead of activated
	if b.Status == model.StatusCancelled {
		return c.JSON(http.StatusConflict, b)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ReturnBooking(c echo.Context) error {
	bookingUid := c.Param("borrowingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowingUid is empty")
	}
	var req model.ReturnBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := principal(c)
	if err != nil {
		return err
	}

	b, err := h.lendingSvc.ReturnBooking(c.Request().Context(), bookingUid, req, p.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "borrowing not found or not eligible for return")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) GetBooking(c echo.Context) error {
	bookingUid := c.Param("borrowingUid")
	if bookingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "borrowingUid is empty")
	}
	p, err := principal(c)
	if err != nil {
		return err
	}

	b, err := h.lendingSvc.GetBooking(c.Request().Context(), bookingUid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !p.Role.IsStaff() && b.Username != p.Username {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden to view this record")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) ListBookings(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	f := model.BookingFilter{
		Username: c.QueryParam("username"),
	}
	if v := c.QueryParam("itemId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid itemId")
		}
		f.ItemID = id
	}
	for _, s := range c.QueryParams()["status"] {
		f.Statuses = append(f.Statuses, model.BookingStatus(s))
	}
	if v := c.QueryParam("page"); v != "" {
		if f.Page, err = strconv.Atoi(v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if f.Size, err = strconv.Atoi(v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}

	if !p.Role.IsStaff() {
		if f.Username != "" && f.Username != p.Username {
			return echo.NewHTTPError(http.StatusForbidden, "users can only view their own borrowings")
		}
		f.Username = p.Username
	}

	list, err := h.lendingSvc.ListBookings(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, list)
}
