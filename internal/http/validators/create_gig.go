package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "gigworks.com/gigworks/internal/data_models"
)

func ValidateCreateGigRequest(r *dto.CreateGigRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if r.Category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category is required")
	}
	if r.Location.Address == "" || r.Location.City == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location address and city are required")
	}
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "start_time and end_time are required")
	}
	return nil
}
