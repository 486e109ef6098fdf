package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/domain/calendar"
)

// CalendarHandler exposes the Persian calendar to the UI: today's date and
// date validation. It talks to the calendar package directly; there is no
// state involved.
type CalendarHandler struct{}

// NewCalendarHandler builds the handler.
func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{}
}

// TodayResponse is the current Persian date in both display forms.
type TodayResponse struct {
	Date     string `json:"date"`
	LongDate string `json:"longDate"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Weekday  int    `json:"weekday"`
}

// ValidateResponse reports whether a date string is a real Persian date.
type ValidateResponse struct {
	Date  string `json:"date"`
	Valid bool   `json:"valid"`
}

// Today godoc
// @Summary      Current Persian date
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  TodayResponse
// @Router       /api/calendar/today [get]
func (h *CalendarHandler) Today(c *fiber.Ctx) error {
	d := calendar.Today()
	return c.JSON(TodayResponse{
		Date:     calendar.FormatShort(d),
		LongDate: calendar.FormatLong(d),
		Year:     d.Year,
		Month:    d.Month,
		Day:      d.Day,
		Weekday:  d.Weekday,
	})
}

// Validate godoc
// @Summary      Validate a Persian date string
// @Tags         calendar
// @Produce      json
// @Param        date  query  string  true  "Date as YYYY/MM/DD"
// @Success      200   {object}  ValidateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calendar/validate [get]
func (h *CalendarHandler) Validate(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date query parameter is required"})
	}
	return c.JSON(ValidateResponse{Date: date, Valid: calendar.Validate(date)})
}
