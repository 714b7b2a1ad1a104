// file: internals/features/rollcall/reports/service/range_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

/* =========================================================
 * Report date ranges
 * ========================================================= */

const (
	ReportTypeDaily   = "daily"
	ReportTypeWeekly  = "weekly"
	ReportTypeMonthly = "monthly"
	ReportTypeCustom  = "custom"
)

// ResolveRange maps a report type to an inclusive [from, to] date pair.
// daily = today, weekly = Monday..Sunday of the current week, monthly =
// the current calendar month. Anything else is treated as custom and
// reads dateFrom/dateTo (YYYY-MM-DD), defaulting each missing bound to
// today.
func ResolveRange(reportType, dateFrom, dateTo string, now time.Time) (time.Time, time.Time, error) {
	today := truncateToDay(now)

	switch reportType {
	case ReportTypeDaily:
		return today, today, nil

	case ReportTypeWeekly:
		// time.Weekday has Sunday = 0; shift so Monday opens the week
		offset := int(now.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7
		}
		monday := today.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 6), nil

	case ReportTypeMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return first, last, nil

	default:
		from, to := today, today
		if dateFrom != "" {
			parsed, err := time.Parse("2006-01-02", dateFrom)
			if err != nil {
				return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid date_from, want YYYY-MM-DD")
			}
			from = parsed
		}
		if dateTo != "" {
			parsed, err := time.Parse("2006-01-02", dateTo)
			if err != nil {
				return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "invalid date_to, want YYYY-MM-DD")
			}
			to = parsed
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "date_to must not precede date_from")
		}
		return from, to, nil
	}
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
