package weather

import "weather-forecast/internal/models"

const (
	MinForecastDays = 1
	MaxForecastDays = 5

	// PointsPerDay is the provider's 3-hour resolution.
	PointsPerDay = 8
)

// FilterDays picks one point per calendar day, at most days of them.
//
// The reference time of day is the hour of the first point in the series. Each
// day contributes its first point at that hour, or its first point when the
// provider skipped that slot, so a gap in the data never shifts later days.
func FilterDays(series models.ForecastSeries, days int) models.DaySelection {
	selection := models.DaySelection{}
	if len(series) == 0 || days <= 0 {
		return selection
	}

	refHour := series[0].Time.Hour()

	var order []models.CalendarDay
	picked := make(map[models.CalendarDay]int)
	exact := make(map[models.CalendarDay]bool)

	for i, p := range series {
		day := p.Day()
		if _, seen := picked[day]; !seen {
			order = append(order, day)
			picked[day] = i
			exact[day] = p.Time.Hour() == refHour
			continue
		}
		if !exact[day] && p.Time.Hour() == refHour {
			picked[day] = i
			exact[day] = true
		}
	}

	for _, day := range order {
		if len(selection) == days {
			break
		}
		selection = append(selection, series[picked[day]])
	}

	return selection
}

// SliceDays keeps every 3-hour point of the first days days of the raw list.
func SliceDays(series models.ForecastSeries, days int) models.DaySelection {
	n := days * PointsPerDay
	if n <= 0 {
		return models.DaySelection{}
	}
	if n > len(series) {
		n = len(series)
	}
	return models.DaySelection(append([]models.ForecastPoint{}, series[:n]...))
}
