package models

import "time"

// ForecastPoint is one 3-hour forecast entry as returned by the provider.
type ForecastPoint struct {
	Time          time.Time    `json:"time" example:"2025-07-25T15:00:00Z"`
	DateText      string       `json:"dt_txt" example:"2025-07-25 15:00:00"`
	Temperature   float64      `json:"temperature" example:"22.5"`
	Sky           SkyCondition `json:"sky" swaggertype:"string" example:"clear"`
	ConditionCode int          `json:"condition_code" example:"800"`
	Description   string       `json:"description" example:"clear sky"`
}

// ForecastSeries is the flat, chronological list of forecast points for one location.
type ForecastSeries []ForecastPoint

// DaySelection holds one representative point per calendar day.
type DaySelection []ForecastPoint

// CalendarDay identifies a date in the location the timestamp carries.
type CalendarDay struct {
	Year  int
	Month time.Month
	Day   int
}

// Day returns the calendar day of the point in the point's own location.
func (p ForecastPoint) Day() CalendarDay {
	y, m, d := p.Time.Date()
	return CalendarDay{Year: y, Month: m, Day: d}
}

// Days returns the number of distinct calendar days covered by the series.
func (s ForecastSeries) Days() int {
	seen := make(map[CalendarDay]struct{}, len(s))
	for _, p := range s {
		seen[p.Day()] = struct{}{}
	}
	return len(seen)
}

// IsChronological reports whether timestamps never decrease.
func (s ForecastSeries) IsChronological() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Time.Before(s[i-1].Time) {
			return false
		}
	}
	return true
}

// Series re-expresses the selection as a series so it can be filtered again.
func (d DaySelection) Series() ForecastSeries {
	return ForecastSeries(append([]ForecastPoint(nil), d...))
}
