package models

import "fmt"

type Forecast struct {
	RepositoryName string         `json:"repository_name" example:"openweathermap"`
	City           string         `json:"city" example:"London"`
	Country        string         `json:"country" example:"GB"`
	TimezoneOffset int            `json:"timezone_offset" example:"3600"`
	Series         ForecastSeries `json:"series"`
}

func (f *Forecast) RequestParams() string {
	return fmt.Sprintf("city: %s points: %d", f.City, len(f.Series))
}
