package models

import "time"

type TemperaturePoint struct {
	Time        time.Time `json:"time" example:"2025-07-25T15:00:00Z"`
	Caption     string    `json:"caption" example:"2025-07-25 15:00:00"`
	Temperature float64   `json:"temperature" example:"22.5"`
}

type SkyPoint struct {
	Time      time.Time    `json:"time" example:"2025-07-25T15:00:00Z"`
	Caption   string       `json:"caption" example:"2025-07-25 15:00:00"`
	Condition SkyCondition `json:"condition" swaggertype:"string" example:"clear"`
	Icon      string       `json:"icon,omitempty" example:"/v1/icons/clear"`
}

// ForecastView is what the presentation layer renders: a temperature trend or sky icons.
type ForecastView struct {
	City         string             `json:"city" example:"London"`
	Country      string             `json:"country,omitempty" example:"GB"`
	Days         int                `json:"days" example:"3"`
	View         ViewMode           `json:"view" example:"temperature"`
	Resolution   Resolution         `json:"resolution" example:"daily"`
	Title        string             `json:"title" example:"Temperature for the next 3 days in London"`
	Temperatures []TemperaturePoint `json:"temperatures,omitempty"`
	Sky          []SkyPoint         `json:"sky,omitempty"`
}
