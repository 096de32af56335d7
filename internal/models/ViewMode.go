package models

import (
	"fmt"
	"strings"
)

// ViewMode selects what the caller wants to render.
type ViewMode string

const (
	ViewTemperature ViewMode = "temperature"
	ViewSky         ViewMode = "sky"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch v := ViewMode(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewTemperature, ViewSky:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

func (v ViewMode) Title() string {
	switch v {
	case ViewTemperature:
		return "Temperature"
	case ViewSky:
		return "Sky"
	}
	return string(v)
}

// Resolution selects one point per day or every 3-hour point.
type Resolution string

const (
	ResolutionDaily Resolution = "daily"
	ResolutionRaw   Resolution = "raw"
)

func ParseResolution(s string) (Resolution, error) {
	switch r := Resolution(strings.ToLower(strings.TrimSpace(s))); r {
	case ResolutionDaily, ResolutionRaw:
		return r, nil
	}
	return "", fmt.Errorf("unknown resolution %q", s)
}
