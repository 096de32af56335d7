package models

import (
	"fmt"
	"strings"
)

// SkyCondition is the display category a provider condition maps to.
type SkyCondition int

const (
	SkyUnknown SkyCondition = iota
	SkyClear
	SkyCloud
	SkyRain
	SkySnow
)

var skyNames = [...]string{
	SkyUnknown: "unknown",
	SkyClear:   "clear",
	SkyCloud:   "cloud",
	SkyRain:    "rain",
	SkySnow:    "snow",
}

// SkyConditions lists the conditions that have a dedicated icon.
func SkyConditions() []SkyCondition {
	return []SkyCondition{SkyClear, SkyCloud, SkyRain, SkySnow}
}

func (c SkyCondition) String() string {
	if c < 0 || int(c) >= len(skyNames) {
		return skyNames[SkyUnknown]
	}
	return skyNames[c]
}

func (c SkyCondition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *SkyCondition) UnmarshalText(text []byte) error {
	parsed, err := ParseSkyCondition(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseSkyCondition accepts the names produced by String, case-insensitively.
func ParseSkyCondition(s string) (SkyCondition, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range skyNames {
		if n == name {
			return SkyCondition(i), nil
		}
	}
	return SkyUnknown, fmt.Errorf("unknown sky condition %q", s)
}

// conditionRange maps an inclusive block of OpenWeatherMap condition codes.
// See https://openweathermap.org/weather-conditions.
type conditionRange struct {
	from, to int
	sky      SkyCondition
}

var conditionCodes = []conditionRange{
	{200, 299, SkyRain},  // thunderstorm
	{300, 399, SkyRain},  // drizzle
	{500, 599, SkyRain},  // rain
	{600, 699, SkySnow},  // snow
	{700, 799, SkyCloud}, // mist, fog, haze, dust...
	{800, 800, SkyClear},
	{801, 899, SkyCloud},
}

// conditionLabels covers bodies that carry the group label but no code.
var conditionLabels = map[string]SkyCondition{
	"clear":        SkyClear,
	"clouds":       SkyCloud,
	"rain":         SkyRain,
	"drizzle":      SkyRain,
	"thunderstorm": SkyRain,
	"snow":         SkySnow,
	"mist":         SkyCloud,
	"smoke":        SkyCloud,
	"haze":         SkyCloud,
	"dust":         SkyCloud,
	"fog":          SkyCloud,
	"sand":         SkyCloud,
	"ash":          SkyCloud,
	"squall":       SkyCloud,
	"tornado":      SkyCloud,
}

// SkyFromCode maps a provider condition code to its sky category.
func SkyFromCode(code int) SkyCondition {
	for _, r := range conditionCodes {
		if code >= r.from && code <= r.to {
			return r.sky
		}
	}
	return SkyUnknown
}

// SkyFromLabel maps a provider condition group label ("Clear", "Clouds", ...).
func SkyFromLabel(label string) SkyCondition {
	if sky, ok := conditionLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return sky
	}
	return SkyUnknown
}
