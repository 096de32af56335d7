package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkyFromCode(t *testing.T) {
	tests := []struct {
		code int
		want SkyCondition
	}{
		{200, SkyRain},
		{232, SkyRain},
		{301, SkyRain},
		{500, SkyRain},
		{511, SkyRain},
		{600, SkySnow},
		{622, SkySnow},
		{701, SkyCloud},
		{781, SkyCloud},
		{800, SkyClear},
		{801, SkyCloud},
		{804, SkyCloud},
		{0, SkyUnknown},
		{150, SkyUnknown},
		{950, SkyUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SkyFromCode(tt.code), "code %d", tt.code)
	}
}

func TestSkyFromLabel(t *testing.T) {
	assert.Equal(t, SkyClear, SkyFromLabel("Clear"))
	assert.Equal(t, SkyCloud, SkyFromLabel("Clouds"))
	assert.Equal(t, SkyRain, SkyFromLabel("Rain"))
	assert.Equal(t, SkyRain, SkyFromLabel("Thunderstorm"))
	assert.Equal(t, SkySnow, SkyFromLabel(" snow "))
	assert.Equal(t, SkyCloud, SkyFromLabel("Fog"))
	assert.Equal(t, SkyUnknown, SkyFromLabel("Meteor shower"))
}

func TestSkyConditionText(t *testing.T) {
	for _, c := range append(SkyConditions(), SkyUnknown) {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var parsed SkyCondition
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, c, parsed)
	}

	assert.Equal(t, "unknown", SkyCondition(42).String())

	var c SkyCondition
	assert.Error(t, c.UnmarshalText([]byte("hail")))
}

func TestSkyConditionJSON(t *testing.T) {
	data, err := json.Marshal(SkyPoint{Condition: SkySnow})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"condition":"snow"`)
}

func TestParseViewMode(t *testing.T) {
	v, err := ParseViewMode("Temperature")
	require.NoError(t, err)
	assert.Equal(t, ViewTemperature, v)

	v, err = ParseViewMode("sky")
	require.NoError(t, err)
	assert.Equal(t, ViewSky, v)
	assert.Equal(t, "Sky", v.Title())

	_, err = ParseViewMode("humidity")
	assert.Error(t, err)
}

func TestParseResolution(t *testing.T) {
	r, err := ParseResolution("RAW")
	require.NoError(t, err)
	assert.Equal(t, ResolutionRaw, r)

	_, err = ParseResolution("hourly")
	assert.Error(t, err)
}
