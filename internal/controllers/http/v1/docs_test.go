package http

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "weather-forecast/docs"
)

var routeParam = regexp.MustCompile(`:([a-zA-Z]+)`)

func TestSwaggerDoc_CoversV1Routes(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	app := newTestApp(t, &fakeRepository{})

	var documented int
	for _, route := range app.GetRoutes(true) {
		if route.Method != fiber.MethodGet || !strings.HasPrefix(route.Path, "/v1/") {
			continue
		}
		path := routeParam.ReplaceAllString(route.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "route %s missing from swagger doc", path) {
			assert.Contains(t, ops, "get", path)
		}
		documented++
	}

	assert.Equal(t, len(doc.Paths), documented, "swagger doc lists routes the router does not serve")
	assert.Contains(t, doc.Definitions, "models.ForecastView")
	assert.Contains(t, doc.Definitions, "http.ErrorResponse")
}
