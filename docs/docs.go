// Package docs holds the Swagger spec served under /swagger, in the layout
// swag emits. Regenerate with `swag init -g cmd/weather-forecast/main.go`
// after changing handler annotations; router tests check the paths match.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/forecast": {
            "get": {
                "description": "Fetches the 5 day / 3 hour forecast for a city and returns either a temperature trend or sky condition icons, one point per day.",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Get forecast view",
                "parameters": [
                    {"type": "string", "example": "London,UK", "description": "City name, optionally with country code", "name": "city", "in": "query", "required": true},
                    {"maximum": 5, "minimum": 1, "type": "integer", "example": 3, "description": "Number of forecast days (1-5, default: 1)", "name": "days", "in": "query"},
                    {"enum": ["temperature", "sky"], "type": "string", "description": "temperature or sky (default: temperature)", "name": "view", "in": "query"},
                    {"enum": ["daily", "raw"], "type": "string", "description": "daily (one point per day) or raw (every 3-hour point)", "name": "resolution", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Successful response", "schema": {"$ref": "#/definitions/models.ForecastView"}},
                    "400": {"description": "Bad request - invalid parameters", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "City not found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "502": {"description": "Forecast provider failure", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/v1/forecast/sky": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Get sky condition icons",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "query", "required": true},
                    {"maximum": 5, "minimum": 1, "type": "integer", "description": "Number of forecast days (1-5, default: 1)", "name": "days", "in": "query"},
                    {"enum": ["daily", "raw"], "type": "string", "description": "daily or raw", "name": "resolution", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ForecastView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/v1/forecast/temperature": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Get temperature trend",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "query", "required": true},
                    {"maximum": 5, "minimum": 1, "type": "integer", "description": "Number of forecast days (1-5, default: 1)", "name": "days", "in": "query"},
                    {"enum": ["daily", "raw"], "type": "string", "description": "daily or raw", "name": "resolution", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ForecastView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/v1/icons/{condition}": {
            "get": {
                "produces": ["image/svg+xml"],
                "tags": ["Assets"],
                "summary": "Get sky condition icon",
                "parameters": [
                    {"enum": ["clear", "cloud", "rain", "snow", "unknown"], "type": "string", "description": "Sky condition", "name": "condition", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "City not found. Please try again."}
            }
        },
        "models.ForecastView": {
            "type": "object",
            "properties": {
                "city": {"type": "string", "example": "London"},
                "country": {"type": "string", "example": "GB"},
                "days": {"type": "integer", "example": 3},
                "resolution": {"type": "string", "example": "daily"},
                "sky": {"type": "array", "items": {"$ref": "#/definitions/models.SkyPoint"}},
                "temperatures": {"type": "array", "items": {"$ref": "#/definitions/models.TemperaturePoint"}},
                "title": {"type": "string", "example": "Temperature for the next 3 days in London"},
                "view": {"type": "string", "example": "temperature"}
            }
        },
        "models.SkyPoint": {
            "type": "object",
            "properties": {
                "caption": {"type": "string", "example": "2025-07-25 15:00:00"},
                "condition": {"type": "string", "example": "clear"},
                "icon": {"type": "string", "example": "/v1/icons/clear"},
                "time": {"type": "string", "example": "2025-07-25T15:00:00Z"}
            }
        },
        "models.TemperaturePoint": {
            "type": "object",
            "properties": {
                "caption": {"type": "string", "example": "2025-07-25 15:00:00"},
                "temperature": {"type": "number", "example": 22.5},
                "time": {"type": "string", "example": "2025-07-25T15:00:00Z"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Weather Forecast API",
	Description:      "Five day forecast views for a city: temperature trend or sky condition icons, one point per day.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
