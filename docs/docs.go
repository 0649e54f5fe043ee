// Package docs registers the OpenAPI document of the HTTP API with swaggo/swag.
// Keep it in line with the annotations in cmd/moodboard and internal/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard figures and recent entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.DashboardResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/entries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Entries of a day or of a person",
                "parameters": [
                    {"type": "string", "description": "day as YYYY-MM-DD", "name": "date", "in": "query"},
                    {"type": "string", "description": "person name, case-insensitive", "name": "person", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.EntriesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/entries/evening": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Submit or update an evening check-in",
                "parameters": [
                    {"description": "evening check-in", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.EveningRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SubmitResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/entries/morning": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Submit or update a morning forecast",
                "parameters": [
                    {"description": "morning forecast", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.MorningRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SubmitResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        },
        "/entries/recent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Most recent entries",
                "parameters": [
                    {"type": "integer", "description": "1 to 50, defaults to 10", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.EntriesResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httputil.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.DashboardResponse": {
            "type": "object",
            "properties": {
                "recent": {"type": "array", "items": {"$ref": "#/definitions/api.EntryResponse"}},
                "stats": {"$ref": "#/definitions/entity.DashboardStats"}
            }
        },
        "api.EntriesResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/api.EntryResponse"}}
            }
        },
        "api.EntryResponse": {
            "type": "object",
            "properties": {
                "actual_feeling": {"type": "string"},
                "comment": {"type": "string"},
                "created_at": {"type": "string"},
                "employee_name": {"type": "string"},
                "energy_level": {"type": "integer"},
                "entry_date": {"type": "string"},
                "entry_type": {"type": "string"},
                "id": {"type": "string"},
                "mood_color": {"type": "string"},
                "predicted_mood": {"type": "string"},
                "satisfaction_rating": {"type": "integer"},
                "updated_at": {"type": "string"}
            }
        },
        "api.EveningRequest": {
            "type": "object",
            "properties": {
                "actual_feeling": {"type": "string"},
                "comment": {"type": "string"},
                "employee_name": {"type": "string"},
                "entry_date": {"type": "string"},
                "satisfaction_rating": {"type": "integer"}
            }
        },
        "api.MorningRequest": {
            "type": "object",
            "properties": {
                "employee_name": {"type": "string"},
                "energy_level": {"type": "integer"},
                "entry_date": {"type": "string"},
                "mood_color": {"type": "string"},
                "predicted_mood": {"type": "string"}
            }
        },
        "api.SubmitResponse": {
            "type": "object",
            "properties": {
                "entry": {"$ref": "#/definitions/api.EntryResponse"},
                "updated": {"type": "boolean"}
            }
        },
        "entity.DashboardStats": {
            "type": "object",
            "properties": {
                "current_streak": {"type": "integer"},
                "total_entries": {"type": "integer"},
                "weekly_average": {"type": "number"}
            }
        },
        "httputil.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "details": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Moodboard API",
	Description:      "API for the team mood tracker: morning forecasts, evening check-ins and a dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
