// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// It follows the layout swag init produces; regenerate with
// `swag init -g cmd/server/docs.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/marquee"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/movies/{movieID}/similar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Get similar movies",
                "parameters": [
                    {"type": "integer", "description": "Catalog movie id", "name": "movieID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Movie"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/movies/filter": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Movies"],
                "summary": "Filter the catalog by criteria",
                "parameters": [
                    {"description": "Criteria", "name": "criteria", "in": "body", "required": true, "schema": {"$ref": "#/definitions/recommend.Criteria"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Movie"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/movie-chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json", "text/plain"],
                "tags": ["Chat"],
                "summary": "Chat with the movie critic",
                "parameters": [
                    {"description": "Conversation", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.MovieChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "Filtered movies as JSON, or the critic reply as text", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Movie"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/movieCriteria": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Extract criteria from a request",
                "parameters": [
                    {"type": "string", "description": "Free-text request", "name": "input", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/recommend.Criteria"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/movies/{movieID}/askQuestion": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Chat"],
                "summary": "Ask a question about a movie",
                "parameters": [
                    {"type": "integer", "description": "Movie id", "name": "movieID", "in": "path", "required": true},
                    {"type": "string", "description": "Question", "name": "question", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ChatMessage": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "enum": ["user", "assistant"]},
                "content": {"type": "string", "maxLength": 4000}
            }
        },
        "api.MovieChatRequest": {
            "type": "object",
            "properties": {
                "messages": {"type": "array", "maxItems": 50, "minItems": 1, "items": {"$ref": "#/definitions/api.ChatMessage"}}
            }
        },
        "catalog.CastMember": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "character": {"type": "string"},
                "profile_path": {"type": "string"}
            }
        },
        "catalog.Movie": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "backdrop_path": {"type": "string"},
                "poster_path": {"type": "string"},
                "release_date": {"type": "string", "example": "1999-03-31"},
                "vote_average": {"type": "number"},
                "vote_count": {"type": "integer"},
                "popularity": {"type": "number"},
                "overview": {"type": "string"},
                "imdb_id": {"type": "string"},
                "budget": {"type": "integer"},
                "homepage": {"type": "string"},
                "revenue": {"type": "integer"},
                "runtime": {"type": "integer"},
                "tagline": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "cast": {"type": "array", "items": {"$ref": "#/definitions/catalog.CastMember"}},
                "keywords": {"type": "array", "items": {"type": "string"}},
                "mpaa": {"type": "string"},
                "summaries": {"type": "array", "items": {"type": "string"}},
                "synopsis": {"type": "string"},
                "imdb_score": {"type": "number"}
            }
        },
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "data": {},
                "error": {"$ref": "#/definitions/models.APIError"},
                "metadata": {"$ref": "#/definitions/models.Metadata"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"},
                "query_time_ms": {"type": "integer"}
            }
        },
        "recommend.Criteria": {
            "type": "object",
            "properties": {
                "search": {"type": "string"},
                "genre": {"type": "string", "example": "Action, Comedy"},
                "mpaa": {"type": "string", "example": "PG-13"},
                "release_date_min": {"type": "string", "example": "1990-01-01"},
                "release_date_max": {"type": "string", "example": "1999-12-31"},
                "score_min": {"type": "number"},
                "score_max": {"type": "number"},
                "natural_language": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Marquee API",
	Description:      "Movie similarity search and criteria-driven recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
