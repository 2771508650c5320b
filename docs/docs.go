// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
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
        "/stats/ratings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Elo rating table",
                "parameters": [
                    {"type": "string", "description": "overall, 1v1 or 2v2", "name": "mode", "in": "query"},
                    {"type": "string", "description": "tournaments, both or friendlies", "name": "scope", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/stats/ratings/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Rating tables for every mode",
                "parameters": [
                    {"type": "string", "description": "tournaments, both or friendlies", "name": "scope", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/stats/players": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Players overview with last-N form and tournament positions",
                "parameters": [
                    {"type": "string", "description": "tournaments, both or friendlies", "name": "scope", "in": "query"},
                    {"type": "integer", "description": "number of recent matches", "name": "lastN", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/stats/streaks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Current and record streaks",
                "parameters": [
                    {"type": "string", "description": "overall, 1v1 or 2v2", "name": "mode", "in": "query"},
                    {"type": "string", "description": "tournaments, both or friendlies", "name": "scope", "in": "query"},
                    {"type": "string", "description": "streak category key", "name": "category", "in": "query"},
                    {"type": "integer", "description": "restrict to one player", "name": "player_id", "in": "query"},
                    {"type": "integer", "description": "rows per leaderboard", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/stats/h2h": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Rivalries and partnerships",
                "parameters": [
                    {"type": "string", "description": "overall, 1v1 or 2v2", "name": "mode", "in": "query"},
                    {"type": "string", "description": "tournaments, both or friendlies", "name": "scope", "in": "query"},
                    {"type": "string", "description": "rivalry or played", "name": "order", "in": "query"},
                    {"type": "integer", "description": "rows per list", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/stats/cup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Current cup holder and transfer history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/tournaments/{tournamentID}/standings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Tournament standings",
                "parameters": [
                    {"type": "integer", "description": "tournament id", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/tournaments/{tournamentID}/schedule": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Round-robin fixtures for a 1v1 tournament",
                "parameters": [
                    {"type": "integer", "description": "tournament id", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "integer", "description": "1 or 2", "name": "legs", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/tournaments/{tournamentID}/odds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Decimal odds for the upcoming matches of a tournament",
                "parameters": [
                    {"type": "integer", "description": "tournament id", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/players/{playerID}/form": {
            "get": {
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Rolling form of one player",
                "parameters": [
                    {"type": "integer", "description": "player id", "name": "playerID", "in": "path", "required": true},
                    {"type": "integer", "description": "trailing window size", "name": "window", "in": "query"},
                    {"type": "string", "description": "overall, 1v1 or 2v2", "name": "mode", "in": "query"},
                    {"type": "string", "description": "tournaments, both or friendlies", "name": "scope", "in": "query"},
                    {"type": "string", "description": "tournament or match", "name": "anchor", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/admin/snapshots": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Publish the rating tables to object storage",
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object"}}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "League Stats API",
	Description:      "Read-only statistics over the league match history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
