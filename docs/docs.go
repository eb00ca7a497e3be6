// Package docs registers the swagger spec served by the router in local mode.
// Keep it in step with the godoc annotations on the controllers.
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
        "/api/feeds": {
            "post": {
                "description": "Opens a feed for a scope (global, created or voted) and loads its first page",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "Open a poll feed",
                "parameters": [
                    {"type": "string", "description": "Viewer session", "name": "x-session-id", "in": "header"},
                    {"description": "Feed scope", "name": "feed", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.OpenFeedRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.FeedResponse"}},
                    "400": {"description": "Invalid scope", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Unknown session", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Unexpected internal error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/feeds/{id}": {
            "get": {
                "description": "Renders the feed with each poll in active or results mode",
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "Get a feed",
                "parameters": [
                    {"type": "string", "description": "Viewer session", "name": "x-session-id", "in": "header"},
                    {"type": "string", "description": "Feed ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FeedResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["feeds"],
                "summary": "Close a feed",
                "parameters": [
                    {"type": "string", "description": "Viewer session", "name": "x-session-id", "in": "header"},
                    {"type": "string", "description": "Feed ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/feeds/{id}/more": {
            "post": {
                "description": "Appends the next page of polls; does nothing on the last page or while loading",
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "Load the next page",
                "parameters": [
                    {"type": "string", "description": "Viewer session", "name": "x-session-id", "in": "header"},
                    {"type": "string", "description": "Feed ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FeedResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/feeds/{id}/refresh": {
            "post": {
                "description": "Drops all polls and tentative selections and reloads the first page",
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "Refresh a feed",
                "parameters": [
                    {"type": "string", "description": "Viewer session", "name": "x-session-id", "in": "header"},
                    {"type": "string", "description": "Feed ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FeedResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/feeds/{id}/selections/{index}": {
            "put": {
                "description": "Stores the viewer's tentative choice for the poll at index; nothing is sent upstream",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "Pick a choice",
                "parameters": [
                    {"type": "string", "description": "Viewer session", "name": "x-session-id", "in": "header"},
                    {"type": "string", "description": "Feed ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Poll position in the feed", "name": "index", "in": "path", "required": true},
                    {"description": "Choice", "name": "choice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SelectChoiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FeedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/feeds/{id}/votes/{index}": {
            "post": {
                "description": "Casts the tentative choice for the poll at index and replaces that poll with the server's copy",
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "Vote",
                "parameters": [
                    {"type": "string", "description": "Viewer session", "name": "x-session-id", "in": "header"},
                    {"type": "string", "description": "Feed ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Poll position in the feed", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FeedResponse"}},
                    "400": {"description": "No choice selected", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Login required or session expired", "schema": {"$ref": "#/definitions/models.FeedResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "502": {"description": "Vote rejected upstream", "schema": {"$ref": "#/definitions/models.FeedResponse"}}
                }
            }
        },
        "/api/polls": {
            "post": {
                "description": "Validates the poll and forwards it to the polls API; requires a signed in session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["polls"],
                "summary": "Create a poll",
                "parameters": [
                    {"type": "string", "description": "Viewer session", "name": "x-session-id", "in": "header", "required": true},
                    {"description": "Poll", "name": "poll", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreatePollRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.CreatePollResponse"}},
                    "400": {"description": "Invalid poll", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Login required or session expired", "schema": {"$ref": "#/definitions/models.CreatePollResponse"}},
                    "502": {"description": "Poll rejected upstream", "schema": {"$ref": "#/definitions/models.CreatePollResponse"}}
                }
            }
        },
        "/api/sessions": {
            "post": {
                "description": "Stores the viewer's identity and upstream access token; without a token the session is anonymous",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Create a viewer session",
                "parameters": [
                    {"description": "Viewer", "name": "session", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.SessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/api/sessions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Get a viewer session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SessionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes the session and closes every feed it opened",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Log out",
                "parameters": [
                    {"type": "string", "description": "Viewer session, must match id", "name": "x-session-id", "in": "header", "required": true},
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LogoutResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ChoiceView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "percent": {"type": "number"},
                "selected": {"type": "boolean"},
                "text": {"type": "string"},
                "voteCount": {"type": "integer"},
                "winner": {"type": "boolean"}
            }
        },
        "models.CreatePollRequest": {
            "type": "object",
            "properties": {
                "choices": {"type": "array", "items": {"$ref": "#/definitions/polls.ChoiceText"}},
                "pollLength": {"$ref": "#/definitions/polls.PollLength"},
                "question": {"type": "string"}
            }
        },
        "models.CreatePollResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "notices": {"type": "array", "items": {"$ref": "#/definitions/models.Notice"}},
                "redirect": {"$ref": "#/definitions/models.Redirect"},
                "success": {"type": "boolean"}
            }
        },
        "models.CreateSessionRequest": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "models.FeedResponse": {
            "type": "object",
            "properties": {
                "hasMore": {"type": "boolean"},
                "id": {"type": "string"},
                "loading": {"type": "boolean"},
                "notices": {"type": "array", "items": {"$ref": "#/definitions/models.Notice"}},
                "page": {"type": "integer"},
                "polls": {"type": "array", "items": {"$ref": "#/definitions/models.PollView"}},
                "redirect": {"$ref": "#/definitions/models.Redirect"},
                "scope": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "models.LogoutResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "models.Notice": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.OpenFeedRequest": {
            "type": "object",
            "properties": {
                "scope": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "models.PollView": {
            "type": "object",
            "properties": {
                "canVote": {"type": "boolean"},
                "choices": {"type": "array", "items": {"$ref": "#/definitions/models.ChoiceView"}},
                "createdBy": {"$ref": "#/definitions/polls.UserSummary"},
                "creationDateTime": {"type": "string"},
                "expirationDateTime": {"type": "string"},
                "id": {"type": "string"},
                "index": {"type": "integer"},
                "mode": {"type": "string"},
                "question": {"type": "string"},
                "selectedChoice": {"type": "string"},
                "status": {"type": "string"},
                "tentativeChoice": {"type": "string"},
                "timeRemaining": {"type": "string"},
                "totalVotes": {"type": "integer"},
                "winner": {"type": "string"}
            }
        },
        "models.Redirect": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "reason": {"type": "string"},
                "to": {"type": "string"}
            }
        },
        "models.SelectChoiceRequest": {
            "type": "object",
            "properties": {
                "choiceId": {"type": "string"}
            }
        },
        "models.SessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "polls.ChoiceText": {
            "type": "object",
            "properties": {
                "text": {"type": "string"}
            }
        },
        "polls.PollLength": {
            "type": "object",
            "properties": {
                "days": {"type": "integer"},
                "hours": {"type": "integer"}
            }
        },
        "polls.UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ViewerSession": {
            "type": "apiKey",
            "name": "x-session-id",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Polling App Feed API",
	Description:      "Poll feed gateway: paginated poll lists, tentative selections, voting, results and poll creation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
