// Package docs holds the swagger document served at /swagger/. It mirrors the
// annotations in internal/api; regenerate with `swag init -g cmd/server/main.go`
// after changing a handler's annotations.
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
        "/levels": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bank"
                ],
                "summary": "List level files",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/bankfile.LevelInfo"
                            }
                        }
                    }
                }
            }
        },
        "/levels/{level}": {
            "put": {
                "consumes": [
                    "text/csv",
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bank"
                ],
                "summary": "Upload a level file",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Level (1-10)",
                        "name": "level",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Level CSV",
                        "name": "file",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.UploadLevelResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bank/rebuild": {
            "post": {
                "description": "Concatenates levels 1..10 and writes the aggregate and alias files. Nothing is written when no level has rows.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bank"
                ],
                "summary": "Rebuild the bank",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.RebuildReport"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/bank/reload": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bank"
                ],
                "summary": "Reload the session bank",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Result"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/types": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bank"
                ],
                "summary": "List question types",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/history": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "History"
                ],
                "summary": "Get history",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.HistoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "History"
                ],
                "summary": "Clear history",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Result"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/history/export": {
            "get": {
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "History"
                ],
                "summary": "Export history",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/pool": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Questions"
                ],
                "summary": "List the filtered pool",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.PoolResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/draw": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Questions"
                ],
                "summary": "Draw a question",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Result"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/answers": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Questions"
                ],
                "summary": "Submit an answer",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Answer",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SubmitAnswerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Result"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "empty answer or nothing drawn",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/answer": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Questions"
                ],
                "summary": "Reveal the answer",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.RevealResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "nothing drawn",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/sessions": {
            "post": {
                "description": "Starts a session with the aggregate bank loaded, default filters and preferences.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Create a session",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}": {
            "get": {
                "description": "Returns filters, preferences, pool stats, the current question and the history summary.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Get a session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.SessionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Sessions"
                ],
                "summary": "Delete a session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/filter": {
            "put": {
                "description": "Type \"all\" or empty selects every type. Difficulty is normalized; an empty selection means all levels.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Set the filter",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Filter",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SetFilterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Result"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/preferences": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Set preferences",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Preferences",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/api.SetPreferencesRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Result"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/reset": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sessions"
                ],
                "summary": "Reset draws",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.Result"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/api.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "session not found"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.HistoryResponse": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/history.Attempt"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/history.Summary"
                }
            }
        },
        "api.PoolResponse": {
            "type": "object",
            "properties": {
                "questions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/questionbank.Record"
                    }
                },
                "stats": {
                    "$ref": "#/definitions/practicesession.Stats"
                }
            }
        },
        "api.RevealResponse": {
            "type": "object",
            "properties": {
                "answer": {
                    "type": "string",
                    "example": "A"
                },
                "question_id": {
                    "type": "string",
                    "example": "q1"
                }
            }
        },
        "api.SessionResponse": {
            "type": "object",
            "properties": {
                "session": {
                    "$ref": "#/definitions/service.SessionView"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "api.SetFilterRequest": {
            "type": "object",
            "properties": {
                "difficulty": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "1",
                        "2"
                    ]
                },
                "difficulty_range": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    },
                    "example": [
                        1,
                        3
                    ]
                },
                "tag_query": {
                    "type": "string",
                    "example": "hsk1"
                },
                "type": {
                    "type": "string",
                    "example": "red"
                }
            }
        },
        "api.SetPreferencesRequest": {
            "type": "object",
            "properties": {
                "no_repeat": {
                    "type": "boolean",
                    "example": true
                },
                "shuffle_options": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "api.SubmitAnswerRequest": {
            "type": "object",
            "properties": {
                "answer": {
                    "type": "string",
                    "example": "A"
                }
            }
        },
        "api.UploadLevelResponse": {
            "type": "object",
            "properties": {
                "level": {
                    "type": "integer",
                    "example": 3
                },
                "rows": {
                    "type": "integer",
                    "example": 42
                }
            }
        },
        "bankfile.LevelInfo": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "level": {
                    "type": "integer"
                },
                "path": {
                    "type": "string"
                },
                "present": {
                    "type": "boolean"
                },
                "rows": {
                    "type": "integer"
                }
            }
        },
        "category.Type": {
            "type": "string",
            "enum": [
                "all",
                "red",
                "green",
                "yellow",
                "blue"
            ],
            "x-enum-varnames": [
                "All",
                "Red",
                "Green",
                "Yellow",
                "Blue"
            ]
        },
        "history.Attempt": {
            "type": "object",
            "properties": {
                "correct": {
                    "type": "boolean"
                },
                "correct_answer": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                },
                "time": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "user_answer": {
                    "type": "string"
                }
            }
        },
        "history.Summary": {
            "type": "object",
            "properties": {
                "accuracy": {
                    "type": "string"
                },
                "correct_count": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "media.Kind": {
            "type": "string",
            "enum": [
                "remote",
                "local"
            ],
            "x-enum-varnames": [
                "KindRemote",
                "KindLocal"
            ]
        },
        "media.Ref": {
            "type": "object",
            "properties": {
                "kind": {
                    "$ref": "#/definitions/media.Kind"
                },
                "source": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "practicesession.Filter": {
            "type": "object",
            "properties": {
                "difficulty": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "tag_query": {
                    "type": "string"
                },
                "type": {
                    "$ref": "#/definitions/category.Type"
                }
            }
        },
        "practicesession.Outcome": {
            "type": "object",
            "properties": {
                "answer": {
                    "type": "string"
                },
                "attempt": {
                    "$ref": "#/definitions/history.Attempt"
                },
                "drawn": {
                    "$ref": "#/definitions/questionbank.Record"
                },
                "exhausted": {
                    "type": "boolean"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "practicesession.Preferences": {
            "type": "object",
            "properties": {
                "no_repeat": {
                    "type": "boolean"
                },
                "shuffle_options": {
                    "type": "boolean"
                }
            }
        },
        "practicesession.Stats": {
            "type": "object",
            "properties": {
                "remaining": {
                    "type": "integer"
                },
                "seen": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "questionbank.Record": {
            "type": "object",
            "properties": {
                "answer": {
                    "type": "string"
                },
                "audio_url": {
                    "type": "string"
                },
                "difficulty": {
                    "type": "string"
                },
                "difficulty_num": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "passage": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                },
                "tags": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "service.QuestionView": {
            "type": "object",
            "properties": {
                "audio": {
                    "$ref": "#/definitions/media.Ref"
                },
                "difficulty": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "image": {
                    "$ref": "#/definitions/media.Ref"
                },
                "options": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "passage": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                },
                "tags": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "service.RebuildReport": {
            "type": "object",
            "properties": {
                "rows": {
                    "type": "integer"
                },
                "warnings": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "written": {
                    "type": "boolean"
                }
            }
        },
        "service.Result": {
            "type": "object",
            "properties": {
                "outcome": {
                    "$ref": "#/definitions/practicesession.Outcome"
                },
                "session": {
                    "$ref": "#/definitions/service.SessionView"
                }
            }
        },
        "service.SessionView": {
            "type": "object",
            "properties": {
                "bank_size": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "current": {
                    "$ref": "#/definitions/service.QuestionView"
                },
                "filter": {
                    "$ref": "#/definitions/practicesession.Filter"
                },
                "id": {
                    "type": "string"
                },
                "preferences": {
                    "$ref": "#/definitions/practicesession.Preferences"
                },
                "stats": {
                    "$ref": "#/definitions/practicesession.Stats"
                },
                "summary": {
                    "$ref": "#/definitions/history.Summary"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Word Board API",
	Description:      "Vocabulary quiz board: filter a question bank, draw questions, answer them and export the history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
