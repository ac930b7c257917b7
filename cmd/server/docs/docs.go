// Package docs holds the swagger spec registered at /swagger/*.
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
        "/equipment/fetch/{index}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "Fetch an item from the external catalog",
                "parameters": [
                    {"type": "string", "description": "Item name or slug", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Catalog payload"},
                    "404": {"description": "No endpoint matched; body carries per-endpoint failures"},
                    "500": {"description": "Lookup could not be issued"}
                }
            }
        },
        "/equipment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "Create an equipment record",
                "responses": {
                    "201": {"description": "Created record"},
                    "400": {"description": "Name missing"}
                }
            }
        },
        "/equipment/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "Get one equipment record",
                "responses": {"200": {"description": "Record"}, "404": {"description": "Unknown id"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "Update an equipment record",
                "responses": {
                    "200": {"description": "Updated record"},
                    "400": {"description": "Bad types or missing name"},
                    "404": {"description": "Unknown id"}
                }
            }
        },
        "/api/equipment": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["equipment"],
                "summary": "List equipment created by the caller",
                "responses": {"200": {"description": "Records"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/inventory": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "List the caller's inventory with equipment resolved",
                "responses": {"200": {"description": "Inventory items"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/inventory/add": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Add a raw item to the caller's inventory",
                "responses": {
                    "200": {"description": "Existing row incremented"},
                    "201": {"description": "New row created"},
                    "400": {"description": "Item name missing"}
                }
            }
        },
        "/api/inventory/{id}": {
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Update an inventory item and optionally its equipment record",
                "responses": {
                    "200": {"description": "Updated item"},
                    "400": {"description": "Invalid quantity or equipment patch"},
                    "404": {"description": "Unknown item"}
                }
            }
        },
        "/api/inventory/{id}/quantity": {
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Set the quantity of an inventory item",
                "responses": {
                    "200": {"description": "Updated item"},
                    "400": {"description": "Quantity below 1"},
                    "404": {"description": "Unknown item"}
                }
            }
        },
        "/api/inventory/{itemId}": {
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Delete an inventory item",
                "responses": {"200": {"description": "Deleted"}, "404": {"description": "Unknown item"}}
            }
        },
        "/api/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "Token and user"},
                    "400": {"description": "Invalid input"},
                    "409": {"description": "User exists"}
                }
            }
        },
        "/api/auth/signin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Authenticate a user",
                "responses": {
                    "200": {"description": "Token and user"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "JWT token. Example: Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Armory API",
	Description:      "Personal tabletop-equipment inventory API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
