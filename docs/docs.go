// Package docs holds the Swagger description of the /api/v1 surface served at
// /swagger/index.html. Keep it in step with the handler annotations.
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
        "/inventory/items": {
            "get": {
                "description": "Returns the cached collection sorted by the current sort state, with total quantity, stock status, expiry status and row edit state.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "List inventory items",
                "responses": {
                    "200": {
                        "description": "Sorted, aggregated items",
                        "schema": {
                            "$ref": "#/definitions/store.InventoryView"
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates an item with at least one batch. Name and category must not be blank; batch quantities must be at least 1.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Create an inventory item",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Item with its initial batches",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateItemRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created item",
                        "schema": {
                            "$ref": "#/definitions/domain.ItemView"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/items/refresh": {
            "post": {
                "description": "Replaces the local collection with the server's current items.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Refresh inventory items",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Refreshed items",
                        "schema": {
                            "$ref": "#/definitions/store.InventoryView"
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/items/{id}": {
            "put": {
                "description": "Edits the name or category of an item. The full record is sent to the server and the local copy is replaced on success.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Update an item field",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Item ID",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "field is name or category",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.FieldUpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated item",
                        "schema": {
                            "$ref": "#/definitions/domain.ItemView"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "404": {
                        "description": "Item not found",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "409": {
                        "description": "Row busy",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes an item and all of its batches.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Delete an item",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Item ID",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Item deleted",
                        "schema": {
                            "$ref": "#/definitions/handlers.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "409": {
                        "description": "Row busy",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/items/{id}/batches": {
            "post": {
                "description": "Adds a batch to an item and refetches the collection. An empty expire_date means no expiry.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "batches"
                ],
                "summary": "Add a batch",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Item ID",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "Batch quantity and optional expiry date (YYYY-MM-DD)",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.BatchRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Refetched items",
                        "schema": {
                            "$ref": "#/definitions/store.InventoryView"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "409": {
                        "description": "Row busy",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/items/batches/{batchId}": {
            "put": {
                "description": "Sets quantity or expire_date of a batch and refetches the collection. An empty expire_date clears the date.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "batches"
                ],
                "summary": "Update a batch field",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Batch ID",
                        "name": "batchId",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "field is quantity or expire_date",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.FieldUpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Refetched items",
                        "schema": {
                            "$ref": "#/definitions/store.InventoryView"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "409": {
                        "description": "Row busy",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a batch and refetches the collection. Deleting the last batch leaves the item with zero quantity.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "batches"
                ],
                "summary": "Delete a batch",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Batch ID",
                        "name": "batchId",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Refetched items",
                        "schema": {
                            "$ref": "#/definitions/store.InventoryView"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "409": {
                        "description": "Row busy",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/sort/{field}": {
            "post": {
                "description": "Cycles the field through ascending, descending and unsorted. Choosing another field starts at ascending.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Toggle the sort",
                "parameters": [
                    {
                        "description": "name, category or quantity",
                        "name": "field",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "New sort state",
                        "schema": {
                            "$ref": "#/definitions/sorting.State"
                        }
                    },
                    "400": {
                        "description": "Unknown sort field",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/categories": {
            "get": {
                "description": "Returns distinct categories containing q, case-insensitively. An empty q returns all of them.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Suggest categories",
                "parameters": [
                    {
                        "description": "Text typed so far",
                        "name": "q",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Matching categories",
                        "schema": {
                            "$ref": "#/definitions/handlers.CategoriesResponse"
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/rows/{kind}/{id}/edit": {
            "post": {
                "description": "Moves a row into the editing state. Rejected while a mutation of the row is in flight.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rows"
                ],
                "summary": "Begin editing a row",
                "parameters": [
                    {
                        "description": "item or batch",
                        "name": "kind",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "description": "Row ID",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Row state",
                        "schema": {
                            "$ref": "#/definitions/store.RowState"
                        }
                    },
                    "400": {
                        "description": "Unknown row kind",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "409": {
                        "description": "Row busy",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/rows/{kind}/{id}/cancel": {
            "post": {
                "description": "Returns a row to viewing and dismisses its last error.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "rows"
                ],
                "summary": "Cancel editing a row",
                "parameters": [
                    {
                        "description": "item or batch",
                        "name": "kind",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "description": "Row ID",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Row state",
                        "schema": {
                            "$ref": "#/definitions/store.RowState"
                        }
                    },
                    "400": {
                        "description": "Unknown row kind",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/events": {
            "get": {
                "description": "Returns the retained history of store change notifications, oldest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Recent change notifications",
                "responses": {
                    "200": {
                        "description": "Event history",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/events.Event"
                            }
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/inventory/events/stream": {
            "get": {
                "description": "Server-sent events, one per published change. The stream ends when the client disconnects.",
                "produces": [
                    "text/event-stream"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Stream change notifications",
                "responses": {
                    "200": {
                        "description": "text/event-stream of events",
                        "schema": {
                            "$ref": "#/definitions/events.Event"
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/session/login": {
            "post": {
                "description": "Signs in against the remote API and keeps the token pair server-side.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Sign in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Signed in",
                        "schema": {
                            "$ref": "#/definitions/handlers.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Missing credentials",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Rejected by the server",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/session/register": {
            "post": {
                "description": "Creates an account and signs in. Passwords must be at least 6 characters.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Register",
                "parameters": [
                    {
                        "description": "New account",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Registered and signed in",
                        "schema": {
                            "$ref": "#/definitions/handlers.SessionResponse"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Rejected by the server",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/session/logout": {
            "post": {
                "description": "Revokes the refresh token on a best-effort basis. The local session is cleared even when the server cannot be reached.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Sign out",
                "responses": {
                    "200": {
                        "description": "Signed out",
                        "schema": {
                            "$ref": "#/definitions/handlers.SessionResponse"
                        }
                    }
                }
            }
        },
        "/session": {
            "get": {
                "description": "Reports whether a user is signed in and who.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Current session",
                "responses": {
                    "200": {
                        "description": "Session state",
                        "schema": {
                            "$ref": "#/definitions/handlers.SessionResponse"
                        }
                    }
                }
            }
        },
        "/admin/users": {
            "get": {
                "description": "Lists every account. Requires the admin role.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "Users",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.User"
                            }
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "403": {
                        "description": "Admin role required",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates an account. The role defaults to user.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Create a user",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "New account",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "User created",
                        "schema": {
                            "$ref": "#/definitions/handlers.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "403": {
                        "description": "Admin role required",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/admin/users/{id}/role": {
            "put": {
                "description": "Sets the role to user or admin.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Change a user's role",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "New role",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.RoleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Role updated",
                        "schema": {
                            "$ref": "#/definitions/handlers.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid role",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "403": {
                        "description": "Admin role required",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/admin/users/{id}/status": {
            "put": {
                "description": "Admins cannot deactivate their own account.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Activate or deactivate a user",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "description": "New status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.StatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Status updated",
                        "schema": {
                            "$ref": "#/definitions/handlers.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Own account or invalid body",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "403": {
                        "description": "Admin role required",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/admin/users/{id}": {
            "delete": {
                "description": "Admins cannot delete their own account.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "admin"
                ],
                "summary": "Delete a user",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "User deleted",
                        "schema": {
                            "$ref": "#/definitions/handlers.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Own account",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "403": {
                        "description": "Admin role required",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/profile": {
            "put": {
                "description": "Changes the signed-in user's username and email.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Update own profile",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Username and email",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.ProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated user",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/profile/password": {
            "put": {
                "description": "The new password must be at least 6 characters and match its confirmation.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Change own password",
                "parameters": [
                    {
                        "description": "Request ID (UUID). Writes carrying one are replayed from cache for 5 minutes.",
                        "name": "X-Request-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "description": "Current and new password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.PasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Password updated",
                        "schema": {
                            "$ref": "#/definitions/handlers.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Validation failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "401": {
                        "description": "No signed-in session",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    },
                    "502": {
                        "description": "Remote request failed",
                        "schema": {
                            "$ref": "#/definitions/errors.StandardError"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports that the service is up.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Service is up",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "errors.StandardError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "ValidationError"
                },
                "message": {
                    "type": "string"
                },
                "details": {
                    "type": "string"
                }
            }
        },
        "domain.BatchView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "item_id": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "integer"
                },
                "expire_date": {
                    "type": "string",
                    "example": "2024-06-30"
                },
                "created_at": {
                    "type": "string"
                },
                "expiry_status": {
                    "type": "string",
                    "enum": [
                        "Fresh",
                        "ExpiringSoon",
                        "Expired"
                    ]
                }
            }
        },
        "domain.ItemView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "total_quantity": {
                    "type": "integer"
                },
                "stock_status": {
                    "type": "string",
                    "enum": [
                        "Low Stock",
                        "Medium Stock",
                        "In Stock"
                    ]
                },
                "batches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.BatchView"
                    }
                }
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "user",
                        "admin"
                    ]
                },
                "is_active": {
                    "type": "boolean"
                }
            }
        },
        "events.Event": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "item_id": {
                    "type": "integer"
                },
                "batch_id": {
                    "type": "integer"
                },
                "field": {
                    "type": "string"
                },
                "item_count": {
                    "type": "integer"
                },
                "occurred_at": {
                    "type": "string"
                }
            }
        },
        "sorting.State": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "direction": {
                    "type": "string"
                }
            }
        },
        "store.RowState": {
            "type": "object",
            "properties": {
                "state": {
                    "type": "string",
                    "enum": [
                        "viewing",
                        "editing",
                        "saving"
                    ]
                },
                "last_error": {
                    "type": "string"
                }
            }
        },
        "store.BatchRowView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "item_id": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "integer"
                },
                "expire_date": {
                    "type": "string",
                    "example": "2024-06-30"
                },
                "created_at": {
                    "type": "string"
                },
                "expiry_status": {
                    "type": "string"
                },
                "row": {
                    "$ref": "#/definitions/store.RowState"
                }
            }
        },
        "store.ItemRowView": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "total_quantity": {
                    "type": "integer"
                },
                "stock_status": {
                    "type": "string"
                },
                "batches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/store.BatchRowView"
                    }
                },
                "row": {
                    "$ref": "#/definitions/store.RowState"
                }
            }
        },
        "store.InventoryView": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/store.ItemRowView"
                    }
                },
                "sort": {
                    "$ref": "#/definitions/sorting.State"
                }
            }
        },
        "handlers.BatchRequest": {
            "type": "object",
            "properties": {
                "quantity": {
                    "type": "integer",
                    "example": 3
                },
                "expire_date": {
                    "type": "string",
                    "example": "2024-06-30"
                }
            }
        },
        "handlers.CreateItemRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Milk"
                },
                "category": {
                    "type": "string",
                    "example": "Dairy"
                },
                "batches": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handlers.BatchRequest"
                    }
                }
            }
        },
        "handlers.FieldUpdateRequest": {
            "type": "object",
            "required": [
                "field"
            ],
            "properties": {
                "field": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                }
            }
        },
        "handlers.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handlers.SuccessResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handlers.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "handlers.SessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {
                    "type": "boolean"
                },
                "user": {
                    "$ref": "#/definitions/domain.User"
                }
            }
        },
        "handlers.CreateUserRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "handlers.RoleRequest": {
            "type": "object",
            "required": [
                "role"
            ],
            "properties": {
                "role": {
                    "type": "string"
                }
            }
        },
        "handlers.StatusRequest": {
            "type": "object",
            "required": [
                "is_active"
            ],
            "properties": {
                "is_active": {
                    "type": "boolean"
                }
            }
        },
        "handlers.ProfileRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "handlers.PasswordRequest": {
            "type": "object",
            "properties": {
                "currentPassword": {
                    "type": "string"
                },
                "newPassword": {
                    "type": "string"
                },
                "confirmPassword": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8082",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Inventory Manager API",
	Description:      "Browser-facing API over the remote inventory store: items and batches with derived stock and expiry status, sorting, category suggestions, sessions and user administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
