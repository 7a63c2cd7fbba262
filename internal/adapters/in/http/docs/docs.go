// Package docs registers the OpenAPI description of the catering API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/orders": {
            "get": {
                "tags": ["orders"],
                "summary": "List every order (staff only)",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "from", "in": "query", "description": "YYYY-MM-DD"},
                    {"type": "string", "name": "to", "in": "query", "description": "YYYY-MM-DD"},
                    {"type": "string", "name": "city", "in": "query"},
                    {"type": "string", "name": "customer", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/OrderResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["orders"],
                "summary": "Place an order",
                "parameters": [
                    {"name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/OrderDetailResponse"}},
                    "400": {"description": "Precondition failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Menu not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Invalid", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/orders/me": {
            "get": {
                "tags": ["orders"],
                "summary": "List the caller's orders, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/OrderResponse"}}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "tags": ["orders"],
                "summary": "Get an order with its status history",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OrderDetailResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["orders"],
                "summary": "Revise a PLACED order",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OrderDetailResponse"}},
                    "400": {"description": "Precondition failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/orders/{id}/status": {
            "patch": {
                "tags": ["orders"],
                "summary": "Move an order along its lifecycle (staff only)",
                "description": "CANCELLED is rejected here; use POST /orders/{id}/cancel.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangeStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OrderDetailResponse"}},
                    "400": {"description": "Illegal transition", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/orders/{id}/cancel": {
            "post": {
                "tags": ["orders"],
                "summary": "Cancel an order (staff only)",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "cancellation", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CancelOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OrderDetailResponse"}},
                    "400": {"description": "Precondition failed", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Already cancelled", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "kind": {"type": "string"},
                "message": {"type": "string"},
                "rule": {"type": "string"}
            }
        },
        "CreateOrderRequest": {
            "type": "object",
            "required": ["menu_id", "address", "city", "event_date", "event_time", "headcount"],
            "properties": {
                "menu_id": {"type": "string", "format": "uuid"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "event_date": {"type": "string", "format": "date"},
                "event_time": {"type": "string", "example": "19:30"},
                "distance_km": {"type": "number"},
                "headcount": {"type": "integer"},
                "loaned_equipment": {"type": "boolean"}
            }
        },
        "UpdateOrderRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "city": {"type": "string"},
                "event_date": {"type": "string", "format": "date"},
                "event_time": {"type": "string"},
                "distance_km": {"type": "number"},
                "headcount": {"type": "integer"},
                "loaned_equipment": {"type": "boolean"}
            }
        },
        "ChangeStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["ACCEPTED", "PREPARING", "DELIVERING", "DELIVERED", "WAITING_RETURN", "COMPLETED"]},
                "note": {"type": "string"}
            }
        },
        "CancelOrderRequest": {
            "type": "object",
            "properties": {
                "contact_mode": {"type": "string", "enum": ["EMAIL", "PHONE"]},
                "reason": {"type": "string"}
            }
        },
        "OrderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customer_id": {"type": "string"},
                "customer_name": {"type": "string"},
                "menu_id": {"type": "string"},
                "menu_title": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "event_date": {"type": "string"},
                "event_time": {"type": "string"},
                "distance_km": {"type": "string"},
                "headcount": {"type": "integer"},
                "loaned_equipment": {"type": "boolean"},
                "delivery_fee": {"type": "string"},
                "menu_price": {"type": "string"},
                "discount": {"type": "string"},
                "total_price": {"type": "string"},
                "status": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "OrderDetailResponse": {
            "allOf": [
                {"$ref": "#/definitions/OrderResponse"},
                {
                    "type": "object",
                    "properties": {
                        "history": {
                            "type": "array",
                            "items": {
                                "type": "object",
                                "properties": {
                                    "status": {"type": "string"},
                                    "actor_id": {"type": "string"},
                                    "note": {"type": "string"},
                                    "recorded_at": {"type": "string"}
                                }
                            }
                        },
                        "cancellation": {
                            "type": "object",
                            "properties": {
                                "actor_id": {"type": "string"},
                                "contact_mode": {"type": "string"},
                                "reason": {"type": "string"},
                                "created_at": {"type": "string"}
                            }
                        }
                    }
                }
            ]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Catering API",
	Description:      "Order lifecycle of the catering service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
