// Package docs registers the swagger document of the site api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/quotes": {
            "post": {
                "description": "Fetches live pricing once and returns the price of every cab category with a signed quote token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Quotes"],
                "summary": "Quote a trip",
                "parameters": [
                    {
                        "description": "Trip",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.QuoteRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/reservations": {
            "post": {
                "description": "Prices the chosen category from a quote token and returns the invoice hand-off URL",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reservations"],
                "summary": "Reserve a cab",
                "parameters": [
                    {
                        "description": "Reservation",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ReservationRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ReservationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/reservations/verify": {
            "post": {
                "description": "Returns the reservation sealed in an invoice hand-off token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reservations"],
                "summary": "Verify a hand-off token",
                "parameters": [
                    {
                        "description": "Token",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.VerifyRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Reservation"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.QuoteRequest": {
            "type": "object",
            "properties": {
                "tripType": {"type": "string", "enum": ["oneWay", "roundTrip", "round-trip"]},
                "pickup": {"type": "string"},
                "drop": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "Returndate": {"type": "string"},
                "category": {"type": "string"},
                "selection": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.CabQuote": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "title": {"type": "string"},
                "subtitle": {"type": "string"},
                "price": {"type": "integer"},
                "base_rate": {"type": "number"},
                "selected_model": {"type": "string"},
                "models": {"type": "array", "items": {"type": "string"}},
                "image": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "rating": {"type": "number"},
                "reviews": {"type": "integer"}
            }
        },
        "dto.QuoteResponse": {
            "type": "object",
            "properties": {
                "query": {"$ref": "#/definitions/models.TripQuery"},
                "distance": {"type": "number"},
                "days": {"type": "integer"},
                "distance_known": {"type": "boolean"},
                "placeholder": {"type": "boolean"},
                "cabs": {"type": "array", "items": {"$ref": "#/definitions/dto.CabQuote"}},
                "quote_token": {"type": "string"}
            }
        },
        "dto.ReservationRequest": {
            "type": "object",
            "required": ["quote_token", "category"],
            "properties": {
                "quote_token": {"type": "string"},
                "category": {"type": "string"},
                "model": {"type": "string"}
            }
        },
        "dto.ReservationResponse": {
            "type": "object",
            "properties": {
                "invoice_url": {"type": "string"},
                "reservation": {"$ref": "#/definitions/models.Reservation"}
            }
        },
        "dto.VerifyRequest": {
            "type": "object",
            "required": ["token"],
            "properties": {
                "token": {"type": "string"}
            }
        },
        "models.Reservation": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "model_type": {"type": "string"},
                "model_name": {"type": "string"},
                "image": {"type": "string"},
                "price": {"type": "integer"},
                "base_rate": {"type": "number"},
                "query": {"$ref": "#/definitions/models.TripQuery"},
                "distance": {"type": "number"},
                "days": {"type": "integer"},
                "features": {"type": "array", "items": {"type": "string"}},
                "rating": {"type": "number"},
                "reviews": {"type": "integer"}
            }
        },
        "models.TripQuery": {
            "type": "object",
            "properties": {
                "tripType": {"type": "string"},
                "pickup": {"type": "string"},
                "drop": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "Returndate": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfosite holds exported Swagger Info so clients can modify it
var SwaggerInfosite = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WTL Site API",
	Description:      "City cab landing pages, cab search results and the reservation hand-off to the invoice page.",
	InfoInstanceName: "site",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfosite.InstanceName(), SwaggerInfosite)
}
