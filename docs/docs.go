// Package docs holds the OpenAPI document served under /doc.
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
    "paths": {
        "/computeRoute": {
            "get": {
                "description": "charging-aware shortest path between two nodes. every stop recharges to a full tank before the next hop",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "routing"
                ],
                "summary": "compute a route",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "origin node",
                        "name": "origin",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "destination node",
                        "name": "destination",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "maximum distance of a single hop, defaults to MAX_HOP_DISTANCE",
                        "name": "max_hop_distance",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "format": "date-time",
                        "description": "departure instant (RFC3339), defaults to now",
                        "name": "departure_time",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "include every label taken from the frontier",
                        "name": "trace",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "route found",
                        "schema": {
                            "$ref": "#/definitions/controllers.computeRouteResponse"
                        }
                    },
                    "400": {
                        "description": "invalid parameters",
                        "schema": {
                            "$ref": "#/definitions/controllers.errorResponse"
                        }
                    },
                    "404": {
                        "description": "destination unreachable",
                        "schema": {
                            "$ref": "#/definitions/controllers.errorResponse"
                        }
                    },
                    "422": {
                        "description": "search pop limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/controllers.errorResponse"
                        }
                    },
                    "500": {
                        "description": "internal server error",
                        "schema": {
                            "$ref": "#/definitions/controllers.errorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.computeRouteResponse": {
            "type": "object",
            "properties": {
                "origin": {"type": "integer"},
                "destination": {"type": "integer"},
                "max_hop_distance": {"type": "integer"},
                "travel_time": {"type": "integer"},
                "departure_time": {"type": "string"},
                "arrival_time": {"type": "string"},
                "pop_count": {"type": "integer"},
                "path": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/controllers.stopResponse"}
                },
                "instructions": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/controllers.instructionResponse"}
                },
                "trace": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/controllers.traceResponse"}
                }
            }
        },
        "controllers.stopResponse": {
            "type": "object",
            "properties": {
                "node": {"type": "integer"},
                "arrival_offset": {"type": "integer"},
                "arrival_time": {"type": "string"},
                "fuel_on_arrival": {"type": "integer"},
                "charge_time": {"type": "integer"}
            }
        },
        "controllers.instructionResponse": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "from": {"type": "integer"},
                "to": {"type": "integer"},
                "distance": {"type": "integer"},
                "duration": {"type": "integer"},
                "cumulative_travel_time": {"type": "integer"},
                "fuel_after": {"type": "integer"},
                "description": {"type": "string"}
            }
        },
        "controllers.traceResponse": {
            "type": "object",
            "properties": {
                "node": {"type": "integer"},
                "travel_time_from_origin": {"type": "integer"},
                "estimated_time_to_destination": {"type": "integer"}
            }
        },
        "controllers.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:6060",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Charging A* API",
	Description:      "Charging-aware shortest path search on a one-dimensional node network.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
