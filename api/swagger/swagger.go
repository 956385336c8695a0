package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Materiality Assessment API",
        "description": "Double materiality assessment engine for ESG reporting",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Predefined ESG topic taxonomy"},
        {"name": "Organizations", "description": "Organizations visible to the actor"},
        {"name": "Topics", "description": "Topic selection per organization"},
        {"name": "Scoring", "description": "Impact scoring and report fields"},
        {"name": "Matrix", "description": "Materiality prioritization matrix"},
        {"name": "Assessment", "description": "Workflow progress"},
        {"name": "Report", "description": "Final report and export"}
    ],
    "paths": {
        "/catalog": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List predefined topics grouped by ESG category",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/organizations": {
            "get": {
                "tags": ["Organizations"],
                "summary": "List organizations visible to the authenticated actor",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/topics": {
            "get": {
                "tags": ["Topics"],
                "summary": "List selected topics",
                "parameters": [
                    {"name": "orgId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/topics/toggle": {
            "post": {
                "tags": ["Topics"],
                "summary": "Select or deselect a catalog topic",
                "parameters": [
                    {"name": "orgId", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleTopicRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/topics/custom": {
            "post": {
                "tags": ["Topics"],
                "summary": "Add a custom topic",
                "parameters": [
                    {"name": "orgId", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddCustomTopicRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/topics/{id}": {
            "delete": {
                "tags": ["Topics"],
                "summary": "Remove a custom topic",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "orgId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/topics/{id}/score": {
            "patch": {
                "tags": ["Scoring"],
                "summary": "Score a topic and derive its materiality index",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "orgId", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScoreTopicRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/topics/{id}/report": {
            "patch": {
                "tags": ["Scoring"],
                "summary": "Update narrative report fields of a material topic",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "orgId", "in": "query", "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReportTopicRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/matrix": {
            "get": {
                "tags": ["Matrix"],
                "summary": "Materiality prioritization matrix",
                "parameters": [
                    {"name": "orgId", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/assessment/overview": {
            "get": {
                "tags": ["Assessment"],
                "summary": "Assessment progress and stage completion",
                "parameters": [
                    {"name": "orgId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/report": {
            "get": {
                "tags": ["Report"],
                "summary": "Final report over material topics",
                "parameters": [
                    {"name": "orgId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/report/export": {
            "get": {
                "tags": ["Report"],
                "summary": "Download the final report as CSV or PDF",
                "parameters": [
                    {"name": "orgId", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "Topic": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "organization_id": {"type": "string"},
                "topic": {"type": "string"},
                "category": {"type": "string"},
                "subcategory": {"type": "string"},
                "is_custom": {"type": "boolean"},
                "financial_impact_score": {"type": "integer"},
                "impact_on_stakeholders": {"type": "integer"},
                "stakeholder_concern_level": {"type": "string"},
                "scoring_justification": {"type": "string"},
                "materiality_index": {"type": "number"},
                "is_material": {"type": "boolean"},
                "why_material": {"type": "string"},
                "management_response": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "ToggleTopicRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "category": {"type": "string"},
                "subcategory": {"type": "string"}
            },
            "required": ["topic", "category"]
        },
        "AddCustomTopicRequest": {
            "type": "object",
            "properties": {
                "topic": {"type": "string"},
                "category": {"type": "string"}
            },
            "required": ["topic"]
        },
        "ScoreTopicRequest": {
            "type": "object",
            "properties": {
                "financial_impact_score": {"type": "integer", "minimum": 0, "maximum": 5},
                "impact_on_stakeholders": {"type": "integer", "minimum": 0, "maximum": 5},
                "stakeholder_concern_level": {"type": "string", "enum": ["low", "medium", "high"]},
                "scoring_justification": {"type": "string"}
            },
            "required": ["financial_impact_score", "impact_on_stakeholders", "stakeholder_concern_level"]
        },
        "ReportTopicRequest": {
            "type": "object",
            "properties": {
                "why_material": {"type": "string"},
                "management_response": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
