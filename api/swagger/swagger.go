package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SkillSwap API",
        "description": "Peer-to-peer skill exchange: browse teachers, negotiate swaps, leave reviews.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Registration and login"},
        {"name": "Profile", "description": "Authenticated user's profile"},
        {"name": "Profile Skills", "description": "Skill assignment ledger"},
        {"name": "Catalog", "description": "Read-only category/skill catalog"},
        {"name": "Browse", "description": "Teacher discovery"},
        {"name": "Swaps", "description": "Swap request lifecycle"},
        {"name": "Reviews", "description": "Reviews and reputation"}
    ],
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new account",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Username already exists"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and receive an access token",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/profile": {
            "get": {
                "tags": ["Profile"],
                "summary": "Get the authenticated user's profile",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Profile"],
                "summary": "Update the authenticated user's profile",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/profile/skills": {
            "get": {
                "tags": ["Profile Skills"],
                "summary": "List the authenticated user's skill assignments",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Profile Skills"],
                "summary": "Claim or update a skill assignment",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Skill not found"}
                }
            }
        },
        "/categories": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List skill categories",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/skills": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List skills",
                "parameters": [
                    {"name": "category_id", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/browse": {
            "get": {
                "tags": ["Browse"],
                "summary": "Browse teachable skills grouped with their teachers",
                "parameters": [
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "category_id", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/swaps": {
            "get": {
                "tags": ["Swaps"],
                "summary": "List sent and received swap requests",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Swaps"],
                "summary": "Send a swap request",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Recipient or skill not found"},
                    "409": {"description": "Duplicate pending request"}
                }
            }
        },
        "/swaps/{id}": {
            "patch": {
                "tags": ["Swaps"],
                "summary": "Accept, reject or complete a received swap request",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Request not found"}
                }
            }
        },
        "/swaps/export": {
            "get": {
                "tags": ["Swaps"],
                "summary": "Download swap history as CSV",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reviews": {
            "post": {
                "tags": ["Reviews"],
                "summary": "Review a completed swap",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Swap request not found or not completed"},
                    "409": {"description": "Review already exists"}
                }
            }
        },
        "/users/{id}/reviews": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List reviews received by a user",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/{id}/reviews/export": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Download a reputation report as PDF",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
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
                "pagination": {"type": "object"}
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
