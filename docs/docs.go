// Package docs registers the OpenAPI document served at /swagger. The
// template is maintained by hand alongside the handler annotations and the
// request and response types in internal/handler/swagger_types.go.
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
        "/analysis/distinguish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Judge whether a precedent applies to the current facts.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Distinguish analysis",
                "parameters": [
                    {
                        "description": "Current facts and precedent",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.DistinguishRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Distinguish analysis",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.DistinguishResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Missing field or invalid precedent", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "Text generation failed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "503": {"description": "No text generation provider", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/analysis/firac": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Analyze a legal text into Facts, Issues, Rules, Analysis and Conclusion.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "FIRAC analysis",
                "parameters": [
                    {
                        "description": "Legal text",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.FIRACRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "FIRAC analysis",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.AnalysisResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Missing text", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "Text generation failed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "503": {"description": "No text generation provider", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/documents/draft": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Generate a ruling or order from structured case data.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Draft a judicial document",
                "parameters": [
                    {
                        "description": "Document kind and case data",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.DraftRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Generated document",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.DraftResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Missing field or unsupported kind", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "Text generation failed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "503": {"description": "No text generation provider", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/documents/extract": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Extract plain text from a PDF supplied as base64 (pdf_content), a multipart file, or a storage object_key. Results are cached by content fingerprint.",
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Extract text from a PDF",
                "parameters": [
                    {
                        "description": "Base64 document or storage key",
                        "name": "body",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/handler.ExtractRequest"}
                    },
                    {
                        "type": "file",
                        "description": "PDF file",
                        "name": "file",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Extracted text",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.ExtractionResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Missing or invalid document", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "404": {"description": "Object not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "413": {"description": "Document too large", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "415": {"description": "Not a PDF", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Extraction failed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "Storage failure", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/precedents/search": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Search court decisions on DataJud. Only court, class_code, judging_body_code, keywords and size are accepted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["precedents"],
                "summary": "Search precedents",
                "parameters": [
                    {
                        "description": "Search filters",
                        "name": "body",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/handler.SearchRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Precedents, newest first",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.PrecedentResult"}}}
                            ]
                        }
                    },
                    "400": {"description": "Unknown field, invalid court or size", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "DataJud failure", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/precedents/search/export": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Run a precedent search and download the results as XLSX or CSV.",
                "consumes": ["application/json"],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "text/csv"],
                "tags": ["precedents"],
                "summary": "Export precedents",
                "parameters": [
                    {
                        "enum": ["xlsx", "csv"],
                        "type": "string",
                        "default": "xlsx",
                        "description": "Export format",
                        "name": "format",
                        "in": "query"
                    },
                    {
                        "description": "Search filters",
                        "name": "body",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/handler.SearchRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Exported precedents", "schema": {"type": "file"}},
                    "400": {"description": "Unknown field, invalid court, size or format", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "502": {"description": "DataJud failure", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.AnalysisResult": {
            "type": "object",
            "properties": {
                "analysis_type": {"type": "string"},
                "firac_analysis": {"type": "string"},
                "model": {"type": "string"},
                "structured": {"type": "object"},
                "timestamp": {"type": "string"},
                "truncated": {"type": "boolean"}
            }
        },
        "domain.DistinguishResult": {
            "type": "object",
            "properties": {
                "applicable": {"type": "boolean"},
                "confidence": {"type": "number"},
                "distinguish_analysis": {"type": "string"},
                "model": {"type": "string"},
                "timestamp": {"type": "string"},
                "verdict_status": {"type": "string", "enum": ["parsed", "unparsed"]}
            }
        },
        "domain.DraftResult": {
            "type": "object",
            "properties": {
                "document_type": {"type": "string", "enum": ["ruling", "order"]},
                "generated_text": {"type": "string"},
                "model": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "domain.ExtractionMetadata": {
            "type": "object",
            "properties": {
                "extracted_at": {"type": "string"},
                "method": {"type": "string"}
            }
        },
        "domain.ExtractionResult": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "fingerprint": {"type": "string"},
                "metadata": {"$ref": "#/definitions/domain.ExtractionMetadata"},
                "pages": {"type": "integer"},
                "text": {"type": "string"}
            }
        },
        "domain.Precedent": {
            "type": "object",
            "properties": {
                "case_number": {"type": "string"},
                "class_code": {"type": "string"},
                "class_name": {"type": "string"},
                "filed_at": {"type": "string"},
                "id": {"type": "string"},
                "index": {"type": "string"},
                "judging_body": {"type": "string"},
                "judging_body_code": {"type": "string"},
                "score": {"type": "number"},
                "source": {"type": "object"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.PrecedentResult": {
            "type": "object",
            "properties": {
                "court": {"type": "string"},
                "precedents": {"type": "array", "items": {"$ref": "#/definitions/domain.Precedent"}},
                "total": {"type": "integer"}
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "string"},
                "message": {"type": "string"},
                "upstream_status": {"type": "integer"}
            }
        },
        "handler.DistinguishRequest": {
            "type": "object",
            "required": ["current_facts", "precedent_data"],
            "properties": {
                "current_facts": {"type": "string", "example": "Consumidor teve o nome negativado..."},
                "precedent_data": {"type": "object"}
            }
        },
        "handler.DraftRequest": {
            "type": "object",
            "required": ["case_data", "document_kind"],
            "properties": {
                "case_data": {"type": "object"},
                "document_kind": {"type": "string", "enum": ["ruling", "order"], "example": "ruling"}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.APIError"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handler.ExtractRequest": {
            "type": "object",
            "properties": {
                "object_key": {"type": "string", "example": "cases/2024/peticao.pdf"},
                "pdf_content": {"type": "string", "example": "JVBERi0xLjQK..."}
            }
        },
        "handler.FIRACRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "example": "O autor ajuizou ação de cobrança..."}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.SearchRequest": {
            "type": "object",
            "properties": {
                "class_code": {"type": "string", "example": "1116"},
                "court": {"type": "string", "example": "tjsp"},
                "judging_body_code": {"type": "string", "example": "4473"},
                "keywords": {"type": "string", "example": "dano moral"},
                "size": {"type": "integer", "example": 10}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Jurisflow API",
	Description:      "Legal document analysis: PDF text extraction, FIRAC analysis, DataJud precedent search, distinguish analysis and drafting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
