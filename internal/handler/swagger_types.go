package handler

import (
	"encoding/json"

	"jurisflow/internal/domain"
)

// Response is the swagger representation of the success envelope.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody is the swagger representation of the error envelope.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// ExtractRequest is the JSON body of document extraction.
type ExtractRequest struct {
	PDFContent string `json:"pdf_content" example:"JVBERi0xLjQK..."`
	ObjectKey  string `json:"object_key" example:"cases/2024/peticao.pdf"`
}

// FIRACRequest is the body of FIRAC analysis.
type FIRACRequest struct {
	Text string `json:"text" binding:"required" example:"O autor ajuizou ação de cobrança..."`
}

// SearchRequest is the body of precedent search. Portuguese keys are
// accepted as aliases; the English key wins when both are set.
type SearchRequest struct {
	Court           *string      `json:"court" example:"tjsp"`
	ClassCode       *domain.Code `json:"class_code" swaggertype:"string" example:"1116"`
	JudgingBodyCode *domain.Code `json:"judging_body_code" swaggertype:"string" example:"4473"`
	Keywords        *string      `json:"keywords" example:"dano moral"`
	Size            *int         `json:"size" example:"10"`

	Tribunal      *string      `json:"tribunal" swaggerignore:"true"`
	ClasseCodigo  *domain.Code `json:"classe_codigo" swaggerignore:"true"`
	OrgaoJulgador *domain.Code `json:"orgao_julgador" swaggerignore:"true"`
	TextoLivre    *string      `json:"texto_livre" swaggerignore:"true"`
}

// DistinguishRequest is the body of distinguish analysis.
type DistinguishRequest struct {
	CurrentFacts  string          `json:"current_facts" binding:"required" example:"Consumidor teve o nome negativado..."`
	PrecedentData json.RawMessage `json:"precedent_data" binding:"required" swaggertype:"object"`
}

// DraftRequest is the body of document drafting.
type DraftRequest struct {
	DocumentKind string          `json:"document_kind" binding:"required" enums:"ruling,order" example:"ruling"`
	DocumentType string          `json:"document_type" swaggerignore:"true"`
	CaseData     json.RawMessage `json:"case_data" binding:"required" swaggertype:"object"`
}
