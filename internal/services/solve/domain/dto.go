// Package domain holds DTOs for solve http and service contracts
package domain

import (
	"time"

	"mathgate/internal/core/mathexpr"
)

// Attempt statuses recorded in history
const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
	StatusFailed   = "failed"
)

// SolveInput is a raw solve request; text may be typed, pasted, or OCR output
type SolveInput struct {
	Text      string `json:"text" validate:"max=4000" example:"جذر تربيعي ١٦"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid4"`
	Source    string `json:"source,omitempty" validate:"omitempty,oneof=typed keyboard ocr" example:"typed"`
	Mode      string `json:"mode,omitempty" validate:"omitempty,oneof=auto evaluate derivative integral solve matrix" example:"auto"`
	Explain   string `json:"explain,omitempty" validate:"omitempty,oneof=short long" example:"short"`
}

// Step is one explanation step in display order
type Step struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// Pretty carries optional presentation renderings of the result
type Pretty struct {
	EnText  string `json:"en_text,omitempty"`
	ArLatex string `json:"ar_latex,omitempty"`
}

// SolveResult is the outcome of one solve attempt
type SolveResult struct {
	Seq          int64              `json:"seq"`
	Canonical    string             `json:"canonical"`
	Kind         string             `json:"kind" example:"evaluate"`
	AngleMode    string             `json:"angle_mode" example:"radians"`
	Result       string             `json:"result,omitempty"`
	Steps        []Step             `json:"steps,omitempty"`
	Pretty       *Pretty            `json:"pretty,omitempty"`
	NumericValue string             `json:"numeric_value,omitempty"`
	Warnings     []mathexpr.Warning `json:"warnings,omitempty"`
}

// OcrInput carries a base64 image to recognize
type OcrInput struct {
	ImageB64 string `json:"image_b64" validate:"required,base64"`
	Langs    string `json:"langs,omitempty" validate:"omitempty,printascii" example:"ara+eng"`
}

// OcrResult returns recognized text untouched; normalization happens on solve
type OcrResult struct {
	Text string `json:"text"`
}

// HistoryInput filters recorded attempts
type HistoryInput struct {
	SessionID string `json:"session_id,omitempty" validate:"omitempty,uuid4"`
	Kind      string `json:"kind,omitempty" validate:"omitempty,oneof=evaluate derivative integral solve matrix"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=ok rejected failed"`
	Limit     int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
	Offset    int    `json:"offset,omitempty" validate:"omitempty,min=0"`
}

// HistoryEntry is one recorded attempt
type HistoryEntry struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id,omitempty"`
	Seq       int64      `json:"seq"`
	RawText   string     `json:"raw_text"`
	Canonical string     `json:"canonical"`
	Kind      string     `json:"kind"`
	AngleMode string     `json:"angle_mode"`
	Status    string     `json:"status"`
	Result    string     `json:"result,omitempty"`
	Error     string     `json:"error,omitempty"`
	Source    string     `json:"source,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ExportResult is an XLSX workbook of attempts, base64 for the JSON envelope
type ExportResult struct {
	Filename   string `json:"filename" example:"mathgate-history.xlsx"`
	ContentB64 string `json:"content_b64"`
}
