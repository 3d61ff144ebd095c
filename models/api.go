package models

import (
	"time"

	"statusboard/domain/sheet"
)

// UploadResponse is the success envelope for POST /api/upload-excel.
// TotalRows counts admitted rows only; silently dropped rows are invisible.
type UploadResponse struct {
	Success    bool              `json:"success"`
	Data       []sheet.RowRecord `json:"data"`
	Headers    []string          `json:"headers"`
	TotalRows  int               `json:"totalRows"`
	FileName   string            `json:"fileName"`
	UploadDate time.Time         `json:"uploadDate"`
}

// ErrorResponse is the failure envelope. Details is set only for server-side
// decode/processing failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the GET /api/health payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// UploadAudit is one entry of the upload audit trail. It records metadata
// about an upload, never the uploaded rows themselves.
type UploadAudit struct {
	ID          string    `json:"id" db:"id"`
	FileName    string    `json:"fileName" db:"file_name"`
	TotalRows   int       `json:"totalRows" db:"total_rows"`
	ColumnCount int       `json:"columnCount" db:"column_count"`
	DurationMS  int64     `json:"durationMs" db:"duration_ms"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
