package ui

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"statusboard/adapters/excel"
	"statusboard/internal/errors"
	"statusboard/internal/summary"
	"statusboard/models"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".csv":  true,
}

// handleUploadExcel accepts a multipart spreadsheet upload, decodes it,
// runs the normalization pipeline, and returns the normalized rows.
// The spooled temp file is removed on every exit path.
func (s *Server) handleUploadExcel(c *gin.Context) {
	start := time.Now()

	fileHeader, err := c.FormFile("excel")
	if err != nil {
		s.rejectInput(c, "No file uploaded. Attach a spreadsheet in the \"excel\" form field.")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		s.rejectInput(c, "Unsupported file type. Allowed: .xlsx, .xls, .csv")
		return
	}

	if fileHeader.Size > s.cfg.Upload.MaxSizeBytes {
		s.rejectInput(c, "File too large. Maximum upload size is 10MB.")
		return
	}

	tempPath := filepath.Join(s.cfg.Upload.TempDir, "upload-"+uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		s.log.Error("failed to spool upload: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to store uploaded file",
			Details: err.Error(),
		})
		return
	}
	defer os.Remove(tempPath)

	grid, err := excel.NewDataReader(tempPath).ReadGrid()
	if err != nil {
		s.log.Warn("decode failed for %s: %v", fileHeader.Filename, err)
		message := "Failed to process file"
		if !errors.IsCode(err, errors.CodeDecodeFailure) {
			message = "Unexpected error while processing file"
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   message,
			Details: err.Error(),
		})
		return
	}

	res := s.normalizer.Normalize(grid)
	profile := summary.Build(res)
	s.log.Info("processed %s: %d columns, %d rows admitted in %s",
		fileHeader.Filename, profile.ColumnCount, profile.TotalRows, time.Since(start))

	s.recordAudit(c, fileHeader.Filename, profile, time.Since(start))

	c.JSON(http.StatusOK, models.UploadResponse{
		Success:    true,
		Data:       res.Rows,
		Headers:    res.Headers,
		TotalRows:  len(res.Rows),
		FileName:   fileHeader.Filename,
		UploadDate: time.Now().UTC(),
	})
}

func (s *Server) rejectInput(c *gin.Context, message string) {
	err := errors.InputRejected(message)
	s.log.Warn("%s: %s", errors.GetCode(err), message)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: message})
}

// recordAudit writes the upload audit entry when the audit log is enabled.
// Audit failures are logged, never surfaced to the uploader.
func (s *Server) recordAudit(c *gin.Context, fileName string, profile summary.Profile, duration time.Duration) {
	if s.uploads == nil {
		return
	}
	audit := models.UploadAudit{
		ID:          uuid.NewString(),
		FileName:    fileName,
		TotalRows:   profile.TotalRows,
		ColumnCount: profile.ColumnCount,
		DurationMS:  duration.Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.uploads.Record(c.Request.Context(), audit, profile); err != nil {
		s.log.Error("audit record failed: %v", err)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Message:   "statusboard is running",
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) handleUploads(c *gin.Context) {
	if s.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: "Upload audit log is disabled (no DATABASE_URL configured)",
		})
		return
	}
	audits, err := s.uploads.Recent(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to list uploads",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploads": audits})
}

// handleDocs serves the embedded API reference rendered from markdown.
func (s *Server) handleDocs(c *gin.Context) {
	source, err := docFiles.ReadFile("docs/api.md")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "docs unavailable"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", markdown.ToHTML(source, nil, nil))
}
