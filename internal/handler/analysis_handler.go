package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"claimguard/internal/domain"
	"claimguard/internal/export"
	"claimguard/internal/service"
)

// AnalysisHandler handles policy analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Submit handles POST /api/v1/analyses. The multipart form carries the policy
// document plus the policyholder fields: name, age, conditions (comma
// separated, optional) and email (optional, triggers a report email).
func (h *AnalysisHandler) Submit(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	age, err := strconv.Atoi(c.PostForm("age"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_AGE", "age must be an integer")
		return
	}

	var conditions []string
	for _, cond := range strings.Split(c.PostForm("conditions"), ",") {
		cond = strings.TrimSpace(cond)
		if cond != "" {
			conditions = append(conditions, cond)
		}
	}

	input := service.AnalysisSubmitInput{
		File:   file,
		Header: header,
		User: domain.UserContext{
			Name:       c.PostForm("name"),
			Age:        age,
			Conditions: conditions,
		},
		NotifyEmail: c.PostForm("email"),
	}

	record, err := h.analysisService.Submit(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, record)
}

// List handles GET /api/v1/analyses
func (h *AnalysisHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	records, total, err := h.analysisService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, records, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/analyses/:id
func (h *AnalysisHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid analysis ID")
		return
	}

	record, err := h.analysisService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	// The stored document copy is optional; a missing download URL is not an error.
	downloadURL, err := h.analysisService.DownloadURL(c.Request.Context(), record)
	if err != nil {
		downloadURL = ""
	}

	RespondOK(c, gin.H{
		"analysis":     record,
		"download_url": downloadURL,
	})
}

// Export handles GET /api/v1/analyses/:id/export?format=csv|xlsx
func (h *AnalysisHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid analysis ID")
		return
	}

	record, err := h.analysisService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := record.AnalysisResult()
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		h.exportCSV(c, record, result)
	case "xlsx":
		h.exportXLSX(c, record, result)
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}

func (h *AnalysisHandler) exportCSV(c *gin.Context, record *domain.AnalysisRecord, result *domain.AnalysisResult) {
	filename := fmt.Sprintf("report-%s.csv", record.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewCSVWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteScenarios(result.Scenarios); err != nil {
		return
	}
	w.Flush()
}

func (h *AnalysisHandler) exportXLSX(c *gin.Context, record *domain.AnalysisRecord, result *domain.AnalysisResult) {
	filename := fmt.Sprintf("report-%s.xlsx", record.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)

	if err := export.WriteXLSX(c.Writer, record.UserName, result); err != nil {
		log.Printf("analysisHandler.Export: writing xlsx for %s: %v", record.ID, err)
	}
}

// Sample handles GET /api/v1/sample-report. It returns the deterministic
// fallback report card and always succeeds.
func (h *AnalysisHandler) Sample(c *gin.Context) {
	RespondOK(c, h.analysisService.Sample())
}
