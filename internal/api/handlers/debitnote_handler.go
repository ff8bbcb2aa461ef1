package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"debitnote-service/internal/api/responses"
	"debitnote-service/internal/core/debitnote"
	"debitnote-service/internal/core/document"

	"github.com/gin-gonic/gin"
)

// DebitNoteHandler handles the API requests for debit note extraction and
// document generation.
type DebitNoteHandler struct {
	service debitnote.Service
}

// NewDebitNoteHandler creates a new debit note handler.
func NewDebitNoteHandler(service debitnote.Service) *DebitNoteHandler {
	return &DebitNoteHandler{
		service: service,
	}
}

// openWorkbookUpload validates and opens the uploaded workbook file.
func openWorkbookUpload(c *gin.Context) (multipart.File, string, bool) {
	fileHeader, err := c.FormFile("workbookFile")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Workbook file (.csv, .xls, .xlsx) missing or invalid")
		return nil, "", false
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".csv" && ext != ".xls" && ext != ".xlsx" {
		responses.Error(c, http.StatusBadRequest, fmt.Sprintf("Unsupported workbook file extension: %s", ext))
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Could not open the uploaded workbook")
		return nil, "", false
	}
	return file, fileHeader.Filename, true
}

// HandleProcess runs the extraction pipeline and returns the full result:
// header map, normalized rows with debit amounts, supplier aggregation and
// diagnostics.
func (h *DebitNoteHandler) HandleProcess(c *gin.Context) {
	file, filename, ok := openWorkbookUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.service.ProcessWorkbook(file, filename)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Failed to process the workbook", err.Error())
		return
	}

	msg := fmt.Sprintf("Loaded %d rows. Header (Debit): %s. Rows with explicit debit: %d. Found %d supplier(s) requiring debit.",
		result.Diagnostics.RowCount, result.Diagnostics.DebitHeader,
		result.Diagnostics.ExplicitDebitRows, result.Diagnostics.SupplierCount)
	responses.Success(c, result, msg)
}

// HandleGenerate renders the debit note PDF for a single supplier named in
// the "supplier" form field.
func (h *DebitNoteHandler) HandleGenerate(c *gin.Context) {
	file, filename, ok := openWorkbookUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	supplier := strings.TrimSpace(c.PostForm("supplier"))
	if supplier == "" {
		responses.Error(c, http.StatusBadRequest, "Form field 'supplier' is required")
		return
	}

	result, err := h.service.ProcessWorkbook(file, filename)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Failed to process the workbook", err.Error())
		return
	}

	pdf, err := h.service.GenerateNote(result, supplier)
	if err != nil {
		responses.Error(c, http.StatusNotFound, fmt.Sprintf("No debit note for supplier %q", supplier), err.Error())
		return
	}

	responses.File(c, document.NoteFileName(supplier), "application/pdf", pdf)
}

// HandleGenerateAll renders every supplier's debit note and returns them as
// a single zip archive.
func (h *DebitNoteHandler) HandleGenerateAll(c *gin.Context) {
	file, filename, ok := openWorkbookUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.service.ProcessWorkbook(file, filename)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Failed to process the workbook", err.Error())
		return
	}

	archive, err := h.service.GenerateAllNotes(result)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "No debit notes to generate", err.Error())
		return
	}

	fileName := fmt.Sprintf("DebitNotes_%s.zip", time.Now().Format("20060102_150405"))
	responses.File(c, fileName, "application/zip", archive)
}
