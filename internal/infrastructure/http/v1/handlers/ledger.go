package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nyaga-richard/tire-manager-sub000/internal/core/apperror"
	"github.com/nyaga-richard/tire-manager-sub000/internal/core/id"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/ledger"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/export"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/http/v1/dto"
)

// LedgerHandler handles the reconciled stock ledger and its exports.
type LedgerHandler struct {
	*BaseHandler
	service *ledger.Service
	auditor movement.Auditor
	format  export.Format
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(base *BaseHandler, service *ledger.Service, auditor movement.Auditor, format export.Format) *LedgerHandler {
	return &LedgerHandler{
		BaseHandler: base,
		service:     service,
		auditor:     auditor,
		format:      format,
	}
}

// Get handles GET /ledger
func (h *LedgerHandler) Get(c *gin.Context) {
	report, ok := h.reconcile(c)
	if !ok {
		return
	}
	h.OK(c, dto.FromLedgerReport(report))
}

// ExportCSV handles GET /ledger/export/csv
func (h *LedgerHandler) ExportCSV(c *gin.Context) {
	report, ok := h.reconcile(c)
	if !ok {
		return
	}

	h.auditExport(c, "export_ledger_csv", report)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(report, "csv")))
	c.Data(200, "text/csv; charset=utf-8", export.BuildLedgerCSV(report, h.format))
}

// ExportXLSX handles GET /ledger/export/xlsx
func (h *LedgerHandler) ExportXLSX(c *gin.Context) {
	report, ok := h.reconcile(c)
	if !ok {
		return
	}

	data, err := export.BuildLedgerXLSX(report, h.format)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	h.auditExport(c, "export_ledger_xlsx", report)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(report, "xlsx")))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportPDF handles GET /ledger/export/pdf
func (h *LedgerHandler) ExportPDF(c *gin.Context) {
	report, ok := h.reconcile(c)
	if !ok {
		return
	}

	data, err := export.BuildLedgerPDF(report, h.format)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	h.auditExport(c, "export_ledger_pdf", report)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(report, "pdf")))
	c.Data(200, "application/pdf", data)
}

// reconcile parses the window and runs the full reconciliation pass.
func (h *LedgerHandler) reconcile(c *gin.Context) (*ledger.Report, bool) {
	fromStr := c.Query("fromDate")
	toStr := c.Query("toDate")
	if fromStr == "" || toStr == "" {
		h.Error(c, apperror.NewValidation("fromDate and toDate are required"))
		return nil, false
	}

	fromDate, err := time.Parse(time.RFC3339, fromStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid fromDate format, expected RFC3339"))
		return nil, false
	}
	toDate, err := time.Parse(time.RFC3339, toStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid toDate format, expected RFC3339"))
		return nil, false
	}
	if fromDate.After(toDate) {
		h.Error(c, apperror.NewValidation("fromDate must be before toDate"))
		return nil, false
	}

	filter := movement.Filter{
		FromDate:      fromDate,
		ToDate:        toDate,
		SerialNumber:  c.Query("serialNumber"),
		VehicleNumber: c.Query("vehicleNumber"),
	}

	report, err := h.service.Reconcile(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return nil, false
	}
	return report, true
}

// auditExport records who exported which window. Best-effort: an audit
// failure must not block the download itself.
func (h *LedgerHandler) auditExport(c *gin.Context, action string, report *ledger.Report) {
	if h.auditor == nil {
		return
	}
	detail := map[string]any{
		"from_date":     report.FromDate,
		"to_date":       report.ToDate,
		"total_entries": report.TotalEntries,
		"final_closing": report.FinalClosing,
	}
	_ = h.auditor.Record(c.Request.Context(), action, id.New(), detail)
}

func exportFilename(report *ledger.Report, ext string) string {
	return fmt.Sprintf("tire-ledger_%s_%s.%s",
		report.FromDate.Format("20060102"),
		report.ToDate.Format("20060102"),
		ext,
	)
}

// RegisterRoutes registers ledger routes.
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.GET("/export/csv", h.ExportCSV)
	rg.GET("/export/xlsx", h.ExportXLSX)
	rg.GET("/export/pdf", h.ExportPDF)
}
