package routes

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personalfinancemanagentdashboard/babu/internal/contracts"
	"github.com/personalfinancemanagentdashboard/babu/internal/domain/report"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

const (
	formatCSV = "csv"
	formatPDF = "pdf"

	csvContentType = "text/csv"
	pdfContentType = "application/pdf"
)

func (h *Handler) ExportTransactionsReport(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var query contracts.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	rep, err := h.ReportService.TransactionReport(ctx, userID, query.StartDate, query.EndDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if query.Format == formatPDF {
		if err := report.WriteTransactionsPDF(&buf, rep); err != nil {
			h.respondError(c, appErrors.ErrInternalServer.WithError(err))
			return
		}
		sendAttachment(c, "transactions.pdf", pdfContentType, buf.Bytes())
		return
	}

	if err := report.WriteTransactionsCSV(&buf, rep); err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}
	sendAttachment(c, "transactions.csv", csvContentType, buf.Bytes())
}

func (h *Handler) ExportBudgetsReport(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var query contracts.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	ctx := c.Request.Context()
	rep, err := h.ReportService.BudgetReport(ctx, userID, query.StartDate, query.EndDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if query.Format == formatPDF {
		if err := report.WriteBudgetsPDF(&buf, rep); err != nil {
			h.respondError(c, appErrors.ErrInternalServer.WithError(err))
			return
		}
		sendAttachment(c, "budgets.pdf", pdfContentType, buf.Bytes())
		return
	}

	if err := report.WriteBudgetsCSV(&buf, rep); err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}
	sendAttachment(c, "budgets.csv", csvContentType, buf.Bytes())
}

func sendAttachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, body)
}
