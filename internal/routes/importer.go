package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personalfinancemanagentdashboard/babu/internal/domain/importer"
	appErrors "github.com/personalfinancemanagentdashboard/babu/internal/errors"
)

// ImportTransactions ingests a bank statement posted as multipart form data.
// The file goes in the "file" field; an optional "columnMapping" field holds
// a JSON object overriding the auto-detected column headers.
func (h *Handler) ImportTransactions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("file", "No file provided"))
		return
	}

	var explicit *importer.ColumnMapping
	if raw := c.PostForm("columnMapping"); raw != "" {
		explicit = &importer.ColumnMapping{}
		if err := json.Unmarshal([]byte(raw), explicit); err != nil {
			h.respondError(c, appErrors.NewValidationError("columnMapping", "must be a JSON object"))
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	result, err := h.ImportService.ParseAndImport(ctx, userID, fileHeader.Filename, file, explicit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
