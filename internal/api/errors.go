package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/ygodeck/internal/deck"
	imagepkg "github.com/youruser/ygodeck/internal/image"
	"github.com/youruser/ygodeck/internal/session"
)

// fail writes err as a localized JSON error with the matching status.
func (h *Handler) fail(c *gin.Context, err error) {
	status, id := http.StatusInternalServerError, "internal_error"
	var data map[string]any

	switch {
	case errors.Is(err, deck.ErrCopyLimit):
		status, id = http.StatusConflict, "copy_limit"
		data = map[string]any{"Max": deck.MaxCopies}
	case errors.Is(err, deck.ErrEmptyName):
		status, id = http.StatusBadRequest, "empty_name"
	case errors.Is(err, deck.ErrUnknownCategory):
		status, id = http.StatusBadRequest, "unknown_category"
	case errors.Is(err, session.ErrUnknownCard):
		status, id = http.StatusBadRequest, "unknown_card"
	case errors.Is(err, session.ErrUnknownFormat):
		status, id = http.StatusBadRequest, "unknown_format"
	case errors.Is(err, imagepkg.ErrQRTooLong):
		status, id = http.StatusUnprocessableEntity, "qr_too_long"
	case errors.Is(err, errInvalidRequest):
		status, id = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, session.ErrUnknownEntry):
		status, id = http.StatusNotFound, "unknown_entry"
	case errors.Is(err, session.ErrNotFound):
		status, id = http.StatusNotFound, "session_not_found"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error":   h.tr.T(id, data),
		"code":    id,
		"details": err.Error(),
	})
}

var errInvalidRequest = errors.New("invalid request")
