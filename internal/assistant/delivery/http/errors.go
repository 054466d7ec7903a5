package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/assistant"
)

// renderError translates use-case errors into the flat bodies the chat
// frontend renders. Unknown errors stay generic so internals never leak
// into the conversation.
func (h *handler) renderError(c *gin.Context, err error) {
	var sel assistant.InvalidSelectionError

	switch {
	case errors.As(err, &sel):
		c.JSON(http.StatusBadRequest, errorResp{Message: sel.Error()})
	case errors.Is(err, assistant.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, errorResp{Error: "Message field is required"})
	case errors.Is(err, assistant.ErrMessageTooLong):
		c.JSON(http.StatusBadRequest, errorResp{Error: "Your message is too long. Please keep commands under 500 characters."})
	case errors.Is(err, assistant.ErrParseFailed):
		h.l.Errorf(c.Request.Context(), "assistant delivery: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: "Failed to parse AI response"})
	default:
		h.l.Errorf(c.Request.Context(), "assistant delivery: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: "An error occurred processing your message"})
	}
}
