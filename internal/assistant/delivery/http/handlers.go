package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/response"
)

// Message godoc
// @Summary     Send a natural-language calendar command
// @Description Parses the message into a calendar action, executes it against
// @Description the user's Google Calendar and returns a conversational reply.
// @Description When several events match, the reply lists numbered candidates
// @Description and the next message may answer with a selection like "2".
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "User message"
// @Success     200 {object} messageResp
// @Failure     400 {object} errorResp "Empty message, oversized message or invalid selection"
// @Failure     401 {object} response.Resp "Not authenticated"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} errorResp "Parser or calendar failure"
// @Router      /api/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processMessageReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: "Message field is required"})
		return
	}

	output, err := h.uc.HandleMessage(ctx, sc, req.toInput())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newMessageResp(output))
}
