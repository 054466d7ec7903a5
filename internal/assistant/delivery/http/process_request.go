package http

import (
	"github.com/gin-gonic/gin"
)

// processMessageReq binds the chat request body. Content validation
// (emptiness, length) belongs to the use case.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
