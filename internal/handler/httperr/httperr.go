package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the single error body shape served by every endpoint.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// AbortWithError writes the error response and records the original error on
// the context for the error middleware and future monitoring. A nil err is
// substituted with msg so the cause chain is never empty.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
