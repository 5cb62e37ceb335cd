package httperr

import (
	"net/http"

	"lifepass-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps the shared sentinels to a status code. Device availability wins
// over not-found so an authority miss during allocation reads as a conflict.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrDeviceUnavailable):
		return http.StatusConflict
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort classifies err and hides internal details behind a generic message.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, msg, err.Error())
}
