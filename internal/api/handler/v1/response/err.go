package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status_text"`
	ErrorMsg       string `json:"error_msg,omitempty"`
	RequestID      string `json:"request_id,omitempty"`
	Err            error  `json:"-"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.StatusText
	}

	return e.Err.Error()
}

// RenderErr writes e as JSON and aborts the chain. Server side failures are
// logged with the request id, and their cause is not sent to the client.
func RenderErr(ctx *gin.Context, e *Err) {
	e.RequestID = requestid.Get(ctx)

	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.StatusText,
			zap.String("request_id", e.RequestID),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(e.Err),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Bad request.",
		ErrorMsg:       err.Error(),
		Err:            err,
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     "Unauthorized.",
		ErrorMsg:       err.Error(),
		Err:            err,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		StatusText:     "Permission denied.",
		ErrorMsg:       err.Error(),
		Err:            err,
	}
}

func ErrNotFound(resource, key string, value any) *Err {
	msg := fmt.Sprintf("%s with %s %v not found", resource, key, value)

	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Resource not found.",
		ErrorMsg:       msg,
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusConflict,
		StatusText:     "Conflict.",
		ErrorMsg:       err.Error(),
		Err:            err,
	}
}

func ErrServiceUnavailable(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusServiceUnavailable,
		StatusText:     "Service temporarily unavailable, please retry.",
		Err:            err,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		Err:            err,
	}
}
