package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "linkylink/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError picks the status code
// and error code, anything else is a 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status, code, msg := http.StatusBadRequest, 1, err.Error()
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		status, code, msg = httpErr.StatusCode, httpErr.StatusCode, httpErr.Message
	}

	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   msg,
		Data:      data,
	})
}

// BadRequest answers a request that could not be bound. The binding error
// goes into errors.
func BadRequest(c *gin.Context, err error) {
	c.JSON(pkgErrors.ErrBadRequest.StatusCode, Resp{
		ErrorCode: pkgErrors.ErrBadRequest.StatusCode,
		Message:   pkgErrors.ErrBadRequest.Message,
		Errors:    err.Error(),
	})
}

// TooManyRequests aborts the chain with a 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(pkgErrors.ErrTooManyRequests.StatusCode, Resp{
		ErrorCode: pkgErrors.ErrTooManyRequests.StatusCode,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
