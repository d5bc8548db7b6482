package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const KindServerError = "server_error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// Detail carries a machine-readable kind next to the human message.
type Detail struct {
	Kind string `json:"kind"`
}

// AbortWithError keeps err on the gin context for the request log and renders
// msg to the client.
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

// AbortWithKind is AbortWithError with a Detail of the given kind.
func AbortWithKind(c *gin.Context, status int, err error, msg, kind string) {
	AbortWithError(c, status, err, msg, Detail{Kind: kind})
}

func ServerError() Response {
	resp := Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	resp.Detail = Detail{Kind: KindServerError}
	return resp
}
