package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func writeData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, response{Code: 0, Data: data})
}

func writeError(ctx context.Context, c *gin.Context, err error) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		xcontext.Logger(ctx).Errorf("Unexpected error: %v", err)
		errx = errorx.Unknown
	}

	c.JSON(errx.HTTPStatus(), response{
		Code:  int64(errx.Code),
		Error: errx.Message,
	})
}

// StatusCode returns the http status code of a request which finished with
// err.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return errx.HTTPStatus()
	}

	return errorx.Unknown.HTTPStatus()
}
