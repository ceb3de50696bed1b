package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/loterias-lab/backend/pkg/errorx"
	"github.com/loterias-lab/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	befores := append([]MiddlewareFunc{}, r.befores...)
	afters := append([]MiddlewareFunc{}, r.afters...)
	closers := append([]CloserFunc{}, r.closers...)

	return func(c *gin.Context) {
		ctx := xcontext.WithHTTPRequest(r.ctx, c.Request)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		var resp *Response
		err := func() error {
			var err error
			if ctx, err = runMiddlewares(ctx, befores); err != nil {
				return err
			}

			req := new(Request)
			if err := bind(c, method, req); err != nil {
				xcontext.Logger(ctx).Debugf("Cannot bind request: %v", err)
				return errorx.New(errorx.BadRequest, "Invalid request format")
			}

			if resp, err = handler(ctx, req); err != nil {
				return err
			}

			ctx, err = runMiddlewares(ctx, afters)
			return err
		}()

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeError(ctx, c, err)
			return
		}

		writeData(c, resp)
	}
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, middleware := range middlewares {
		newCtx, err := middleware(ctx)
		if err != nil {
			return ctx, err
		}

		if newCtx != nil {
			ctx = newCtx
		}
	}

	return ctx, nil
}

func bind(c *gin.Context, method string, req any) error {
	if method == "GET" {
		return c.ShouldBindQuery(req)
	}

	if c.Request.ContentLength == 0 {
		return nil
	}

	return c.ShouldBindJSON(req)
}
