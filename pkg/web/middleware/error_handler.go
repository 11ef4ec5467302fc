package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	hzte "github.com/cloudwego/hertz/pkg/common/errors"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"

	apierrors "cadastro-pessoas/pkg/common/errors"
)

// ErrorHandlerMiddleware renders the last error attached with ctx.Error as
//
//	{"code": <status>, "message": "...", "errors": [{"field": "...", "error": "..."}]}
func ErrorHandlerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		ctx.Next(c)

		last := ctx.Errors.Last()
		if last == nil {
			return
		}

		var err error = last
		if !last.IsType(hzte.ErrorTypePublic) {
			err = last.Err
		}

		apiErr, internal := apierrors.FromError(err)
		if internal {
			hlog.CtxErrorf(c, "unhandled error request_id=%s path=%s: %v",
				GetRequestID(ctx), ctx.Path(), err)
		}

		detail := apierrors.DetailOf(apiErr)
		fields := detail.Errors
		if fields == nil {
			fields = []apierrors.FieldError{}
		}

		ctx.AbortWithStatusJSON(detail.Status, utils.H{
			"code":    detail.Status,
			"message": apiErr.Error(),
			"errors":  fields,
		})
	}
}
