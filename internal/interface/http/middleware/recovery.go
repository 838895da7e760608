package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshop/internal/domain/order"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// Recovery 捕获panic
// 教学要点：访问未加载的关联会panic（UnresolvedError），这是程序错误而不是业务错误，
// 所以返回HTTP 500，并把关联名写进日志，方便定位是哪个查询方案漏加载了
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			attrs := []any{
				slog.String("path", c.Request.URL.Path),
				slog.Any("panic", rec),
			}
			var unresolved *order.UnresolvedError
			if err, ok := rec.(error); ok && errors.As(err, &unresolved) {
				attrs = append(attrs, slog.String("association", unresolved.Association))
			} else {
				attrs = append(attrs, slog.String("stack", string(debug.Stack())))
			}
			slog.ErrorContext(c.Request.Context(), "panic recovered", attrs...)

			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Code:    apperrors.ErrCodeInternal,
				Message: apperrors.ErrInternal.Message,
			})
		}()
		c.Next()
	}
}
