package middleware

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"golang.org/x/time/rate"

	"cadastro-pessoas/pkg/common/config"
)

// LoggerMiddleware 结构化的请求日志记录
func LoggerMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c) // 放行到后续处理器
		latency := time.Since(start)

		hlog.CtxInfof(c, "| %3d | %13v | %15s | %-7s | %s | request_id=%s",
			ctx.Response.StatusCode(),
			latency,
			ctx.ClientIP(),
			ctx.Method(),
			ctx.Path(),
			GetRequestID(ctx),
		)
	}
}

// RecoveryMiddleware 增强型异常捕获（带配置依赖版本）
func RecoveryMiddleware(cfg *config.Config) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				// 获取调用堆栈
				stack := string(debug.Stack())

				hlog.CtxErrorf(c, "[PANIC RECOVERED] %v\n%s", err, stack)

				// 生产环境处理
				if cfg.IsProd() {
					ctx.AbortWithStatusJSON(consts.StatusInternalServerError, utils.H{
						"code":    consts.StatusInternalServerError,
						"message": "internal server error",
						"errors":  []any{},
					})
				} else { // 开发环境显示详细错误
					ctx.AbortWithStatusJSON(consts.StatusInternalServerError, utils.H{
						"code":    consts.StatusInternalServerError,
						"message": fmt.Sprintf("%v", err),
						"stack":   strings.Split(stack, "\n"),
					})
				}
			}
		}()
		ctx.Next(c)
	}
}

// CORSMiddleware 安全的跨域配置
func CORSMiddleware(corsConfig config.CORSConfig) app.HandlerFunc {
	if slices.Contains(corsConfig.AllowOrigins, "*") {
		return cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    corsConfig.AllowMethods,
			AllowHeaders:    corsConfig.AllowHeaders,
			ExposeHeaders:   corsConfig.ExposeHeaders,
			MaxAge:          corsConfig.MaxAge,
		})
	}

	return cors.New(
		cors.Config{
			AllowOrigins:     corsConfig.AllowOrigins,
			AllowMethods:     corsConfig.AllowMethods,
			AllowHeaders:     corsConfig.AllowHeaders,
			ExposeHeaders:    corsConfig.ExposeHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAge,
			// 动态校验来源
			AllowOriginFunc: func(origin string) bool {
				if slices.Contains(corsConfig.AllowOrigins, origin) {
					return true
				}
				for _, domain := range corsConfig.TrustedDomains {
					if strings.HasSuffix(origin, domain) {
						return true
					}
				}
				return false
			},
		},
	)
}

// TimeoutMiddleware hands a deadline to the rest of the chain. Handlers pass it
// to GORM, so a slow query fails with context.DeadlineExceeded and the error
// middleware answers 503. seconds <= 0 disables it.
func TimeoutMiddleware(seconds int) app.HandlerFunc {
	if seconds <= 0 {
		return func(c context.Context, ctx *app.RequestContext) {
			ctx.Next(c)
		}
	}
	timeout := time.Duration(seconds) * time.Second

	return func(c context.Context, ctx *app.RequestContext) {
		timeoutCtx, cancel := context.WithTimeout(c, timeout)
		defer cancel()

		ctx.Next(timeoutCtx)

		if errors.Is(timeoutCtx.Err(), context.DeadlineExceeded) {
			hlog.CtxWarnf(c, "request timeout path=%s request_id=%s", ctx.Path(), GetRequestID(ctx))
		}
	}
}

// RateLimitMiddleware 令牌桶算法限流：每 interval 最多 n 个请求，n <= 0 时不限流
func RateLimitMiddleware(n int, interval time.Duration) app.HandlerFunc {
	if n <= 0 {
		return func(c context.Context, ctx *app.RequestContext) {
			ctx.Next(c)
		}
	}
	limiter := rate.NewLimiter(rate.Every(interval/time.Duration(n)), n)

	return func(c context.Context, ctx *app.RequestContext) {
		if !limiter.Allow() {
			hlog.CtxInfof(c, "[RATE LIMIT] path=%s", ctx.Path())
			securityResponse(ctx, consts.StatusTooManyRequests, "too many requests")
			return
		}
		ctx.Next(c)
	}
}

// SecurityCheckMiddleware 全局安全校验中间件
func SecurityCheckMiddleware(cfg config.SecurityConfig) app.HandlerFunc {
	// 预编译恶意字符正则
	xssRegex := regexp.MustCompile(`(?i)<script.*?>|<\/script>|alert\(|onerror=`)
	// 只拦截语句形态的片段，单个关键字（如 ?q=select）放行
	sqlInjectRegex := regexp.MustCompile(`(?i)\bunion\b.+\bselect\b|\b(drop|truncate)\s+table\b|\bdelete\s+from\b|\binsert\s+into\b|;\s*--`)

	allowed := make(map[string]bool, len(cfg.AllowedMethods))
	for _, m := range cfg.AllowedMethods {
		allowed[strings.ToUpper(m)] = true
	}

	return func(c context.Context, ctx *app.RequestContext) {
		// 防护机制1：检查User-Agent
		if cfg.RequireUserAgent && isInvalidUserAgent(ctx) {
			securityResponse(ctx, consts.StatusBadRequest, "missing required header: User-Agent")
			return
		}

		// 防护机制2：请求体大小限制
		if int64(ctx.Request.Header.ContentLength()) > cfg.MaxBodySize {
			securityResponse(ctx, consts.StatusRequestEntityTooLarge, "request body exceeds max size")
			return
		}

		// 防护机制3：参数恶意字符检查
		if hasMaliciousContent(ctx, xssRegex, sqlInjectRegex) {
			securityResponse(ctx, consts.StatusUnprocessableEntity, "request contains invalid characters")
			return
		}

		// 防护机制4：检查HTTP方法
		if !allowed[string(ctx.Method())] {
			securityResponse(ctx, consts.StatusMethodNotAllowed, "method not allowed")
			return
		}

		ctx.Next(c)
	}
}

// 辅助方法：判断User-Agent合法性
func isInvalidUserAgent(ctx *app.RequestContext) bool {
	return len(ctx.GetHeader("User-Agent")) == 0
}

func hasMaliciousContent(ctx *app.RequestContext, xss *regexp.Regexp, sql *regexp.Regexp) bool {
	found := false
	visitor := func(key, value []byte) {
		if found {
			return
		}
		found = xss.Match(key) || xss.Match(value) || sql.Match(key) || sql.Match(value)
	}

	// 检查Query参数
	ctx.QueryArgs().VisitAll(visitor)
	if found {
		return true
	}

	// 检查Post表单参数
	ctx.PostArgs().VisitAll(visitor)
	return found
}

// 安全响应统一处理，格式与错误中间件一致
func securityResponse(ctx *app.RequestContext, status int, msg string) {
	hlog.Warnf("SecurityAlert[status=%d]: %s", status, msg)
	ctx.AbortWithStatusJSON(status, utils.H{
		"code":    status,
		"message": msg,
		"errors":  []any{},
	})
}
