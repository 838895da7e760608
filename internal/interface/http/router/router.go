// Package router 组装Gin引擎
//
// 订单接口不在这里逐个注册：路由表由 apporder.Routes 提供，
// 新增一个查询方案只需要在路由表里加一行
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// Handlers 全部HTTP处理器
type Handlers struct {
	Order  *handler.OrderHandler
	Member *handler.MemberHandler
	Auth   *handler.AuthHandler
}

// New 创建并配置Gin引擎
// 中间件顺序：Logger → Metrics → Recovery，panic转换成500之后仍然会被记录日志和指标
func New(
	cfg *config.Config,
	m *metrics.Metrics,
	authMiddleware *middleware.AuthMiddleware,
	h Handlers,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(), middleware.Metrics(m), middleware.Recovery())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	if cfg.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 订单查询（公开接口）
	for _, route := range h.Order.Routes() {
		r.GET(route.Path, h.Order.Query(route))
	}

	requireAuth := authMiddleware.RequireAuth()

	// 会员：查询公开，写接口需要管理员Token
	r.GET("/api/v1/members", h.Member.ListV1)
	r.GET("/api/v2/members", h.Member.ListV2)
	r.POST("/api/v1/members", requireAuth, h.Member.CreateV1)
	r.POST("/api/v2/members", requireAuth, h.Member.CreateV2)
	r.PUT("/api/v2/members/:id", requireAuth, h.Member.Update)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/token", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", requireAuth, h.Auth.Logout)
	}

	return r
}
