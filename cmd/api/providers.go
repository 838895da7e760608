package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/application/seed"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/interface/rpc"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// App 组装好的应用
type App struct {
	Engine *gin.Engine
	Health *rpc.Server
	Seeder *seed.DemoSeeder
}

// ========================================
// Custom Providers (自定义Provider)
// ========================================
// 教学说明：
// 构造函数的参数不能直接由Wire推导（需要从Config中取字段、需要cleanup）时，
// 手写一个Provider包一层

// provideMetrics 指标注册到默认Registry，/metrics 端点直接暴露
func provideMetrics() *metrics.Metrics {
	return metrics.NewDefault()
}

// provideDB 创建数据库连接，cleanup时关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := rdb.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideRedis 创建Redis客户端
func provideRedis(ctx context.Context, cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

// provideJWTManager 从配置创建JWT管理器
// 教学要点：jwt.NewManager只需要JWT相关的配置，Wire无法自动从Config中提取
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSelector 用路由表创建查询分发器
func provideSelector(q *apporder.Queries, m *metrics.Metrics) (*apporder.Selector, error) {
	return apporder.NewSelector(apporder.Routes(q), m)
}

// provideHealthServer gRPC健康检查跟随数据库连通性
func provideHealthServer(db *gorm.DB) (*rpc.Server, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return rpc.NewServer(sqlDB, 10*time.Second), nil
}

// runSeeder 按配置写入演示数据，失败只记录日志
func runSeeder(ctx context.Context, cfg *config.Config, s *seed.DemoSeeder) {
	if !cfg.Database.SeedDemoData {
		return
	}
	if err := s.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "写入演示数据失败", slog.Any("error", err))
	}
}
