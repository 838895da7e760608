package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/xiebiao/bookshop/docs" // Swagger文档
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/pkg/logger"
	"github.com/xiebiao/bookshop/pkg/tracing"
)

// @title           Bookshop API
// @version         1.0
// @description     订单查询的N+1问题与各种优化方案对比
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 日志与链路追踪
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Options{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		slog.Error("初始化链路追踪失败", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(ctx, cfg); err != nil {
		slog.Error("服务异常退出", slog.Any("error", err))
		_ = shutdownTracing(context.Background())
		os.Exit(1)
	}
	_ = shutdownTracing(context.Background())
}

// run 组装依赖、启动HTTP和gRPC服务，收到信号后优雅关闭
func run(ctx context.Context, cfg *config.Config) error {
	// 3. 依赖注入（wire_gen.go）
	app, cleanup, err := InitializeApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	defer cleanup()

	runSeeder(ctx, cfg, app.Seeder)

	// 4. HTTP服务
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	errCh := make(chan error, 2)
	go func() {
		slog.Info("HTTP服务已启动",
			slog.String("addr", srv.Addr),
			slog.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 5. gRPC健康检查（grpc_port为0时不启动）
	if cfg.Server.GRPCPort > 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
		if err != nil {
			return fmt.Errorf("监听gRPC端口失败: %w", err)
		}
		go app.Health.Watch(ctx)
		go func() {
			if err := app.Health.Serve(lis); err != nil {
				errCh <- err
			}
		}()
		defer app.Health.GracefulStop()
	}

	// 6. 优雅关闭
	select {
	case <-ctx.Done():
		slog.Info("收到关闭信号，开始优雅关闭")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP服务关闭失败: %w", err)
	}
	slog.Info("服务已安全关闭")
	return nil
}
