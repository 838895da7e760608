// Package rpc gRPC健康检查
//
// 教学要点：
// 1. 使用标准的 grpc.health.v1.Health 服务，k8s探针和grpcurl都能直接调用
// 2. 健康状态跟随数据库：定时Ping，失败时切到 NOT_SERVING
// 3. 注册反射服务，grpcurl 不需要proto文件
package rpc

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName 订单查询服务在健康检查中的名称
const ServiceName = "bookshop.OrderQuery"

// Pinger 数据库连通性检查（*sql.DB 满足此接口）
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Server gRPC服务器
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	db         Pinger
	interval   time.Duration
}

// NewServer 创建gRPC服务器并注册健康检查和反射服务
func NewServer(db Pinger, interval time.Duration) *Server {
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	// 第一次探测之前不对外提供服务
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{grpcServer: gs, health: hs, db: db, interval: interval}
}

// Check 探测一次数据库并更新健康状态
func (s *Server) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := s.db.PingContext(ctx); err != nil {
		slog.WarnContext(ctx, "数据库不可用", slog.Any("error", err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	return status
}

// Watch 定时探测，直到ctx取消
func (s *Server) Watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Serve 在listener上提供服务（阻塞）
func (s *Server) Serve(lis net.Listener) error {
	slog.Info("gRPC服务已启动", slog.String("addr", lis.Addr().String()))
	return s.grpcServer.Serve(lis)
}

// GracefulStop 停止接受新请求，等待现有请求完成
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
