//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码（wire_gen.go）
// 3. 修改Provider之后运行 `wire gen ./cmd/api` 重新生成
//
// 核心概念：
// - Provider: 提供依赖的构造函数（如 rdb.NewOrderRepository）
// - Injector: 声明最终要构造的目标类型（*App）
// - wire.Bind: 接口 → 实现（如 member.EventPublisher → *messaging.EventPublisher）
package main

import (
	"context"

	"github.com/google/wire"

	appauth "github.com/xiebiao/bookshop/internal/application/auth"
	appmember "github.com/xiebiao/bookshop/internal/application/member"
	apporder "github.com/xiebiao/bookshop/internal/application/order"
	"github.com/xiebiao/bookshop/internal/application/seed"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/messaging"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/internal/interface/http/router"
)

// infrastructureSet 基础设施：数据库、Redis、消息队列、指标
var infrastructureSet = wire.NewSet(
	provideMetrics,
	provideDB,
	rdb.NewSQLX,
	provideRedis,
	messaging.Open,
	wire.Bind(new(member.EventPublisher), new(*messaging.EventPublisher)),
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	rdb.NewMemberRepository,
	rdb.NewItemRepository,
	rdb.NewOrderRepository,
	rdb.NewOrderQueryRepository,
	rdb.NewTxManager,
	wire.Bind(new(seed.Transactor), new(*rdb.TxManager)),
	redis.NewTokenStore,
	wire.Bind(new(appauth.TokenStore), new(*redis.TokenStore)),
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	member.NewService,
)

// applicationSet 应用层用例和查询方案
var applicationSet = wire.NewSet(
	apporder.NewLoader,
	apporder.NewQueries,
	provideSelector,
	appmember.NewJoinMemberUseCase,
	appmember.NewUpdateMemberUseCase,
	appmember.NewListMembersUseCase,
	appauth.NewCredentials,
	appauth.NewLoginUseCase,
	appauth.NewRefreshUseCase,
	appauth.NewLogoutUseCase,
	seed.NewDemoSeeder,
)

// middlewareSet JWT管理器、认证中间件
var middlewareSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器、路由、gRPC健康检查
var handlerSet = wire.NewSet(
	handler.NewOrderHandler,
	handler.NewMemberHandler,
	handler.NewAuthHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
	provideHealthServer,
)

// InitializeApp 初始化整个应用
// 返回的cleanup按创建的逆序关闭消息队列、Redis、数据库
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
