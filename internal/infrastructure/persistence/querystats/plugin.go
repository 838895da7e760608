package querystats

import (
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/pkg/tracing"
)

const spanKey = "querystats:span"

// Plugin GORM插件：查询计数 + SQL Span
//
// 只挂在 Query（Find/First/Count）和 Row（Rows/Scan）回调上，
// 写操作不计入，演示数据初始化不会干扰统计
type Plugin struct{}

// Name 实现gorm.Plugin
func (Plugin) Name() string {
	return "querystats"
}

// Initialize 实现gorm.Plugin
func (p Plugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").Register("querystats:before_query", before); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("querystats:after_query", after); err != nil {
		return err
	}
	if err := db.Callback().Row().Before("gorm:row").Register("querystats:before_row", before); err != nil {
		return err
	}
	return db.Callback().Row().After("gorm:row").Register("querystats:after_row", after)
}

func before(db *gorm.DB) {
	if db.Statement == nil || db.Statement.Context == nil {
		return
	}
	ctx, span := tracing.StartSpan(db.Statement.Context, "gorm.query",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.table", db.Statement.Table)),
	)
	db.Statement.Context = ctx
	db.InstanceSet(spanKey, span)
}

func after(db *gorm.DB) {
	if db.Statement == nil || db.Statement.Context == nil {
		return
	}
	Observe(db.Statement.Context)

	v, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span := v.(trace.Span)
	span.SetAttributes(
		attribute.String("db.statement", db.Statement.SQL.String()),
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	)
	if !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		tracing.RecordError(span, db.Error)
	}
	span.End()
}
