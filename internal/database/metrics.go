package database

import (
	"errors"
	"time"

	"blogapp/internal/observability"

	"gorm.io/gorm"
)

const queryStartKey = "metrics:query_start"

// RegisterMetrics installs GORM callbacks that record query latency per operation and table.
func RegisterMetrics(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("metrics:before_create", startTimer),
		cb.Create().After("gorm:create").Register("metrics:after_create", observe("create")),
		cb.Query().Before("gorm:query").Register("metrics:before_query", startTimer),
		cb.Query().After("gorm:query").Register("metrics:after_query", observe("query")),
		cb.Update().Before("gorm:update").Register("metrics:before_update", startTimer),
		cb.Update().After("gorm:update").Register("metrics:after_update", observe("update")),
		cb.Delete().Before("gorm:delete").Register("metrics:before_delete", startTimer),
		cb.Delete().After("gorm:delete").Register("metrics:after_delete", observe("delete")),
		cb.Row().Before("gorm:row").Register("metrics:before_row", startTimer),
		cb.Row().After("gorm:row").Register("metrics:after_row", observe("row")),
		cb.Raw().Before("gorm:raw").Register("metrics:before_raw", startTimer),
		cb.Raw().After("gorm:raw").Register("metrics:after_raw", observe("raw")),
	)
}

func startTimer(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func observe(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		start, ok := v.(time.Time)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		observability.ObserveQuery(operation, table, start)
	}
}
