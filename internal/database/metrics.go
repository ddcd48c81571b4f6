package database

import (
	"errors"
	"time"

	"nhaf/internal/observability"

	"gorm.io/gorm"
)

const queryStartKey = "nhaf:query_start"

// registerQueryMetrics times every GORM operation into
// nhaf_database_query_latency_seconds, labelled by operation and table.
func registerQueryMetrics(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register("metrics:before_create", startQueryTimer),
		cb.Create().After("gorm:create").Register("metrics:after_create", observeAs("create")),
		cb.Query().Before("gorm:query").Register("metrics:before_query", startQueryTimer),
		cb.Query().After("gorm:query").Register("metrics:after_query", observeAs("query")),
		cb.Update().Before("gorm:update").Register("metrics:before_update", startQueryTimer),
		cb.Update().After("gorm:update").Register("metrics:after_update", observeAs("update")),
		cb.Delete().Before("gorm:delete").Register("metrics:before_delete", startQueryTimer),
		cb.Delete().After("gorm:delete").Register("metrics:after_delete", observeAs("delete")),
		cb.Row().Before("gorm:row").Register("metrics:before_row", startQueryTimer),
		cb.Row().After("gorm:row").Register("metrics:after_row", observeAs("row")),
		cb.Raw().Before("gorm:raw").Register("metrics:before_raw", startQueryTimer),
		cb.Raw().After("gorm:raw").Register("metrics:after_raw", observeAs("raw")),
	)
}

func observeAs(operation string) func(*gorm.DB) {
	return func(tx *gorm.DB) { observeQuery(tx, operation) }
}

func startQueryTimer(tx *gorm.DB) {
	tx.InstanceSet(queryStartKey, time.Now())
}

func observeQuery(tx *gorm.DB, operation string) {
	v, ok := tx.InstanceGet(queryStartKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	table := tx.Statement.Table
	if table == "" {
		table = "unknown"
	}
	observability.ObserveQuery(operation, table, start)
}
