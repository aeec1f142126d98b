package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/rpires71/PK-BookingService/pkg/dbmetrics"
	"github.com/rpires71/PK-BookingService/pkg/txmanager"
)

// sqlDBBeginner адаптирует *sql.DB к интерфейсу txmanager.TxBeginner
type sqlDBBeginner struct {
	db *sql.DB
}

func (b *sqlDBBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager создает transaction manager поверх чистого *sql.DB,
// без обёртки метрик. Используется, когда метрики выключены в конфигурации.
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(&sqlDBBeginner{db: db})
}
