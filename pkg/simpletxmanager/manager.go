package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-PropertyService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PropertyService/pkg/txmanager"
)

// beginner адаптирует *sql.DB к txmanager.TxBeginner
type beginner struct {
	db *sql.DB
}

func (b beginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTransactionManager менеджер транзакций поверх *sql.DB без метрик
func NewTransactionManager(db *sql.DB, opts ...txmanager.Option) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(beginner{db: db}, opts...)
}
