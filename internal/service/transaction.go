package service

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
)

// TransactionManager runs fn inside one database transaction carried by ctx.
// Repositories pick the transaction up through trmsqlx.DefaultCtxGetter.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TransactionManager = (*manager.Manager)(nil)
