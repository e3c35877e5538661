package repository

import (
	"context"

	"shopcart/internal/domain/model"
)

type OrderRepository interface {
	// 注文と明細をまとめて保存。IDとCreatedAtが埋まる
	Create(ctx context.Context, order *model.UserOrder) error
	FindByID(ctx context.Context, orderID int64) (model.UserOrder, error)
	// 作成順（古い順）
	ListByUserID(ctx context.Context, userID int64) ([]model.UserOrder, error)
}
