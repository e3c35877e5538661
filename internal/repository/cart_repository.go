package repository

import (
	"context"

	"shopcart/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, cart *model.Cart) error
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
	// 行ロック付き。トランザクション内で使う
	FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error)
	// 合計と並びを丸ごと保存し直す
	Save(ctx context.Context, cart *model.Cart) error
	// 作成後にユーザーを紐付ける
	AttachUser(ctx context.Context, cartID int64, userID int64) error
}
