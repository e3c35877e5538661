package repository

import (
	"context"
	"errors"

	"shopcart/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品カタログの保存・取得だけを約束。
type ItemRepository interface {
	// 全件（ID順）
	List(ctx context.Context) ([]model.Item, error)
	// IDで1件。無ければErrNotFound
	FindByID(ctx context.Context, id int64) (model.Item, error)
	// 名前の完全一致。0件でもエラーにしない
	FindByName(ctx context.Context, name string) ([]model.Item, error)

	// 初期データ投入用
	Create(ctx context.Context, item model.Item) (model.Item, error)
	Count(ctx context.Context) (int64, error)
}
