package repository

import (
	"context"
	"errors"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートと並びを作成
func (r *CartGormRepository) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cart).Error; err != nil {
			return err
		}
		return insertCartItems(tx, cart.ID, cart.Items)
	})
}

// カートを取得（並び込み）
func (r *CartGormRepository) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	return r.find(ctx, cartID, false)
}

// SELECT ... FOR UPDATEで取得。同じカートへの同時更新はここで直列になる
func (r *CartGormRepository) FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error) {
	return r.find(ctx, cartID, true)
}

func (r *CartGormRepository) find(ctx context.Context, cartID int64, lock bool) (model.Cart, error) {
	q := r.db.WithContext(ctx)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var cart model.Cart
	err := q.Where("id = ?", cartID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}

	items, err := listCartItems(r.db.WithContext(ctx), cartID)
	if err != nil {
		return model.Cart{}, err
	}
	cart.Items = items
	return cart, nil
}

// 合計を更新し、並びは全削除して入れ直す
func (r *CartGormRepository) Save(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Cart{}).
			Where("id = ?", cart.ID).
			Update("total", cart.Total)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		return insertCartItems(tx, cart.ID, cart.Items)
	})
}

// carts.user_idを設定
func (r *CartGormRepository) AttachUser(ctx context.Context, cartID int64, userID int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ?", cartID).
		Update("user_id", userID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 並び順どおりに1行ずつ（IDが順番になる）
func insertCartItems(tx *gorm.DB, cartID int64, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		rows = append(rows, model.CartItem{CartID: cartID, ItemID: it.ID})
	}
	return tx.Create(&rows).Error
}

// cart_itemsをitemsとjoinして追加順に返す
func listCartItems(db *gorm.DB, cartID int64) ([]model.Item, error) {
	var items []model.Item
	err := db.Table("cart_items").
		Select("items.*").
		Joins("join items on items.id = cart_items.item_id").
		Where("cart_items.cart_id = ?", cartID).
		Order("cart_items.id asc").
		Scan(&items).Error
	if err != nil {
		return []model.Item{}, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
