package repository

import (
	"context"
	"errors"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文と明細を1トランザクションで作成
func (r *OrderGormRepository) Create(ctx context.Context, order *model.UserOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(order.Items) == 0 {
			return nil
		}

		rows := make([]model.UserOrderItem, 0, len(order.Items))
		for _, it := range order.Items {
			rows = append(rows, model.UserOrderItem{UserOrderID: order.ID, ItemID: it.ID})
		}
		return tx.Create(&rows).Error
	})
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.UserOrder, error) {
	var o model.UserOrder
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UserOrder{}, repo.ErrNotFound
	}
	if err != nil {
		return model.UserOrder{}, err
	}

	items, err := r.listItems(ctx, o.ID)
	if err != nil {
		return model.UserOrder{}, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.UserOrder, error) {
	var orders []model.UserOrder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&orders).Error
	if err != nil {
		return []model.UserOrder{}, err
	}

	for i := range orders {
		items, err := r.listItems(ctx, orders[i].ID)
		if err != nil {
			return []model.UserOrder{}, err
		}
		orders[i].Items = items
	}

	if orders == nil {
		orders = []model.UserOrder{}
	}
	return orders, nil
}

// 注文時点の並び順で返す
func (r *OrderGormRepository) listItems(ctx context.Context, orderID int64) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Table("user_order_items").
		Select("items.*").
		Joins("join items on items.id = user_order_items.item_id").
		Where("user_order_items.user_order_id = ?", orderID).
		Order("user_order_items.id asc").
		Scan(&items).Error
	if err != nil {
		return []model.Item{}, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
