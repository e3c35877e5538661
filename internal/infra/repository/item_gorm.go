package repository

import (
	"context"
	"errors"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

// 全件をID順で返す
func (r *ItemGormRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return []model.Item{}, err
	}
	return items, nil
}

// IDで商品を取得
func (r *ItemGormRepository) FindByID(ctx context.Context, id int64) (model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).First(&it, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// 名前の完全一致（同名は複数返る）
func (r *ItemGormRepository) FindByName(ctx context.Context, name string) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Item{}, err
	}
	return items, nil
}

// 商品の作成
func (r *ItemGormRepository) Create(ctx context.Context, it model.Item) (model.Item, error) {
	if err := r.db.WithContext(ctx).Create(&it).Error; err != nil {
		return model.Item{}, err
	}
	return it, nil
}

func (r *ItemGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
