package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 初期データ（itemsが空のときだけ入れる）
var defaultItems = []model.Item{
	{
		Name:        "Round Widget",
		Description: "A widget that is round",
		Price:       decimal.RequireFromString("2.99"),
	},
	{
		Name:        "Square Widget",
		Description: "A widget that is square",
		Price:       decimal.RequireFromString("1.99"),
	},
}

type ItemUsecase struct {
	itemRepo repo.ItemRepository
	log      Logger
}

// DI
func NewItemUsecase(itemRepo repo.ItemRepository, log Logger) *ItemUsecase {
	return &ItemUsecase{
		itemRepo: itemRepo,
		log:      log,
	}
}

func (u *ItemUsecase) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := u.itemRepo.List(ctx)
	if err != nil {
		u.log.Errorf("ItemUsecase::ListItems - db error: %v", err)
		return []model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ItemUsecase) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	if itemID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	it, err := u.itemRepo.FindByID(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		u.log.Infof("ItemUsecase::GetItem - item with id %d is not found", itemID)
		return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Errorf("ItemUsecase::GetItem - db error: %v", err)
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return it, nil
}

// 名前の完全一致。1件もなければ404
func (u *ItemUsecase) FindItemsByName(ctx context.Context, name string) ([]model.Item, error) {
	items, err := u.itemRepo.FindByName(ctx, name)
	if err != nil {
		u.log.Errorf("ItemUsecase::FindItemsByName - db error: %v", err)
		return []model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(items) == 0 {
		u.log.Infof("ItemUsecase::FindItemsByName - no item named %q", name)
		return []model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return items, nil
}

// SeedDefaults はitemsが空なら初期商品を入れる。入れた件数を返す
func (u *ItemUsecase) SeedDefaults(ctx context.Context) (int, error) {
	n, err := u.itemRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for _, it := range defaultItems {
		if _, err := u.itemRepo.Create(ctx, it); err != nil {
			return 0, err
		}
	}
	u.log.Infof("ItemUsecase::SeedDefaults - seeded %d items", len(defaultItems))
	return len(defaultItems), nil
}
