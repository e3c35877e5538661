package usecase

import (
	"context"
	"errors"
	"net/http"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"
)

// CartUsecase は /api/cart の業務ロジックです。
type CartUsecase struct {
	tx       repo.TransactionManager
	userRepo repo.UserRepository
	itemRepo repo.ItemRepository
	log      Logger
}

func NewCartUsecase(
	tx repo.TransactionManager,
	userRepo repo.UserRepository,
	itemRepo repo.ItemRepository,
	log Logger,
) *CartUsecase {
	return &CartUsecase{
		tx:       tx,
		userRepo: userRepo,
		itemRepo: itemRepo,
		log:      log,
	}
}

// 1リクエストで動かせる最大個数
const maxQuantity = 1000

// ModifyCartRequest 相当
type ModifyCartInput struct {
	Username string
	ItemID   int64
	Quantity int
}

// AddToCart は商品をquantity個カートの末尾に追加する。
func (u *CartUsecase) AddToCart(ctx context.Context, in ModifyCartInput) (model.Cart, error) {
	return u.modify(ctx, "AddToCart", in, func(cart *model.Cart, item model.Item) {
		cart.AddItem(item, in.Quantity)
	})
}

// RemoveFromCart は最大quantity個を外す（足りなければあるだけ）。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, in ModifyCartInput) (model.Cart, error) {
	return u.modify(ctx, "RemoveFromCart", in, func(cart *model.Cart, item model.Item) {
		cart.RemoveItem(item, in.Quantity)
	})
}

func (u *CartUsecase) modify(ctx context.Context, op string, in ModifyCartInput, apply func(cart *model.Cart, item model.Item)) (model.Cart, error) {
	if in.Quantity < 1 || in.Quantity > maxQuantity {
		return model.Cart{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//ユーザー
	user, err := u.userRepo.FindByUsername(ctx, in.Username)
	if errors.Is(err, repo.ErrUserNotFound) {
		u.log.Infof("CartUsecase::%s - user with name %s is not found", op, in.Username)
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Errorf("CartUsecase::%s - db error: %v", op, err)
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//商品
	item, err := u.itemRepo.FindByID(ctx, in.ItemID)
	if errors.Is(err, repo.ErrNotFound) {
		u.log.Infof("CartUsecase::%s - item with id %d is not found", op, in.ItemID)
		return model.Cart{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Errorf("CartUsecase::%s - db error: %v", op, err)
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var out model.Cart

	//カートは行ロックして読み直してから更新（同時更新で消えないように）
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByIDForUpdate(ctx, user.CartID)
		if err != nil {
			return err
		}

		apply(&cart, item)

		if err := r.Carts().Save(ctx, &cart); err != nil {
			return err
		}
		out = cart
		return nil
	})
	if err != nil {
		u.log.Errorf("CartUsecase::%s - failed to save cart %d: %v", op, user.CartID, err)
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Infof("CartUsecase::%s - user %s item %d quantity %d, cart total %s", op, in.Username, in.ItemID, in.Quantity, out.Total.StringFixed(2))
	return out, nil
}
