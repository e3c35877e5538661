package usecase

import (
	"context"
	"errors"
	"net/http"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"
)

type OrderUsecase struct {
	tx       repo.TransactionManager
	userRepo repo.UserRepository
	// 注文後にカートを空にするか
	clearCartOnSubmit bool
	log               Logger
}

func NewOrderUsecase(tx repo.TransactionManager, userRepo repo.UserRepository, clearCartOnSubmit bool, log Logger) *OrderUsecase {
	return &OrderUsecase{
		tx:                tx,
		userRepo:          userRepo,
		clearCartOnSubmit: clearCartOnSubmit,
		log:               log,
	}
}

// Submit は今のカートの中身から注文を作る。
// カートはclearCartOnSubmitがfalseならそのまま残る。
func (u *OrderUsecase) Submit(ctx context.Context, username string) (model.UserOrder, error) {
	user, err := u.findUser(ctx, "Submit", username)
	if err != nil {
		return model.UserOrder{}, err
	}

	var out model.UserOrder

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByIDForUpdate(ctx, user.CartID)
		if err != nil {
			return err
		}

		//スナップショット
		order := cart.Snapshot(user.ID)
		if err := r.Orders().Create(ctx, &order); err != nil {
			return err
		}

		if u.clearCartOnSubmit {
			cart.Clear()
			if err := r.Carts().Save(ctx, &cart); err != nil {
				return err
			}
		}

		out = order
		return nil
	})
	if err != nil {
		u.log.Errorf("OrderUsecase::Submit - failed to submit order for %s: %v", username, err)
		return model.UserOrder{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Infof("OrderUsecase::Submit - order %d submitted for %s with %d items", out.ID, username, len(out.Items))
	return out, nil
}

// History はユーザーの注文を古い順に返す。0件なら空のスライス
func (u *OrderUsecase) History(ctx context.Context, username string) ([]model.UserOrder, error) {
	user, err := u.findUser(ctx, "History", username)
	if err != nil {
		return []model.UserOrder{}, err
	}

	var orders []model.UserOrder

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		list, err := r.Orders().ListByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		orders = list
		return nil
	})
	if err != nil {
		u.log.Errorf("OrderUsecase::History - db error: %v", err)
		return []model.UserOrder{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if orders == nil {
		orders = []model.UserOrder{}
	}
	return orders, nil
}

func (u *OrderUsecase) findUser(ctx context.Context, op string, username string) (*model.User, error) {
	user, err := u.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repo.ErrUserNotFound) {
		u.log.Infof("OrderUsecase::%s - user with name %s is not found", op, username)
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Errorf("OrderUsecase::%s - db error: %v", op, err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}
