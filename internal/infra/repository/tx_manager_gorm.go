package repository

import (
	"context"

	repo "shopcart/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users  repo.UserRepository
	carts  repo.CartRepository
	items  repo.ItemRepository
	orders repo.OrderRepository
}

func (r *txReposGorm) Users() repo.UserRepository   { return r.users }
func (r *txReposGorm) Carts() repo.CartRepository   { return r.carts }
func (r *txReposGorm) Items() repo.ItemRepository   { return r.items }
func (r *txReposGorm) Orders() repo.OrderRepository { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:  NewUserGormRepository(tx),
			carts:  NewCartGormRepository(tx),
			items:  NewItemGormRepository(tx),
			orders: NewOrderGormRepository(tx),
		}
		return fn(r)
	})
}
