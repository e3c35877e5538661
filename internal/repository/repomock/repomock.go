// Package repomock はテスト用のrepositoryモック（testify/mock）。
package repomock

import (
	"context"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

type CartRepository struct{ mock.Mock }

func (m *CartRepository) Create(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *CartRepository) FindByID(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepository) FindByIDForUpdate(ctx context.Context, cartID int64) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepository) Save(ctx context.Context, cart *model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *CartRepository) AttachUser(ctx context.Context, cartID int64, userID int64) error {
	args := m.Called(ctx, cartID, userID)
	return args.Error(0)
}

type ItemRepository struct{ mock.Mock }

func (m *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *ItemRepository) FindByID(ctx context.Context, id int64) (model.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepository) FindByName(ctx context.Context, name string) ([]model.Item, error) {
	args := m.Called(ctx, name)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *ItemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.Item)
	return created, args.Error(1)
}

func (m *ItemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

type OrderRepository struct{ mock.Mock }

func (m *OrderRepository) Create(ctx context.Context, order *model.UserOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) FindByID(ctx context.Context, orderID int64) (model.UserOrder, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.UserOrder)
	return o, args.Error(1)
}

func (m *OrderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.UserOrder, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.UserOrder)
	return orders, args.Error(1)
}

// Repos はTxReposを満たす入れ物。
type Repos struct {
	UserRepo  *UserRepository
	CartRepo  *CartRepository
	ItemRepo  *ItemRepository
	OrderRepo *OrderRepository
}

// 全部新しいモックで作る
func NewRepos() *Repos {
	return &Repos{
		UserRepo:  new(UserRepository),
		CartRepo:  new(CartRepository),
		ItemRepo:  new(ItemRepository),
		OrderRepo: new(OrderRepository),
	}
}

func (r *Repos) Users() repo.UserRepository   { return r.UserRepo }
func (r *Repos) Carts() repo.CartRepository   { return r.CartRepo }
func (r *Repos) Items() repo.ItemRepository   { return r.ItemRepo }
func (r *Repos) Orders() repo.OrderRepository { return r.OrderRepo }

// TxManager はfnをそのまま呼ぶだけ（commit/rollbackはしない）。
// Callsで何回Txが開かれたか確認できる。
type TxManager struct {
	Repos *Repos
	Calls int
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Calls++
	return fn(m.Repos)
}
