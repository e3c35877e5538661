package repository

import (
	"context"
	"errors"

	"shopcart/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// username の一意制約違反
var ErrDuplicateUsername = errors.New("username already exists")

// 保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。CartIDは先に作ったカートを指すこと
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する（カート込み）。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	// usernameからユーザーを1件取得する（カート込み）。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
