package auth

import (
	"context"
	"errors"

	"shopcart/internal/repository"
)

// echo.Logger（gommon/log）の必要な部分だけ
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// 認証フィルタに渡す最小限の本人情報
type Principal struct {
	Username     string
	PasswordHash string
	// 権限は今のところ無し（常に空）
	Authorities []string
}

// usernameから本人情報を引く
type UserDetailsService struct {
	users repository.UserRepository
	log   Logger
}

func NewUserDetailsService(users repository.UserRepository, log Logger) *UserDetailsService {
	return &UserDetailsService{users: users, log: log}
}

// LoadUserByUsername は見つからなければrepository.ErrUserNotFoundを返す。
func (s *UserDetailsService) LoadUserByUsername(ctx context.Context, username string) (Principal, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log.Warnf("UserDetailsService::LoadUserByUsername - user %s not found", username)
		}
		return Principal{}, err
	}

	return Principal{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Authorities:  []string{},
	}, nil
}
