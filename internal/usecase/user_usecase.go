package usecase

import (
	"context"
	"errors"
	"net/http"

	"shopcart/internal/domain/model"
	repo "shopcart/internal/repository"
)

// echo.Logger（gommon/log）の必要な部分だけ
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// ユーザーの参照だけ。登録はauth_usecase
type UserUsecase struct {
	userRepo repo.UserRepository
	log      Logger
}

func NewUserUsecase(userRepo repo.UserRepository, log Logger) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, log: log}
}

func (u *UserUsecase) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrUserNotFound) {
		u.log.Infof("UserUsecase::FindByID - user with id %d is not found", userID)
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Errorf("UserUsecase::FindByID - db error: %v", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Infof("UserUsecase::FindByID - get user success with id %d - username %s", userID, user.Username)
	return user, nil
}

func (u *UserUsecase) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := u.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repo.ErrUserNotFound) {
		u.log.Infof("UserUsecase::FindByUsername - user with name %s is not found", username)
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		u.log.Errorf("UserUsecase::FindByUsername - db error: %v", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.log.Infof("UserUsecase::FindByUsername - get user success with username %s", username)
	return user, nil
}
