package validator

import (
	"strings"

	auth "shopcart/internal/usecase/auth_usecase"
)

// パスワードは6文字以上
const minPasswordLength = 6

type userValidator struct{}

// Usecaseは interface を依存注入
func NewUserValidator() auth.RegisterValidator {
	return &userValidator{}
}

// サインアップの入力を検証
func (v *userValidator) ValidateRegister(username string, password string, confirmPassword string) error {
	// 必須チェック
	if strings.TrimSpace(username) == "" {
		return auth.ErrUsernameRequired
	}

	// パスワード最低文字数
	if !isPasswordValid(password) {
		return auth.ErrPasswordTooShort
	}

	// 確認用と一致（大文字小文字も区別）
	if password != confirmPassword {
		return auth.ErrPasswordMismatch
	}

	return nil
}

func isPasswordValid(password string) bool {
	return len([]rune(password)) >= minPasswordLength
}
