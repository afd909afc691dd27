package validator

import (
	"context"
	"errors"
	"strings"

	"quickstore/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)

	// 必須チェック
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	if len(username) > 50 {
		return ErrInvalidInput
	}

	return nil
}

// パスワード変更の入力を検証
func (v *authValidator) ValidateChangePassword(ctx context.Context, oldPassword string, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return ErrInvalidInput
	}

	// パスワード最低文字数（MVP: 8）
	if len(newPassword) < 8 {
		return ErrInvalidInput
	}

	return nil
}
