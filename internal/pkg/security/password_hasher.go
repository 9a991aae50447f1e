package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword 生成控制台口令的 bcrypt 哈希，结果写入配置的 admin.password_hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("口令不能为空")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("生成口令哈希失败: %w", err)
	}

	return string(hashedBytes), nil
}

// CheckPasswordHash 校验口令与配置中的哈希是否匹配
func CheckPasswordHash(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return errors.New("口令错误")
	}
	return err
}
