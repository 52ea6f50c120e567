/*
 * @Description: 密码哈希
 * @Author: 墨见寻
 * @Date: 2026-03-02 10:31:08
 * @LastEditTime: 2026-03-02 10:31:08
 * @LastEditors: 墨见寻
 */
package security

import "golang.org/x/crypto/bcrypt"

// HashPassword 对密码进行哈希处理
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash 验证密码哈希
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
