/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 09:20:14
 * @LastEditTime: 2026-05-12 17:45:02
 * @LastEditors: 墨见寻
 */
package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// User 是用户的核心领域模型。
// 删除用户时由数据库外键级联删除其文章与评论。
type User struct {
	ID           uint      `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// RegisterRequest 定义了注册请求的结构
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest 定义了登录请求的结构
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest 定义了全量更新用户的请求体 (PUT)
type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
}

// PatchUserRequest 定义了部分更新用户的请求体 (PATCH)
type PatchUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=2,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// UserResponse 定义了用户的标准 API 响应结构。
// 只暴露 ID、用户名和邮箱，密码哈希永远不会出现在任何响应中。
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse 定义了登录成功时返回给客户端的结构
type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

// NewUserResponse 将领域模型转换为用于 API 响应的 DTO。
func NewUserResponse(u *User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
