/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 09:48:27
 * @LastEditTime: 2026-04-25 11:31:50
 * @LastEditors: 墨见寻
 */
package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// Category 是文章分类的核心领域模型。
// 分类没有所有者，任何已认证用户都可以修改或删除；
// 仍被文章引用的分类由数据库 RESTRICT 约束拒绝删除。
type Category struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:500;not null"`
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// CreateCategoryRequest 定义了创建分类的请求体
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// UpdateCategoryRequest 定义了全量更新分类的请求体 (PUT)
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// PatchCategoryRequest 定义了部分更新分类的请求体 (PATCH)
type PatchCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
}

// CategoryResponse 定义了分类的标准 API 响应结构
type CategoryResponse struct {
	ID          uint      `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// NewCategoryResponse 将领域模型转换为用于 API 响应的 DTO。
func NewCategoryResponse(c *Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Name:        c.Name,
		Description: c.Description,
	}
}
