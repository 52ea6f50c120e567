/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 10:02:33
 * @LastEditTime: 2026-05-12 18:10:21
 * @LastEditors: 墨见寻
 */
package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// Article 是文章的核心领域模型。
// UserID 在创建时由认证身份写入，此后不可变更；
// CategoryID 必须指向已存在的分类。
type Article struct {
	ID         uint `gorm:"primarykey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Title      string   `gorm:"size:100;not null"`
	Body       string   `gorm:"size:5000;not null"`
	CategoryID uint     `gorm:"not null;index"`
	Category   Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	UserID     uint     `gorm:"not null;index"`
	User       User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// CreateArticleRequest 定义了创建文章的请求体。
// 提交者身份来自认证上下文，客户端无法指定。
type CreateArticleRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=100"`
	Body       string `json:"body" binding:"required,min=1,max=5000"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

// UpdateArticleRequest 定义了全量更新文章的请求体 (PUT)
type UpdateArticleRequest struct {
	Title      string `json:"title" binding:"required,min=1,max=100"`
	Body       string `json:"body" binding:"required,min=1,max=5000"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

// PatchArticleRequest 定义了部分更新文章的请求体 (PATCH)。
// 仅当 category_id 出现在请求体中时才会重新做引用存在性校验。
type PatchArticleRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=1,max=100"`
	Body       *string `json:"body" binding:"omitempty,min=1,max=5000"`
	CategoryID *uint   `json:"category_id" binding:"omitempty,gt=0"`
}

// ArticleResponse 定义了文章的标准 API 响应结构
type ArticleResponse struct {
	ID         uint      `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	CategoryID uint      `json:"category_id"`
	UserID     uint      `json:"user_id"`
}

// NewArticleResponse 将领域模型转换为用于 API 响应的 DTO。
func NewArticleResponse(a *Article) *ArticleResponse {
	if a == nil {
		return nil
	}
	return &ArticleResponse{
		ID:         a.ID,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		Title:      a.Title,
		Body:       a.Body,
		CategoryID: a.CategoryID,
		UserID:     a.UserID,
	}
}

// NewArticleResponses 批量转换文章列表。
func NewArticleResponses(articles []*Article) []*ArticleResponse {
	responses := make([]*ArticleResponse, len(articles))
	for i, a := range articles {
		responses[i] = NewArticleResponse(a)
	}
	return responses
}
