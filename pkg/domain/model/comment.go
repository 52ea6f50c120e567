/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 10:15:46
 * @LastEditTime: 2026-04-25 11:33:12
 * @LastEditors: 墨见寻
 */
package model

import "time"

// --- 核心领域对象 (Domain Object) ---

// Comment 是评论的核心领域模型。
// UserID 在创建时由认证身份写入，此后不可变更；
// 文章或用户被删除时由数据库级联删除评论。
type Comment struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Content   string  `gorm:"size:500;not null"`
	ArticleID uint    `gorm:"not null;index"`
	Article   Article `gorm:"foreignKey:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserID    uint    `gorm:"not null;index"`
	User      User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// --- API 数据传输对象 (Data Transfer Objects) ---

// CreateCommentRequest 定义了创建评论的请求体
type CreateCommentRequest struct {
	Content   string `json:"content" binding:"required,min=1,max=500"`
	ArticleID uint   `json:"article_id" binding:"required"`
}

// UpdateCommentRequest 定义了全量更新评论的请求体 (PUT)
type UpdateCommentRequest struct {
	Content   string `json:"content" binding:"required,min=1,max=500"`
	ArticleID uint   `json:"article_id" binding:"required"`
}

// PatchCommentRequest 定义了部分更新评论的请求体 (PATCH)
type PatchCommentRequest struct {
	Content   *string `json:"content" binding:"omitempty,min=1,max=500"`
	ArticleID *uint   `json:"article_id" binding:"omitempty,gt=0"`
}

// CommentResponse 定义了评论的标准 API 响应结构
type CommentResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Content   string    `json:"content"`
	ArticleID uint      `json:"article_id"`
	UserID    uint      `json:"user_id"`
}

// NewCommentResponse 将领域模型转换为用于 API 响应的 DTO。
func NewCommentResponse(cm *Comment) *CommentResponse {
	if cm == nil {
		return nil
	}
	return &CommentResponse{
		ID:        cm.ID,
		CreatedAt: cm.CreatedAt,
		UpdatedAt: cm.UpdatedAt,
		Content:   cm.Content,
		ArticleID: cm.ArticleID,
		UserID:    cm.UserID,
	}
}

// NewCommentResponses 批量转换评论列表。
func NewCommentResponses(comments []*Comment) []*CommentResponse {
	responses := make([]*CommentResponse, len(comments))
	for i, cm := range comments {
		responses[i] = NewCommentResponse(cm)
	}
	return responses
}
