/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 11:21:30
 * @LastEditTime: 2026-05-14 10:31:12
 * @LastEditors: 墨见寻
 */
package repository

import (
	"context"

	"github.com/mojianxun/newshub/pkg/domain/model"
)

// CommentRepository 定义了评论的数据仓库接口。
// 所有权条件的处理方式与 ArticleRepository 相同。
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	List(ctx context.Context, p Pagination) ([]*model.Comment, int64, error)
	ListByArticle(ctx context.Context, articleID uint) ([]*model.Comment, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Comment, error)
	UpdateOwned(ctx context.Context, id, userID uint, fields map[string]interface{}) (int64, error)
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
}
