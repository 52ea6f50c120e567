/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 11:18:52
 * @LastEditTime: 2026-05-14 10:30:45
 * @LastEditors: 墨见寻
 */
package repository

import (
	"context"

	"github.com/mojianxun/newshub/pkg/domain/model"
)

// ArticleRepository 定义了文章的数据仓库接口。
// UpdateOwned / DeleteOwned 将所有权条件折叠进同一条写语句的 WHERE 中，
// 由数据库原子地完成"条件+效果"，避免先查后写的竞态。
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id uint) (*model.Article, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, p Pagination, sort ArticleSort) ([]*model.Article, int64, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Article, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]*model.Article, error)
	// UpdateOwned 仅当 id 与 userID 同时匹配时更新，返回受影响行数。
	UpdateOwned(ctx context.Context, id, userID uint, fields map[string]interface{}) (int64, error)
	// DeleteOwned 仅当 id 与 userID 同时匹配时删除，返回受影响行数。
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
}
