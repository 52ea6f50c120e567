/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 11:14:25
 * @LastEditTime: 2026-04-02 15:50:11
 * @LastEditors: 墨见寻
 */
package repository

import (
	"context"

	"github.com/mojianxun/newshub/pkg/domain/model"
)

// CategoryRepository 定义了文章分类的数据仓库接口。
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id uint) (*model.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, p Pagination) ([]*model.Category, int64, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	// Delete 不做级联：仍被文章引用时由数据库 RESTRICT 约束报错。
	Delete(ctx context.Context, id uint) (int64, error)
}
