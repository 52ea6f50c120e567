/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 11:10:40
 * @LastEditTime: 2026-05-14 10:22:08
 * @LastEditors: 墨见寻
 */
package repository

import (
	"context"

	"github.com/mojianxun/newshub/pkg/domain/model"
)

// UserRepository 定义了用户的数据仓库接口。
// Find 系列方法在记录不存在时返回 (nil, nil)。
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, p Pagination) ([]*model.User, int64, error)
	// Update 按字段集合更新指定用户，返回受影响行数。
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	// Delete 删除用户，其文章与评论由数据库级联删除。
	Delete(ctx context.Context, id uint) (int64, error)
}
