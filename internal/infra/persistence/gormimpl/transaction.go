/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-04 16:05:28
 * @LastEditTime: 2026-04-09 09:58:14
 * @LastEditors: 墨见寻
 */
package gormimpl

import (
	"context"

	"gorm.io/gorm"

	"github.com/mojianxun/newshub/pkg/domain/repository"
)

// gormTransactionManager 是基于 GORM 的事务管理器实现。
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager 是 gormTransactionManager 的构造函数。
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Do 实现了 TransactionManager 接口。
// 它开启一个 GORM 事务，并把所有仓储包裹在这个事务中交给 fn；
// fn 返回错误时整个事务回滚。
func (tm *gormTransactionManager) Do(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := repository.Repositories{
			User:     NewUserRepo(tx),
			Category: NewCategoryRepo(tx),
			Article:  NewArticleRepo(tx),
			Comment:  NewCommentRepo(tx),
		}
		return fn(repos)
	})
}
