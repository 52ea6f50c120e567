/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-03 11:26:05
 * @LastEditTime: 2026-03-28 19:40:53
 * @LastEditors: 墨见寻
 */
package repository

import "context"

// Repositories 聚合了所有在单个事务中可能用到的仓储接口。
type Repositories struct {
	User     UserRepository
	Category CategoryRepository
	Article  ArticleRepository
	Comment  CommentRepository
}

// TransactionManager 定义了事务管理器的接口。
// 引用存在性检查与随后的写操作共享同一个事务边界，
// 被引用行在检查与写入之间被并发删除时整个操作回滚。
type TransactionManager interface {
	// Do 在一个事务中调用 fn，向其提供事务版本的全部仓储。
	// fn 返回错误则回滚，否则提交。
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
