/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-05 16:11:02
 * @LastEditTime: 2026-05-21 10:44:29
 * @LastEditors: 墨见寻
 */
package comment

import (
	"context"
	"fmt"

	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/domain/repository"
)

// ErrArticleNotFound 表示评论引用的文章不存在。
var ErrArticleNotFound = fmt.Errorf("%w: 引用的文章不存在", constant.ErrNotFound)

// Service 封装了评论的业务逻辑，结构与文章服务一致：
// 文章存在性检查与写操作共享事务，所有权折叠在写语句里。
type Service struct {
	repo      repository.CommentRepository
	txManager repository.TransactionManager
}

// NewService 是 Comment Service 的构造函数。
func NewService(repo repository.CommentRepository, txManager repository.TransactionManager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// List 处理分页获取评论的业务逻辑。
func (s *Service) List(ctx context.Context, p repository.Pagination) ([]*model.CommentResponse, int64, error) {
	comments, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("获取评论列表失败: %w", err)
	}
	return model.NewCommentResponses(comments), total, nil
}

// Get 按主键获取单条评论。
func (s *Service) Get(ctx context.Context, id uint) (*model.CommentResponse, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	if comment == nil {
		return nil, constant.ErrNotFound
	}
	return model.NewCommentResponse(comment), nil
}

// Create 创建评论。发表者由认证身份写入，文章必须存在。
func (s *Service) Create(ctx context.Context, callerID uint, req *model.CreateCommentRequest) (*model.CommentResponse, error) {
	comment := &model.Comment{
		Content:   req.Content,
		ArticleID: req.ArticleID,
		UserID:    callerID,
	}

	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		exists, err := repos.Article.Exists(ctx, req.ArticleID)
		if err != nil {
			return fmt.Errorf("检查文章失败: %w", err)
		}
		if !exists {
			return ErrArticleNotFound
		}
		return repos.Comment.Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}
	return model.NewCommentResponse(comment), nil
}

// Update 全量更新评论。
func (s *Service) Update(ctx context.Context, callerID, id uint, req *model.UpdateCommentRequest) (*model.CommentResponse, error) {
	var updated *model.Comment
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		exists, err := repos.Article.Exists(ctx, req.ArticleID)
		if err != nil {
			return fmt.Errorf("检查文章失败: %w", err)
		}
		if !exists {
			return ErrArticleNotFound
		}

		fields := map[string]interface{}{
			"content":    req.Content,
			"article_id": req.ArticleID,
		}
		rows, err := repos.Comment.UpdateOwned(ctx, id, callerID, fields)
		if err != nil {
			return fmt.Errorf("更新评论失败: %w", err)
		}
		if rows == 0 {
			return constant.ErrForbidden
		}

		updated, err = repos.Comment.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return model.NewCommentResponse(updated), nil
}

// Patch 部分更新评论。仅当 article_id 出现在请求体中时才重新校验引用。
func (s *Service) Patch(ctx context.Context, callerID, id uint, req *model.PatchCommentRequest) (*model.CommentResponse, error) {
	fields := map[string]interface{}{}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.ArticleID != nil {
		fields["article_id"] = *req.ArticleID
	}
	if len(fields) == 0 {
		return nil, constant.ErrNothingToUpdate
	}

	var updated *model.Comment
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if req.ArticleID != nil {
			exists, err := repos.Article.Exists(ctx, *req.ArticleID)
			if err != nil {
				return fmt.Errorf("检查文章失败: %w", err)
			}
			if !exists {
				return ErrArticleNotFound
			}
		}

		rows, err := repos.Comment.UpdateOwned(ctx, id, callerID, fields)
		if err != nil {
			return fmt.Errorf("更新评论失败: %w", err)
		}
		if rows == 0 {
			return constant.ErrForbidden
		}

		updated, err = repos.Comment.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return model.NewCommentResponse(updated), nil
}

// Delete 删除评论，所有权条件与删除语句原子执行。
func (s *Service) Delete(ctx context.Context, callerID, id uint) error {
	rows, err := s.repo.DeleteOwned(ctx, id, callerID)
	if err != nil {
		return fmt.Errorf("删除评论失败: %w", err)
	}
	if rows == 0 {
		return constant.ErrForbidden
	}
	return nil
}
