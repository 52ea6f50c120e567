/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-05 15:04:26
 * @LastEditTime: 2026-05-21 10:30:55
 * @LastEditors: 墨见寻
 */
package article

import (
	"context"
	"fmt"

	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/domain/repository"
)

// ErrCategoryNotFound 表示文章引用的分类不存在。
var ErrCategoryNotFound = fmt.Errorf("%w: 引用的分类不存在", constant.ErrNotFound)

// Service 封装了文章的业务逻辑。
// 创建/更新时的分类存在性检查与写操作共享同一个事务，
// 所有权检查折叠在写语句的 WHERE 条件里。
type Service struct {
	repo        repository.ArticleRepository
	commentRepo repository.CommentRepository
	txManager   repository.TransactionManager
}

// NewService 是 Article Service 的构造函数。
func NewService(
	repo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
	txManager repository.TransactionManager,
) *Service {
	return &Service{repo: repo, commentRepo: commentRepo, txManager: txManager}
}

// List 处理分页获取文章的业务逻辑，支持按分类名/作者名排序。
func (s *Service) List(ctx context.Context, p repository.Pagination, sort repository.ArticleSort) ([]*model.ArticleResponse, int64, error) {
	articles, total, err := s.repo.List(ctx, p, sort)
	if err != nil {
		return nil, 0, fmt.Errorf("获取文章列表失败: %w", err)
	}
	return model.NewArticleResponses(articles), total, nil
}

// Get 按主键获取单篇文章。
func (s *Service) Get(ctx context.Context, id uint) (*model.ArticleResponse, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if article == nil {
		return nil, constant.ErrNotFound
	}
	return model.NewArticleResponse(article), nil
}

// Create 创建文章。提交者由认证身份写入，客户端提供的任何
// 所有者字段都不被信任；分类必须存在。
func (s *Service) Create(ctx context.Context, callerID uint, req *model.CreateArticleRequest) (*model.ArticleResponse, error) {
	article := &model.Article{
		Title:      req.Title,
		Body:       req.Body,
		CategoryID: req.CategoryID,
		UserID:     callerID,
	}

	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		exists, err := repos.Category.Exists(ctx, req.CategoryID)
		if err != nil {
			return fmt.Errorf("检查分类失败: %w", err)
		}
		if !exists {
			return ErrCategoryNotFound
		}
		return repos.Article.Create(ctx, article)
	})
	if err != nil {
		return nil, err
	}
	return model.NewArticleResponse(article), nil
}

// Update 全量更新文章。0 行受影响统一视为无权操作，
// 与"文章不存在"在协议层不可区分。
func (s *Service) Update(ctx context.Context, callerID, id uint, req *model.UpdateArticleRequest) (*model.ArticleResponse, error) {
	var updated *model.Article
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		exists, err := repos.Category.Exists(ctx, req.CategoryID)
		if err != nil {
			return fmt.Errorf("检查分类失败: %w", err)
		}
		if !exists {
			return ErrCategoryNotFound
		}

		fields := map[string]interface{}{
			"title":       req.Title,
			"body":        req.Body,
			"category_id": req.CategoryID,
		}
		rows, err := repos.Article.UpdateOwned(ctx, id, callerID, fields)
		if err != nil {
			return fmt.Errorf("更新文章失败: %w", err)
		}
		if rows == 0 {
			return constant.ErrForbidden
		}

		updated, err = repos.Article.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return model.NewArticleResponse(updated), nil
}

// Patch 部分更新文章。仅当 category_id 出现在请求体中时才重新校验引用。
func (s *Service) Patch(ctx context.Context, callerID, id uint, req *model.PatchArticleRequest) (*model.ArticleResponse, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Body != nil {
		fields["body"] = *req.Body
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if len(fields) == 0 {
		return nil, constant.ErrNothingToUpdate
	}

	var updated *model.Article
	err := s.txManager.Do(ctx, func(repos repository.Repositories) error {
		if req.CategoryID != nil {
			exists, err := repos.Category.Exists(ctx, *req.CategoryID)
			if err != nil {
				return fmt.Errorf("检查分类失败: %w", err)
			}
			if !exists {
				return ErrCategoryNotFound
			}
		}

		rows, err := repos.Article.UpdateOwned(ctx, id, callerID, fields)
		if err != nil {
			return fmt.Errorf("更新文章失败: %w", err)
		}
		if rows == 0 {
			return constant.ErrForbidden
		}

		updated, err = repos.Article.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return model.NewArticleResponse(updated), nil
}

// Delete 删除文章，所有权条件与删除语句原子执行，评论级联删除。
func (s *Service) Delete(ctx context.Context, callerID, id uint) error {
	rows, err := s.repo.DeleteOwned(ctx, id, callerID)
	if err != nil {
		return fmt.Errorf("删除文章失败: %w", err)
	}
	if rows == 0 {
		return constant.ErrForbidden
	}
	return nil
}

// ListComments 返回文章下的全部评论（嵌套列表不分页）。
func (s *Service) ListComments(ctx context.Context, articleID uint) ([]*model.CommentResponse, error) {
	exists, err := s.repo.Exists(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("查询文章失败: %w", err)
	}
	if !exists {
		return nil, constant.ErrNotFound
	}
	comments, err := s.commentRepo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("获取文章评论失败: %w", err)
	}
	return model.NewCommentResponses(comments), nil
}
