/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-05 14:22:10
 * @LastEditTime: 2026-05-21 10:02:47
 * @LastEditors: 墨见寻
 */
package category

import (
	"context"
	"fmt"

	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/domain/repository"
)

// Service 封装了文章分类的业务逻辑。
// 分类没有所有者：任何已认证用户都可以修改或删除。
type Service struct {
	repo        repository.CategoryRepository
	articleRepo repository.ArticleRepository
}

// NewService 是 Category Service 的构造函数。
func NewService(repo repository.CategoryRepository, articleRepo repository.ArticleRepository) *Service {
	return &Service{repo: repo, articleRepo: articleRepo}
}

// Create 处理创建新分类的业务逻辑。
func (s *Service) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.CategoryResponse, error) {
	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}
	return model.NewCategoryResponse(category), nil
}

// List 处理分页获取分类的业务逻辑。
func (s *Service) List(ctx context.Context, p repository.Pagination) ([]*model.CategoryResponse, int64, error) {
	categories, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("获取分类列表失败: %w", err)
	}
	responses := make([]*model.CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = model.NewCategoryResponse(c)
	}
	return responses, total, nil
}

// Get 按主键获取单个分类。
func (s *Service) Get(ctx context.Context, id uint) (*model.CategoryResponse, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	if category == nil {
		return nil, constant.ErrNotFound
	}
	return model.NewCategoryResponse(category), nil
}

// Update 全量更新分类。分类无所有者，0 行受影响只可能是不存在。
func (s *Service) Update(ctx context.Context, id uint, req *model.UpdateCategoryRequest) (*model.CategoryResponse, error) {
	fields := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}
	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("更新分类失败: %w", err)
	}
	if rows == 0 {
		return nil, constant.ErrNotFound
	}
	return s.Get(ctx, id)
}

// Patch 部分更新分类，只更新请求体中出现的字段。
func (s *Service) Patch(ctx context.Context, id uint, req *model.PatchCategoryRequest) (*model.CategoryResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if len(fields) == 0 {
		return nil, constant.ErrNothingToUpdate
	}

	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("更新分类失败: %w", err)
	}
	if rows == 0 {
		return nil, constant.ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete 删除分类。仍被文章引用时由数据库约束拒绝（不做级联）。
func (s *Service) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return constant.ErrNotFound
	}
	return nil
}

// ListArticles 返回该分类下的全部文章（嵌套列表不分页）。
func (s *Service) ListArticles(ctx context.Context, categoryID uint) ([]*model.ArticleResponse, error) {
	exists, err := s.repo.Exists(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	if !exists {
		return nil, constant.ErrNotFound
	}
	articles, err := s.articleRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("获取分类下文章失败: %w", err)
	}
	return model.NewArticleResponses(articles), nil
}
