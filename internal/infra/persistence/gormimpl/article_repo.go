/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-04 15:36:40
 * @LastEditTime: 2026-05-18 11:31:27
 * @LastEditors: 墨见寻
 */
package gormimpl

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/domain/repository"
)

type articleRepo struct {
	db *gorm.DB
}

// NewArticleRepo 是基于 GORM 的 ArticleRepository 实现的构造函数。
func NewArticleRepo(db *gorm.DB) repository.ArticleRepository {
	return &articleRepo{db: db}
}

func (r *articleRepo) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepo) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	var article model.Article
	err := r.db.WithContext(ctx).First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List 返回分页窗口内的文章与总数。
// sort=category 按关联分类名升序，sort=author 按提交者用户名升序，
// 其余情况按主键升序。
func (r *articleRepo) List(ctx context.Context, p repository.Pagination, sort repository.ArticleSort) ([]*model.Article, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Article{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Model(&model.Article{}).Select("articles.*")
	switch sort {
	case repository.ArticleSortCategory:
		query = query.
			Joins("JOIN categories ON categories.id = articles.category_id").
			Order("categories.name ASC, articles.id ASC")
	case repository.ArticleSortAuthor:
		query = query.
			Joins("JOIN users ON users.id = articles.user_id").
			Order("users.username ASC, articles.id ASC")
	default:
		query = query.Order("articles.id ASC")
	}

	var articles []*model.Article
	err := query.Limit(p.Limit).Offset(p.Offset()).Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepo) ListByUser(ctx context.Context, userID uint) ([]*model.Article, error) {
	var articles []*model.Article
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepo) ListByCategory(ctx context.Context, categoryID uint) ([]*model.Article, error) {
	var articles []*model.Article
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&articles).Error
	return articles, err
}

// UpdateOwned 的所有权条件折叠在同一条 UPDATE 的 WHERE 中，
// 行不存在与非所有者在这里同样表现为 0 行受影响。
func (r *articleRepo) UpdateOwned(ctx context.Context, id, userID uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Article{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *articleRepo) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Article{})
	return res.RowsAffected, res.Error
}
