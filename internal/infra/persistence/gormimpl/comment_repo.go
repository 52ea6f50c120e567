/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-04 15:49:11
 * @LastEditTime: 2026-05-18 11:34:46
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

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepo 是基于 GORM 的 CommentRepository 实现的构造函数。
func NewCommentRepo(db *gorm.DB) repository.CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepo) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) List(ctx context.Context, p repository.Pagination) ([]*model.Comment, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepo) ListByArticle(ctx context.Context, articleID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepo) ListByUser(ctx context.Context, userID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepo) UpdateOwned(ctx context.Context, id, userID uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *commentRepo) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Comment{})
	return res.RowsAffected, res.Error
}
