/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-04 15:18:22
 * @LastEditTime: 2026-05-18 11:24:51
 * @LastEditors: 墨见寻
 */
package gormimpl

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/domain/repository"
)

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo 是基于 GORM 的 CategoryRepository 实现的构造函数。
func NewCategoryRepo(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *categoryRepo) List(ctx context.Context, p repository.Pagination) ([]*model.Category, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []*model.Category
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

// Delete 依赖数据库 RESTRICT 约束：分类仍被文章引用时删除失败。
func (r *categoryRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return 0, constant.ErrCategoryInUse
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// isForeignKeyViolation 识别三种受支持驱动的外键约束错误。
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || // sqlite
		strings.Contains(msg, "a foreign key constraint fails") || // mysql 1451
		strings.Contains(msg, "violates foreign key constraint") // postgres 23503
}
