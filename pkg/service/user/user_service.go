/*
 * @Description:
 * @Author: 墨见寻
 * @Date: 2026-03-05 11:08:33
 * @LastEditTime: 2026-05-21 09:40:18
 * @LastEditors: 墨见寻
 */
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
	"github.com/mojianxun/newshub/pkg/domain/repository"
)

// UserService 定义了用户相关的业务逻辑接口。
// 用户行自身的主键就是所有权键，因此更新/删除在写之前
// 用显式的身份比较做守卫，而不是把条件折叠进 WHERE。
type UserService interface {
	List(ctx context.Context, p repository.Pagination) ([]*model.UserResponse, int64, error)
	Get(ctx context.Context, id uint) (*model.UserResponse, error)
	Update(ctx context.Context, callerID, targetID uint, req *model.UpdateUserRequest) (*model.UserResponse, error)
	Patch(ctx context.Context, callerID, targetID uint, req *model.PatchUserRequest) (*model.UserResponse, error)
	Delete(ctx context.Context, callerID, targetID uint) error
	ListArticles(ctx context.Context, userID uint) ([]*model.ArticleResponse, error)
	ListComments(ctx context.Context, userID uint) ([]*model.CommentResponse, error)
}

// userService 是 UserService 接口的实现
type userService struct {
	userRepo    repository.UserRepository
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
}

// NewUserService 是 userService 的构造函数
func NewUserService(
	userRepo repository.UserRepository,
	articleRepo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
	}
}

func (s *userService) List(ctx context.Context, p repository.Pagination) ([]*model.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("获取用户列表失败: %w", err)
	}
	responses := make([]*model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = model.NewUserResponse(u)
	}
	return responses, total, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("获取用户信息时数据库出错: %w", err)
	}
	if user == nil {
		return nil, constant.ErrNotFound
	}
	return model.NewUserResponse(user), nil
}

// Update 全量更新用户资料。身份守卫在任何写操作之前。
func (s *userService) Update(ctx context.Context, callerID, targetID uint, req *model.UpdateUserRequest) (*model.UserResponse, error) {
	if callerID != targetID {
		return nil, constant.ErrForbidden
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.checkIdentifiersFree(ctx, callerID, &req.Username, &email); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"username": req.Username,
		"email":    email,
	}
	if _, err := s.userRepo.Update(ctx, targetID, fields); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}
	return s.Get(ctx, targetID)
}

// Patch 部分更新用户资料，只更新请求体中出现的字段。
func (s *userService) Patch(ctx context.Context, callerID, targetID uint, req *model.PatchUserRequest) (*model.UserResponse, error) {
	if callerID != targetID {
		return nil, constant.ErrForbidden
	}

	fields := map[string]interface{}{}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	var email string
	if req.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
		fields["email"] = email
	}
	if len(fields) == 0 {
		return nil, constant.ErrNothingToUpdate
	}

	var emailPtr *string
	if req.Email != nil {
		emailPtr = &email
	}
	if err := s.checkIdentifiersFree(ctx, callerID, req.Username, emailPtr); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.Update(ctx, targetID, fields); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}
	return s.Get(ctx, targetID)
}

// Delete 删除用户本人，文章与评论由数据库级联删除。
func (s *userService) Delete(ctx context.Context, callerID, targetID uint) error {
	if callerID != targetID {
		return constant.ErrForbidden
	}
	if _, err := s.userRepo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("删除用户失败: %w", err)
	}
	return nil
}

// ListArticles 返回指定用户提交的全部文章（嵌套列表不分页）。
func (s *userService) ListArticles(ctx context.Context, userID uint) ([]*model.ArticleResponse, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	articles, err := s.articleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取用户文章失败: %w", err)
	}
	return model.NewArticleResponses(articles), nil
}

// ListComments 返回指定用户发表的全部评论（嵌套列表不分页）。
func (s *userService) ListComments(ctx context.Context, userID uint) ([]*model.CommentResponse, error) {
	if err := s.mustExist(ctx, userID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取用户评论失败: %w", err)
	}
	return model.NewCommentResponses(comments), nil
}

func (s *userService) mustExist(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil {
		return constant.ErrNotFound
	}
	return nil
}

// checkIdentifiersFree 确保改名/改邮箱不会撞上其他用户的唯一键。
func (s *userService) checkIdentifiersFree(ctx context.Context, selfID uint, username, email *string) error {
	self, err := s.userRepo.FindByID(ctx, selfID)
	if err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if self == nil {
		return constant.ErrNotFound
	}

	if username != nil && *username != self.Username {
		taken, err := s.userRepo.ExistsByUsername(ctx, *username)
		if err != nil {
			return fmt.Errorf("检查用户名占用失败: %w", err)
		}
		if taken {
			return constant.ErrUsernameTaken
		}
	}
	if email != nil && *email != self.Email {
		taken, err := s.userRepo.ExistsByEmail(ctx, *email)
		if err != nil {
			return fmt.Errorf("检查邮箱占用失败: %w", err)
		}
		if taken {
			return constant.ErrEmailTaken
		}
	}
	return nil
}
