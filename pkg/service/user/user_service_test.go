package user

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mojianxun/newshub/internal/infra/persistence/database"
	"github.com/mojianxun/newshub/internal/infra/persistence/gormimpl"
	"github.com/mojianxun/newshub/pkg/constant"
	"github.com/mojianxun/newshub/pkg/domain/model"
)

type testEnv struct {
	db  *gorm.DB
	svc UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	svc := NewUserService(
		gormimpl.NewUserRepo(db),
		gormimpl.NewArticleRepo(db),
		gormimpl.NewCommentRepo(db),
	)
	return &testEnv{db: db, svc: svc}
}

func (e *testEnv) createUser(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) createArticle(t *testing.T, userID uint) *model.Article {
	t.Helper()
	cat := &model.Category{Name: fmt.Sprintf("分类-%d", userID)}
	require.NoError(t, e.db.Create(cat).Error)
	a := &model.Article{Title: "标题", Body: "正文", CategoryID: cat.ID, UserID: userID}
	require.NoError(t, e.db.Create(a).Error)
	return a
}

func TestUserUpdateOwnershipGuard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	// bob 不能改 alice 的资料
	_, err := env.svc.Update(ctx, bob.ID, alice.ID, &model.UpdateUserRequest{
		Username: "hacked", Email: "hacked@example.com",
	})
	assert.ErrorIs(t, err, constant.ErrForbidden)

	// alice 的资料保持不变
	got, err := env.svc.Get(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestUserUpdateSelf(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	got, err := env.svc.Update(ctx, alice.ID, alice.ID, &model.UpdateUserRequest{
		Username: "alice2", Email: "Alice2@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", got.Username)
	assert.Equal(t, "alice2@example.com", got.Email)
}

func TestUserUpdateTakenUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	env.createUser(t, "bob")

	_, err := env.svc.Update(ctx, alice.ID, alice.ID, &model.UpdateUserRequest{
		Username: "bob", Email: alice.Email,
	})
	assert.ErrorIs(t, err, constant.ErrUsernameTaken)
}

func TestUserPatchNothingToUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	_, err := env.svc.Patch(ctx, alice.ID, alice.ID, &model.PatchUserRequest{})
	assert.ErrorIs(t, err, constant.ErrNothingToUpdate)
}

func TestUserPatchSingleField(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	newName := "alice-renamed"
	got, err := env.svc.Patch(ctx, alice.ID, alice.ID, &model.PatchUserRequest{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "alice-renamed", got.Username)
	// 未出现在请求体中的字段保持原值
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestUserDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	article := env.createArticle(t, alice.ID)

	comment := &model.Comment{Content: "评论", ArticleID: article.ID, UserID: alice.ID}
	require.NoError(t, env.db.Create(comment).Error)

	// 他人删除被拒
	bob := env.createUser(t, "bob")
	assert.ErrorIs(t, env.svc.Delete(ctx, bob.ID, alice.ID), constant.ErrForbidden)

	// 本人删除成功，文章与评论级联消失
	require.NoError(t, env.svc.Delete(ctx, alice.ID, alice.ID))

	var articleCount, commentCount int64
	require.NoError(t, env.db.Model(&model.Article{}).Where("user_id = ?", alice.ID).Count(&articleCount).Error)
	require.NoError(t, env.db.Model(&model.Comment{}).Where("user_id = ?", alice.ID).Count(&commentCount).Error)
	assert.Zero(t, articleCount)
	assert.Zero(t, commentCount)

	_, err := env.svc.Get(ctx, alice.ID)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}

func TestUserNestedListings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	article := env.createArticle(t, alice.ID)
	require.NoError(t, env.db.Create(&model.Comment{Content: "评论", ArticleID: article.ID, UserID: alice.ID}).Error)

	articles, err := env.svc.ListArticles(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, article.ID, articles[0].ID)

	comments, err := env.svc.ListComments(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	// 不存在的用户返回 404 而不是空列表
	_, err = env.svc.ListArticles(ctx, 9999)
	assert.ErrorIs(t, err, constant.ErrNotFound)
}
