package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mojianxun/newshub/internal/app/middleware"
	"github.com/mojianxun/newshub/internal/infra/persistence/database"
	"github.com/mojianxun/newshub/internal/infra/persistence/gormimpl"
	article_handler "github.com/mojianxun/newshub/pkg/handler/article"
	auth_handler "github.com/mojianxun/newshub/pkg/handler/auth"
	category_handler "github.com/mojianxun/newshub/pkg/handler/category"
	comment_handler "github.com/mojianxun/newshub/pkg/handler/comment"
	user_handler "github.com/mojianxun/newshub/pkg/handler/user"
	article_service "github.com/mojianxun/newshub/pkg/service/article"
	auth_service "github.com/mojianxun/newshub/pkg/service/auth"
	category_service "github.com/mojianxun/newshub/pkg/service/category"
	comment_service "github.com/mojianxun/newshub/pkg/service/comment"
	user_service "github.com/mojianxun/newshub/pkg/service/user"
)

// newTestServer 装配一套完整的路由栈，数据库为每个测试独立的 SQLite 文件。
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	userRepo := gormimpl.NewUserRepo(db)
	categoryRepo := gormimpl.NewCategoryRepo(db)
	articleRepo := gormimpl.NewArticleRepo(db)
	commentRepo := gormimpl.NewCommentRepo(db)
	txManager := gormimpl.NewTransactionManager(db)

	tokenSvc := auth_service.NewTokenService("test-secret")
	authSvc := auth_service.NewAuthService(userRepo, tokenSvc)
	userSvc := user_service.NewUserService(userRepo, articleRepo, commentRepo)
	categorySvc := category_service.NewService(categoryRepo, articleRepo)
	articleSvc := article_service.NewService(articleRepo, commentRepo, txManager)
	commentSvc := comment_service.NewService(commentRepo, txManager)

	appRouter := NewRouter(
		auth_handler.NewAuthHandler(authSvc),
		user_handler.NewUserHandler(userSvc),
		category_handler.NewHandler(categorySvc),
		article_handler.NewHandler(articleSvc),
		comment_handler.NewHandler(commentSvc),
		middleware.NewMiddleware(tokenSvc),
	)

	engine := gin.New()
	appRouter.Setup(engine)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, engine *gin.Engine, username string) (uint, string) {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodPost, "/api/login", "", gin.H{
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.User.ID, resp.Token
}

func TestHealthz(t *testing.T) {
	engine := newTestServer(t)
	w := doJSON(t, engine, http.MethodGet, "/api/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	engine := newTestServer(t)

	// 邮箱格式非法，密码过短
	w := doJSON(t, engine, http.MethodPost, "/api/register", "", gin.H{
		"username": "a",
		"email":    "not-an-email",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestRegisterResponseOmitsPassword(t *testing.T) {
	engine := newTestServer(t)
	w := doJSON(t, engine, http.MethodPost, "/api/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestMutationsRequireToken(t *testing.T) {
	engine := newTestServer(t)

	// 无凭证 → 401
	w := doJSON(t, engine, http.MethodPost, "/api/categories", "", gin.H{"name": "科技"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 伪造凭证 → 403
	w = doJSON(t, engine, http.MethodPost, "/api/categories", "forged.token.value", gin.H{"name": "科技"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestReadsArePublic(t *testing.T) {
	engine := newTestServer(t)
	for _, path := range []string{"/api/users", "/api/categories", "/api/articles", "/api/comments"} {
		w := doJSON(t, engine, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestFullResourceFlow(t *testing.T) {
	engine := newTestServer(t)
	_, aliceToken := registerAndLogin(t, engine, "alice")
	_, bobToken := registerAndLogin(t, engine, "bob")

	// 创建分类
	w := doJSON(t, engine, http.MethodPost, "/api/categories", aliceToken, gin.H{
		"name": "科技", "description": "科技新闻",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var category struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))

	// 发布文章
	w = doJSON(t, engine, http.MethodPost, "/api/articles", aliceToken, gin.H{
		"title": "标题", "body": "正文", "category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var article struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &article))

	// 引用不存在的分类 → 404
	w = doJSON(t, engine, http.MethodPost, "/api/articles", aliceToken, gin.H{
		"title": "标题", "body": "正文", "category_id": 9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 他人修改 → 403
	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/articles/%d", article.ID), bobToken, gin.H{
		"title": "篡改", "body": "篡改", "category_id": category.ID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 空 PATCH → 400
	w = doJSON(t, engine, http.MethodPatch, fmt.Sprintf("/api/articles/%d", article.ID), aliceToken, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 发表评论
	w = doJSON(t, engine, http.MethodPost, "/api/comments", bobToken, gin.H{
		"content": "写得好", "article_id": article.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var comment struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))

	// 分类仍被引用 → 409
	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), aliceToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// 作者删除评论 → 204
	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/comments/%d", comment.ID), bobToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// 作者删除文章后分类可删
	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/articles/%d", article.ID), aliceToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListEnvelope(t *testing.T) {
	engine := newTestServer(t)
	_, token := registerAndLogin(t, engine, "alice")

	for i := 1; i <= 3; i++ {
		w := doJSON(t, engine, http.MethodPost, "/api/categories", token, gin.H{
			"name": fmt.Sprintf("分类 %d", i), "description": "描述",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, engine, http.MethodGet, "/api/categories?page=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data  []json.RawMessage `json:"data"`
		Page  int               `json:"page"`
		Limit int               `json:"limit"`
		Total int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 2, body.Limit)
	assert.EqualValues(t, 3, body.Total)
	assert.Len(t, body.Data, 1)
}

func TestInvalidIDPath(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/articles/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/articles/0", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/articles/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserOwnershipOverHTTP(t *testing.T) {
	engine := newTestServer(t)
	aliceID, _ := registerAndLogin(t, engine, "alice")
	_, bobToken := registerAndLogin(t, engine, "bob")

	// bob 动 alice 的账号 → 403
	w := doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/users/%d", aliceID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodPatch, fmt.Sprintf("/api/users/%d", aliceID), bobToken, gin.H{
		"username": "hacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginFailureStatus(t *testing.T) {
	engine := newTestServer(t)
	registerAndLogin(t, engine, "alice")

	wWrongPass := doJSON(t, engine, http.MethodPost, "/api/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong-pass",
	})
	wNoUser := doJSON(t, engine, http.MethodPost, "/api/login", "", gin.H{
		"email": "nobody@example.com", "password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wWrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, wNoUser.Code)
	// 响应体完全一致，避免账号枚举
	assert.Equal(t, wWrongPass.Body.String(), wNoUser.Body.String())
}
