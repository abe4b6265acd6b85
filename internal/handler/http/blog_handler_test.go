package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/dto"
	"github.com/bloghub/bloghub/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// withCaller injects an authenticated caller the way the auth middleware
// would, so handlers can be exercised without real tokens.
func withCaller(caller entity.Caller) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("caller", caller)
		c.Set("userID", caller.UserID)
		c.Set("userRole", string(caller.Role))
		c.Next()
	}
}

func newBlogRouter(mock *mocks.MockBlogUsecase, caller entity.Caller) *gin.Engine {
	handler := NewBlogHandler(mock)
	router := gin.New()
	router.Use(withCaller(caller))
	router.POST("/blogs", handler.CreateBlogHandler)
	router.GET("/blogs", handler.ListApprovedHandler)
	router.GET("/blogs/pending", handler.ListPendingHandler)
	router.GET("/blogs/stats", handler.GetStatsHandler)
	router.GET("/blogs/:id", handler.GetBlogHandler)
	router.PUT("/blogs/:id/status", handler.SetStatusHandler)
	router.POST("/blogs/:id/like", handler.ToggleLikeHandler)
	router.POST("/blogs/:id/comments", handler.AddCommentHandler)
	router.DELETE("/blogs/:id/comments/:commentId", handler.DeleteCommentHandler)
	return router
}

func testCaller() entity.Caller {
	return entity.Caller{UserID: "user-1", Role: entity.UserRoleUser}
}

func TestCreateBlogHandler_Success(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodPost, "/blogs", gin.H{
		"title":   "My first post",
		"content": "Hello world",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BlogResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "My first post", resp.Title)
	assert.Equal(t, string(entity.BlogStatusPending), resp.Status)
}

func TestCreateBlogHandler_MissingFields(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodPost, "/blogs", gin.H{"title": "no content"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBlogHandler_NoCaller(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	handler := NewBlogHandler(mock)
	router := gin.New()
	router.POST("/blogs", handler.CreateBlogHandler)

	w := performRequest(router, http.MethodPost, "/blogs", gin.H{
		"title":   "t",
		"content": "c",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthenticated")
}

func TestListApprovedHandler_Success(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodGet, "/blogs", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BlogResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, string(entity.BlogStatusApproved), resp[0].Status)
}

func TestListPendingHandler_Success(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodGet, "/blogs/pending", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetBlogHandler_NotFound(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	mock.ShouldNotFind = true
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodGet, "/blogs/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBlogHandler_InternalError(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	mock.ShouldFail = true
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodGet, "/blogs/blog-1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server error")
	assert.NotContains(t, w.Body.String(), "store unavailable")
}

func TestSetStatusHandler_Success(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, entity.Caller{UserID: "admin-1", Role: entity.UserRoleAdmin})

	w := performRequest(router, http.MethodPut, "/blogs/blog-1/status", gin.H{"status": "approved"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.BlogStatusApproved, mock.LastStatus)

	var resp dto.BlogResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestSetStatusHandler_InvalidStatus(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, entity.Caller{UserID: "admin-1", Role: entity.UserRoleAdmin})

	w := performRequest(router, http.MethodPut, "/blogs/blog-1/status", gin.H{"status": "published"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetStatusHandler_Forbidden(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	mock.ShouldForbid = true
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodPut, "/blogs/blog-1/status", gin.H{"status": "rejected"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized")
}

func TestToggleLikeHandler_Success(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodPost, "/blogs/blog-1/like", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BlogResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.LikeCount)
	assert.Len(t, resp.Likes, 1)
}

func TestToggleLikeHandler_NotFound(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	mock.ShouldNotFind = true
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodPost, "/blogs/missing/like", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCommentHandler_Success(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodPost, "/blogs/blog-1/comments", gin.H{"content": "Great read"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Great read", mock.LastCommentBody)
}

func TestAddCommentHandler_MissingContent(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodPost, "/blogs/blog-1/comments", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCommentHandler_Success(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodDelete, "/blogs/blog-1/comments/comment-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteCommentHandler_Forbidden(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	mock.ShouldForbid = true
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodDelete, "/blogs/blog-1/comments/comment-1", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetStatsHandler_Success(t *testing.T) {
	mock := mocks.NewMockBlogUsecase()
	router := newBlogRouter(mock, testCaller())

	w := performRequest(router, http.MethodGet, "/blogs/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.TotalBlogs)
	assert.Len(t, resp.TopLiked, 1)
}
