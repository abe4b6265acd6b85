package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/dto"
	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// MockBlogUsecase is a hand-rolled mock for handler tests. Failure modes
// are toggled per test through the Should* flags.
type MockBlogUsecase struct {
	ShouldFail      bool
	ShouldNotFind   bool
	ShouldForbid    bool
	LastStatus      entity.BlogStatus
	LastCommentBody string
}

var _ usecasecontract.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	return &MockBlogUsecase{}
}

func (m *MockBlogUsecase) sample() *dto.BlogResponse {
	return &dto.BlogResponse{
		ID:        "blog-1",
		Title:     "Test Blog",
		Content:   "Test content",
		Author:    dto.UserRef{ID: "user-1", Username: "testuser"},
		Status:    string(entity.BlogStatusPending),
		Likes:     []dto.UserRef{},
		LikeCount: 0,
		Comments:  []dto.CommentResponse{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (m *MockBlogUsecase) err() error {
	switch {
	case m.ShouldNotFind:
		return fmt.Errorf("%w: blog", entity.ErrNotFound)
	case m.ShouldForbid:
		return fmt.Errorf("%w: not allowed", entity.ErrForbidden)
	default:
		return fmt.Errorf("store unavailable")
	}
}

func (m *MockBlogUsecase) failing() bool {
	return m.ShouldFail || m.ShouldNotFind || m.ShouldForbid
}

func (m *MockBlogUsecase) CreateBlog(ctx context.Context, caller entity.Caller, title, content string) (*dto.BlogResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	resp := m.sample()
	resp.Title = title
	resp.Content = content
	resp.Author = dto.UserRef{ID: caller.UserID, Username: "testuser"}
	return resp, nil
}

func (m *MockBlogUsecase) ListApproved(ctx context.Context, caller entity.Caller) ([]*dto.BlogResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	approved := m.sample()
	approved.Status = string(entity.BlogStatusApproved)
	return []*dto.BlogResponse{approved}, nil
}

func (m *MockBlogUsecase) ListPending(ctx context.Context, caller entity.Caller) ([]*dto.BlogResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	return []*dto.BlogResponse{m.sample()}, nil
}

func (m *MockBlogUsecase) GetBlog(ctx context.Context, caller entity.Caller, blogID string) (*dto.BlogResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	resp := m.sample()
	resp.ID = blogID
	return resp, nil
}

func (m *MockBlogUsecase) SetStatus(ctx context.Context, caller entity.Caller, blogID string, status entity.BlogStatus) (*dto.BlogResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	m.LastStatus = status
	resp := m.sample()
	resp.ID = blogID
	resp.Status = string(status)
	return resp, nil
}

func (m *MockBlogUsecase) ToggleLike(ctx context.Context, caller entity.Caller, blogID string) (*dto.BlogResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	resp := m.sample()
	resp.ID = blogID
	resp.Likes = []dto.UserRef{{ID: caller.UserID, Username: "testuser"}}
	resp.LikeCount = 1
	return resp, nil
}

func (m *MockBlogUsecase) AddComment(ctx context.Context, caller entity.Caller, blogID, content string) (*dto.BlogResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	m.LastCommentBody = content
	resp := m.sample()
	resp.ID = blogID
	resp.Comments = []dto.CommentResponse{{
		ID:        "comment-1",
		Author:    dto.UserRef{ID: caller.UserID, Username: "testuser"},
		Content:   content,
		CreatedAt: time.Now(),
	}}
	return resp, nil
}

func (m *MockBlogUsecase) DeleteComment(ctx context.Context, caller entity.Caller, blogID, commentID string) (*dto.BlogResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	resp := m.sample()
	resp.ID = blogID
	return resp, nil
}

func (m *MockBlogUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	if m.failing() {
		return nil, m.err()
	}
	return &dto.StatsResponse{
		TotalBlogs:    3,
		PendingCount:  1,
		ApprovedCount: 1,
		RejectedCount: 1,
		TotalLikes:    2,
		TotalComments: 4,
		TopLiked:      []dto.BlogRankingItem{{ID: "blog-1", Title: "Test Blog", LikeCount: 2}},
	}, nil
}
