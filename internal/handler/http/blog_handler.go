package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/handler/http/dto"
	"github.com/bloghub/bloghub/internal/infrastructure/metrics"
	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// BlogHandlerInterface defines the methods for the blog handler to allow
// interface-based dependency injection (for testing/mocking)
type BlogHandlerInterface interface {
	CreateBlogHandler(*gin.Context)
	ListApprovedHandler(*gin.Context)
	ListPendingHandler(*gin.Context)
	GetBlogHandler(*gin.Context)
	SetStatusHandler(*gin.Context)
	ToggleLikeHandler(*gin.Context)
	AddCommentHandler(*gin.Context)
	DeleteCommentHandler(*gin.Context)
	GetStatsHandler(*gin.Context)
}

// Ensure BlogHandler implements BlogHandlerInterface
var _ BlogHandlerInterface = (*BlogHandler)(nil)

type BlogHandler struct {
	blogUsecase usecasecontract.IBlogUseCase
}

func NewBlogHandler(blogUsecase usecasecontract.IBlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
	}
}

// CreateBlogHandler submits a new post; it always enters the pending state.
func (h *BlogHandler) CreateBlogHandler(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	var req dto.CreateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUsecase.CreateBlog(c.Request.Context(), caller, req.Title, req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, blog)
}

// ListApprovedHandler returns the approved blogs visible to every caller.
func (h *BlogHandler) ListApprovedHandler(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	blogs, err := h.blogUsecase.ListApproved(c.Request.Context(), caller)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, blogs)
}

// ListPendingHandler returns pending blogs; the role filter is applied in
// the usecase, not here.
func (h *BlogHandler) ListPendingHandler(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	blogs, err := h.blogUsecase.ListPending(c.Request.Context(), caller)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, blogs)
}

// GetBlogHandler fetches a single blog by id.
func (h *BlogHandler) GetBlogHandler(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	blog, err := h.blogUsecase.GetBlog(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, blog)
}

// SetStatusHandler records an admin's moderation decision.
func (h *BlogHandler) SetStatusHandler(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	var req dto.UpdateStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUsecase.SetStatus(c.Request.Context(), caller, c.Param("id"), entity.BlogStatus(req.Status))
	if err != nil {
		RespondError(c, err)
		return
	}

	metrics.ModerationDecisions.WithLabelValues(req.Status).Inc()
	SuccessHandler(c, http.StatusOK, blog)
}

// ToggleLikeHandler flips the caller's membership in the blog's like set.
func (h *BlogHandler) ToggleLikeHandler(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	blog, err := h.blogUsecase.ToggleLike(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, blog)
}

// AddCommentHandler appends a comment to a blog.
func (h *BlogHandler) AddCommentHandler(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	var req dto.AddCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUsecase.AddComment(c.Request.Context(), caller, c.Param("id"), req.Content)
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, blog)
}

// DeleteCommentHandler removes a comment when the caller is its author or
// an admin.
func (h *BlogHandler) DeleteCommentHandler(c *gin.Context) {
	caller, ok := CallerFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "Unauthenticated")
		return
	}

	blog, err := h.blogUsecase.DeleteComment(c.Request.Context(), caller, c.Param("id"), c.Param("commentId"))
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, blog)
}

// GetStatsHandler returns the derived dashboard aggregates.
func (h *BlogHandler) GetStatsHandler(c *gin.Context) {
	stats, err := h.blogUsecase.GetStats(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, stats)
}
