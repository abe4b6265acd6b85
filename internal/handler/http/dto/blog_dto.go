package dto

// Request DTOs for Blog Handlers

// CreateBlogRequest defines the structure for submitting a new blog. The
// post always enters the pending state; status is not client-settable.
type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateStatusRequest carries an admin's moderation decision.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// AddCommentRequest defines the structure for appending a comment.
// Whitespace-only content passes binding and is rejected by the usecase
// after trimming.
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}
