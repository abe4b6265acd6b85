package dto

import (
	"time"

	"github.com/bloghub/bloghub/internal/domain/entity"
)

// UserRef is a reference field resolved to a display identity. It carries
// the username only, never the password hash or email.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CommentResponse is a comment with its author reference resolved. The
// byline comes from the denormalized name captured at creation time.
type CommentResponse struct {
	ID        string    `json:"id"`
	Author    UserRef   `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogResponse is the resolved blog payload: author, comment authors and
// likers expanded to display identities, like count derived from the set.
type BlogResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Author    UserRef           `json:"author"`
	Status    string            `json:"status"`
	Likes     []UserRef         `json:"likes"`
	LikeCount int               `json:"like_count"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// StatsResponse is the derived analytics view: pure aggregation over the
// same lists the read operations return, never a stored aggregate.
type StatsResponse struct {
	TotalBlogs    int64             `json:"total_blogs"`
	PendingCount  int64             `json:"pending_count"`
	ApprovedCount int64             `json:"approved_count"`
	RejectedCount int64             `json:"rejected_count"`
	TotalLikes    int               `json:"total_likes"`
	TotalComments int               `json:"total_comments"`
	TopLiked      []BlogRankingItem `json:"top_liked"`
}

// BlogRankingItem is one row of the top-liked ranking.
type BlogRankingItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	LikeCount int    `json:"like_count"`
}

// ToBlogResponse expands a blog's reference fields using the supplied user
// lookup. Users missing from the map (deleted accounts) resolve to an empty
// username rather than failing the whole payload. Comment bylines use the
// name denormalized at creation time.
func ToBlogResponse(blog *entity.Blog, users map[string]*entity.User) *BlogResponse {
	resp := &BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Author:    toUserRef(blog.AuthorID, users),
		Status:    string(blog.Status),
		Likes:     make([]UserRef, 0, len(blog.Likes)),
		LikeCount: blog.LikeCount(),
		Comments:  make([]CommentResponse, 0, len(blog.Comments)),
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
	for _, userID := range blog.Likes {
		resp.Likes = append(resp.Likes, toUserRef(userID, users))
	}
	for i := range blog.Comments {
		c := &blog.Comments[i]
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:        c.ID,
			Author:    UserRef{ID: c.AuthorID, Username: c.AuthorName},
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return resp
}

func toUserRef(userID string, users map[string]*entity.User) UserRef {
	ref := UserRef{ID: userID}
	if u, ok := users[userID]; ok {
		ref.Username = u.Username
	}
	return ref
}
