package entity

import (
	"time"
)

// BlogStatus is the moderation state of a blog post.
type BlogStatus string

const (
	BlogStatusPending  BlogStatus = "pending"
	BlogStatusApproved BlogStatus = "approved"
	BlogStatusRejected BlogStatus = "rejected"
)

// IsValid reports whether the status is one of the recognized values.
func (s BlogStatus) IsValid() bool {
	return s == BlogStatusPending || s == BlogStatusApproved || s == BlogStatusRejected
}

// MaxCommentLength is the upper bound on comment content length, counted
// in characters rather than bytes.
const MaxCommentLength = 500

// Blog represents a blog post with its embedded comments and like set.
// Likes holds user IDs; membership is unique per user and the like count
// is always derived from its length, never stored on its own.
type Blog struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	AuthorID  string     `bson:"author_id" json:"author_id"`
	Status    BlogStatus `bson:"status" json:"status"`
	Likes     []string   `bson:"likes" json:"likes"`
	Comments  []Comment  `bson:"comments" json:"comments"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// LikeCount returns the cardinality of the like set.
func (b *Blog) LikeCount() int {
	return len(b.Likes)
}

// CommentByID returns the embedded comment with the given id, or nil.
func (b *Blog) CommentByID(commentID string) *Comment {
	for i := range b.Comments {
		if b.Comments[i].ID == commentID {
			return &b.Comments[i]
		}
	}
	return nil
}

// Comment is embedded in its parent blog; it has no identifier space of
// its own outside the blog document. AuthorName is captured at creation
// time so later username changes do not rewrite historical bylines.
type Comment struct {
	ID         string    `bson:"_id" json:"id"`
	AuthorID   string    `bson:"author_id" json:"author_id"`
	AuthorName string    `bson:"author_name" json:"author_name"`
	Content    string    `bson:"content" json:"content"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
