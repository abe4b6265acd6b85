package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghub/bloghub/internal/domain/contract"
	"github.com/bloghub/bloghub/internal/domain/entity"
)

// BlogRepository is the MongoDB implementation of IBlogRepository. A blog
// document embeds its comments and like set, so the document is the unit
// of mutual exclusion: every mutation below is a single UpdateOne and the
// driver's per-document atomicity rules out interleaved read-modify-write.
type BlogRepository struct {
	collection *mongo.Collection
}

var _ contract.IBlogRepository = (*BlogRepository)(nil)

// NewBlogRepository creates and returns a new BlogRepository instance.
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection("blogs"),
	}
}

// CreateBlog inserts a new blog post record into the database.
func (r *BlogRepository) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	if blog.Likes == nil {
		blog.Likes = []string{}
	}
	if blog.Comments == nil {
		blog.Comments = []entity.Comment{}
	}
	_, err := r.collection.InsertOne(ctx, blog)
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// GetBlogByID retrieves a single blog post by its unique id.
func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	var blog entity.Blog
	err := r.collection.FindOne(ctx, bson.M{"_id": blogID}).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
		}
		return nil, fmt.Errorf("failed to retrieve blog post: %w", err)
	}
	return &blog, nil
}

// GetBlogsByStatus lists blogs in a moderation state, newest first. A
// non-empty authorID restricts the result to that author.
func (r *BlogRepository) GetBlogsByStatus(ctx context.Context, status entity.BlogStatus, authorID string) ([]*entity.Blog, error) {
	filter := bson.M{"status": status}
	if authorID != "" {
		filter["author_id"] = authorID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve blogs: %w", err)
	}
	defer cursor.Close(ctx)

	blogs := []*entity.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}
	return blogs, nil
}

// UpdateStatus overwrites the moderation state. The new status fully
// replaces the old one, so last write wins by construction.
func (r *BlogRepository) UpdateStatus(ctx context.Context, blogID string, status entity.BlogStatus) error {
	filter := bson.M{"_id": blogID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update blog status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	return nil
}

// AddLike adds the user to the like set with $addToSet, guarded by a
// filter requiring the user to be absent. Membership check and insert are
// one atomic update; a concurrent identical call matches zero documents.
func (r *BlogRepository) AddLike(ctx context.Context, blogID, userID string) (bool, error) {
	filter := bson.M{"_id": blogID, "likes": bson.M{"$ne": userID}}
	update := bson.M{
		"$addToSet": bson.M{"likes": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// RemoveLike pulls the user from the like set, guarded by a filter
// requiring the user to be present.
func (r *BlogRepository) RemoveLike(ctx context.Context, blogID, userID string) (bool, error) {
	filter := bson.M{"_id": blogID, "likes": userID}
	update := bson.M{
		"$pull": bson.M{"likes": userID},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

// AppendComment pushes a comment onto the embedded sequence. $push keeps
// insertion order, so concurrent appends from different users interleave
// without dropping either write.
func (r *BlogRepository) AppendComment(ctx context.Context, blogID string, comment *entity.Comment) error {
	filter := bson.M{"_id": blogID}
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	return nil
}

// RemoveComment pulls the embedded comment with the given id.
func (r *BlogRepository) RemoveComment(ctx context.Context, blogID, commentID string) error {
	filter := bson.M{"_id": blogID}
	update := bson.M{
		"$pull": bson.M{"comments": bson.M{"_id": commentID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: blog %s", entity.ErrNotFound, blogID)
	}
	if res.ModifiedCount == 0 {
		return fmt.Errorf("%w: comment %s", entity.ErrNotFound, commentID)
	}
	return nil
}

// CountByStatus groups blog counts by moderation state.
func (r *BlogRepository) CountByStatus(ctx context.Context) (map[entity.BlogStatus]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count blogs by status: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status entity.BlogStatus `bson:"_id"`
		Count  int64             `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}

	counts := make(map[entity.BlogStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// EnsureIndexes creates the indexes backing the status and author filters.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "author_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create blog indexes: %w", err)
	}
	return nil
}
