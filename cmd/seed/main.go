// Command seed bootstraps the admin account and, with -sample, a handful
// of demo users and posts for local development.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/bloghub/bloghub/internal/domain/entity"
	"github.com/bloghub/bloghub/internal/infrastructure/config"
	database "github.com/bloghub/bloghub/internal/infrastructure/database"
	passwordservice "github.com/bloghub/bloghub/internal/infrastructure/password_service"
	"github.com/bloghub/bloghub/internal/infrastructure/repository/mongodb"
	"github.com/bloghub/bloghub/internal/infrastructure/uuidgen"
)

func main() {
	sample := flag.Bool("sample", false, "also seed sample users and blogs")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.MongoDBName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	blogRepo := mongodb.NewBlogRepository(db)
	hasher := passwordservice.NewHasher()
	uuidGen := uuidgen.NewGenerator()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := blogRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create blog indexes: %v", err)
	}

	adminID, err := ensureUser(ctx, userRepo, hasher, uuidGen.NewUUID(), "admin", "admin@bloghub.local", "Admin1234", entity.UserRoleAdmin)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("admin user ready (id=%s)", adminID)

	if !*sample {
		return
	}

	aliceID, err := ensureUser(ctx, userRepo, hasher, uuidGen.NewUUID(), "alice", "alice@bloghub.local", "Alice1234", entity.UserRoleUser)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}
	bobID, err := ensureUser(ctx, userRepo, hasher, uuidGen.NewUUID(), "bob", "bob@bloghub.local", "Bob12345", entity.UserRoleUser)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	blogs := []*entity.Blog{
		{
			ID:       uuidGen.NewUUID(),
			Title:    "Welcome to BlogHub",
			Content:  "First post. An admin has already approved this one.",
			AuthorID: aliceID,
			Status:   entity.BlogStatusApproved,
			Likes:    []string{bobID},
			Comments: []entity.Comment{{
				ID:         uuidGen.NewUUID(),
				AuthorID:   bobID,
				AuthorName: "bob",
				Content:    "Nice to be here!",
				CreatedAt:  time.Now(),
			}},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        uuidGen.NewUUID(),
			Title:     "Draft thoughts",
			Content:   "This one is still waiting for moderation.",
			AuthorID:  bobID,
			Status:    entity.BlogStatusPending,
			Likes:     []string{},
			Comments:  []entity.Comment{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	for _, blog := range blogs {
		if err := blogRepo.CreateBlog(ctx, blog); err != nil {
			log.Fatalf("Failed to seed blog %q: %v", blog.Title, err)
		}
	}
	log.Printf("seeded %d sample blogs", len(blogs))
}

func ensureUser(ctx context.Context, repo *mongodb.MongoUserRepository, hasher *passwordservice.Hasher, id, username, email, password string, role entity.UserRole) (string, error) {
	existing, err := repo.GetUserByUsername(ctx, username)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return "", err
	}

	hash, err := hasher.HashPassword(password)
	if err != nil {
		return "", err
	}
	user := &entity.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}
