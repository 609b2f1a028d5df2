package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/internal/store"
	"github.com/MKhiriev/go-micro-blog/models"
)

// postService is the concrete implementation of PostService. Ownership
// rules live here: the repository layer only moves rows.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService constructs a PostService wired to the given PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		logger:         logger,
	}
}

// CreatePost validates and persists a new post authored by authorID.
//
// Returns ErrTitleRequired when the title is empty, or a wrapped storage
// error if the insert fails.
func (p *postService) CreatePost(ctx context.Context, authorID int64, title, body string) (models.Post, error) {
	log := logger.FromContext(ctx)

	if title == "" {
		log.Error().Int64("author_id", authorID).Msg("post creation rejected: empty title")
		return models.Post{}, ErrTitleRequired
	}

	createdPost, err := p.postRepository.CreatePost(ctx, models.Post{
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	})
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// ListPosts returns all posts, newest first.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("post listing ended with error")
		return nil, fmt.Errorf("post listing ended with error: %w", err)
	}

	return posts, nil
}

// GetOwnedPost fetches a post and enforces that it belongs to userID.
//
// Returns a wrapped store.ErrPostNotFound when the post does not exist and
// ErrNotPostAuthor when it belongs to someone else.
func (p *postService) GetOwnedPost(ctx context.Context, postID, userID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post lookup ended with error")
		return models.Post{}, fmt.Errorf("post lookup ended with error: %w", err)
	}

	if post.AuthorID != userID {
		log.Error().
			Int64("post_id", postID).
			Int64("author_id", post.AuthorID).
			Int64("user_id", userID).
			Msg("post does not belong to current user")
		return models.Post{}, ErrNotPostAuthor
	}

	return post, nil
}

// UpdatePost rewrites the title and body of a post owned by userID.
//
// Validation and ownership checks run before the write: empty title →
// ErrTitleRequired, missing post → wrapped store.ErrPostNotFound, foreign
// post → ErrNotPostAuthor.
func (p *postService) UpdatePost(ctx context.Context, postID, userID int64, title, body string) error {
	log := logger.FromContext(ctx)

	post, err := p.GetOwnedPost(ctx, postID, userID)
	if err != nil {
		return err
	}

	if title == "" {
		log.Error().Int64("post_id", postID).Msg("post update rejected: empty title")
		return ErrTitleRequired
	}

	post.Title = title
	post.Body = body
	if err := p.postRepository.UpdatePost(ctx, post); err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post update ended with error")
		return fmt.Errorf("post update ended with error: %w", err)
	}

	return nil
}

// DeletePost removes a post owned by userID, enforcing the same existence
// and ownership rules as UpdatePost.
func (p *postService) DeletePost(ctx context.Context, postID, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := p.GetOwnedPost(ctx, postID, userID); err != nil {
		return err
	}

	if err := p.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}
