package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-micro-blog/internal/logger"
	"github.com/MKhiriev/go-micro-blog/models"
)

// postRepository is the SQL-backed implementation of [PostRepository].
// It manages blog entries in the "posts" table; read queries join the
// "users" table to resolve the author's username.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// postColumns is the read projection shared by GetPost and ListPosts.
var postColumns = []string{
	"p.post_id", "p.author_id", "p.title", "p.body", "p.created_at", "u.username",
}

// CreatePost persists a new post and returns it with server-assigned fields
// (PostID, CreatedAt). AuthorName is not populated by the insert.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(post.TableName()).
		Columns("author_id", "title", "body").
		Values(post.AuthorID, post.Title, post.Body).
		Suffix("RETURNING post_id, author_id, title, body, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error: building insert query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.PostID, &created.AuthorID, &created.Title, &created.Body, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Int64("author_id", post.AuthorID).Msg("error: inserting post")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetPost retrieves a single post by its primary key, with the author's
// username joined in.
//
// Error handling:
//   - empty result set ([sql.ErrNoRows]) → [ErrPostNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(postColumns...).
		From("posts p").
		Join("users u ON u.user_id = p.author_id").
		Where("p.post_id = ?", postID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error: building select query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.Post
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&post.PostID, &post.AuthorID, &post.Title, &post.Body, &post.CreatedAt, &post.AuthorName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", postID).Msg("error: scanning post row")
		return models.Post{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return post, nil
}

// ListPosts returns all posts, newest first, with author usernames joined in.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(postColumns...).
		From("posts p").
		Join("users u ON u.user_id = p.author_id").
		OrderBy("p.created_at DESC", "p.post_id DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.PostID, &post.AuthorID, &post.Title, &post.Body, &post.CreatedAt, &post.AuthorName); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error: scanning post rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// UpdatePost rewrites the title and body of an existing post.
//
// Returns [ErrPostNotFound] when no row matches the post ID; ownership
// checks belong to the service layer and are not enforced here.
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(post.TableName()).
		Set("title", post.Title).
		Set("body", post.Body).
		Where("post_id = ?", post.PostID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error: building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Int64("post_id", post.PostID).Msg("error: executing update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost removes a post by its primary key.
//
// Returns [ErrPostNotFound] when no row matches the post ID.
func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Post{}.TableName()).
		Where("post_id = ?", postID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error: building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", postID).Msg("error: executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}
