package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"noticeboard-backend/models"
)

// PostgresNoticeRepository persists notices in a Postgres table
type PostgresNoticeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNoticeRepository connects a pool and verifies the
// connection before returning the repository.
func NewPostgresNoticeRepository(ctx context.Context, connString string) (*PostgresNoticeRepository, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, &models.PersistenceError{Op: "connect", Err: err}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &models.PersistenceError{Op: "connect", Err: err}
	}

	return &PostgresNoticeRepository{pool: pool}, nil
}

// Create inserts a notice and returns the assigned id
func (r *PostgresNoticeRepository) Create(ctx context.Context, notice *models.Notice) (string, error) {
	query := `
		INSERT INTO notices (
			title, content, media_url, priority, created_by, date, original_file_name, content_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text`

	var id string
	err := r.pool.QueryRow(
		ctx, query,
		notice.Title,
		notice.Content,
		notice.MediaURL,
		notice.Priority,
		notice.CreatedBy,
		notice.Date,
		notice.OriginalFileName,
		string(notice.ContentType),
	).Scan(&id)
	if err != nil {
		return "", &models.PersistenceError{Op: "create", Err: err}
	}

	return id, nil
}

// ListAll retrieves every notice in display order
func (r *PostgresNoticeRepository) ListAll(ctx context.Context) ([]models.Notice, error) {
	query := `
		SELECT id::text, title, content, media_url, priority, created_by, date, original_file_name, content_type
		FROM notices
		ORDER BY priority ASC, date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, &models.PersistenceError{Op: "list", Err: err}
	}
	defer rows.Close()

	var notices []models.Notice
	for rows.Next() {
		var n models.Notice
		var contentType string
		err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Content,
			&n.MediaURL,
			&n.Priority,
			&n.CreatedBy,
			&n.Date,
			&n.OriginalFileName,
			&contentType,
		)
		if err != nil {
			return nil, &models.PersistenceError{Op: "list", Err: err}
		}
		n.ContentType = models.ContentType(contentType)
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.PersistenceError{Op: "list", Err: err}
	}

	// The query already orders rows, but tie stability is enforced here.
	sortNotices(notices)

	return notices, nil
}

// Close releases the pool
func (r *PostgresNoticeRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}
