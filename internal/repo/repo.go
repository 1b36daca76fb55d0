package repo

import (
	"context"
	"database/sql"
	"time"
)

type DatasetRun struct {
	ID        int       `json:"id"`
	Samples   int       `json:"samples"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
	CreateDatasetRun(ctx context.Context, samples int, path string) (int, error)
	ListDatasetRuns(ctx context.Context, limit int) ([]DatasetRun, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) CreateDatasetRun(ctx context.Context, samples int, path string) (int, error) {
	var id int
	query := "INSERT INTO dataset_runs (samples, path, created_at) VALUES ($1, $2, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, samples, path).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListDatasetRuns(ctx context.Context, limit int) ([]DatasetRun, error) {
	query := "SELECT id, samples, path, created_at FROM dataset_runs ORDER BY created_at DESC LIMIT $1"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []DatasetRun
	for rows.Next() {
		var run DatasetRun
		if err := rows.Scan(&run.ID, &run.Samples, &run.Path, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
