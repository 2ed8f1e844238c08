package questions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/dbx"
	"github.com/dmitrijs2005/qaboard/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository keeps each question in one row; responses and
// favorites live in JSONB columns so a question is still read and written
// as a single document.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectQuestion = `SELECT id, user_id, username, body, created_at, responses, favorites FROM questions`

func (r *PostgresRepository) Create(ctx context.Context, q *models.Question) (*models.Question, error) {
	assignEmbeddedIDs(q, uuid.NewString)

	responses, favorites, err := marshalEmbedded(q)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO questions (user_id, username, body, created_at, responses, favorites)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`

	err = r.db.QueryRowContext(ctx, query,
		q.UserID, q.UserName, q.Body, q.CreatedAt, responses, favorites).Scan(&q.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return q, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Question, error) {
	// Postgres rejects malformed uuids with an error, which callers should
	// see as an unknown id.
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	row := r.db.QueryRowContext(ctx, selectQuestion+` WHERE id = $1`, id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return q, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Question, error) {
	rows, err := r.db.QueryContext(ctx, selectQuestion+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Save(ctx context.Context, q *models.Question) error {
	if _, err := uuid.Parse(q.ID); err != nil {
		return common.ErrorNotFound
	}

	assignEmbeddedIDs(q, uuid.NewString)
	responses, favorites, err := marshalEmbedded(q)
	if err != nil {
		return err
	}

	query :=
		`UPDATE questions SET body = $2, responses = $3, favorites = $4
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, q.ID, q.Body, responses, favorites)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(s scanner) (*models.Question, error) {
	q := &models.Question{}
	var responses, favorites []byte

	if err := s.Scan(&q.ID, &q.UserID, &q.UserName, &q.Body, &q.CreatedAt, &responses, &favorites); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(responses, &q.Responses); err != nil {
		return nil, fmt.Errorf("decode responses: %w", err)
	}
	if err := json.Unmarshal(favorites, &q.Favorites); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return q, nil
}

func marshalEmbedded(q *models.Question) (string, string, error) {
	responses := q.Responses
	if responses == nil {
		responses = []models.Response{}
	}
	favorites := q.Favorites
	if favorites == nil {
		favorites = []models.Favorite{}
	}

	r, err := json.Marshal(responses)
	if err != nil {
		return "", "", fmt.Errorf("encode responses: %w", err)
	}
	f, err := json.Marshal(favorites)
	if err != nil {
		return "", "", fmt.Errorf("encode favorites: %w", err)
	}
	return string(r), string(f), nil
}
