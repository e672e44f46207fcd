package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Skufu/symptomcheck/internal/diagnosis"
)

// Schema is the table LoadCorpus reads from. The service never writes to it.
const Schema = `CREATE TABLE IF NOT EXISTS training_examples (
	id                   BIGSERIAL PRIMARY KEY,
	condition            TEXT NOT NULL,
	symptoms             TEXT[] NOT NULL,
	reference_confidence DOUBLE PRECISION
)`

const selectCorpus = `SELECT condition, symptoms, reference_confidence FROM training_examples ORDER BY id`

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// Postgres is a read-only corpus source backed by a pgx pool.
type Postgres struct {
	db    querier
	close func()
}

func Connect(ctx context.Context, url string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &Postgres{db: pool, close: pool.Close}, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func (p *Postgres) Close() {
	if p.close != nil {
		p.close()
	}
}

// LoadCorpus reads every training example in insertion order.
func (p *Postgres) LoadCorpus(ctx context.Context) ([]diagnosis.TrainingExample, error) {
	rows, err := p.db.Query(ctx, selectCorpus)
	if err != nil {
		return nil, fmt.Errorf("query training examples: %w", err)
	}
	defer rows.Close()

	var out []diagnosis.TrainingExample
	for rows.Next() {
		var (
			ex         diagnosis.TrainingExample
			confidence *float64
		)
		if err := rows.Scan(&ex.Condition, &ex.Symptoms, &confidence); err != nil {
			return nil, fmt.Errorf("scan training example %d: %w", len(out), err)
		}
		if confidence != nil {
			ex.ReferenceConfidence = *confidence
		}
		out = append(out, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read training examples: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("training_examples is empty: %w", diagnosis.ErrEmptyCorpus)
	}
	return out, nil
}
