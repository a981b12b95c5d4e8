package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KeerthanaRajaR/gen-well-agent/internal"
)

// PostgresSource reads the roster from a users table with the same columns
// as the directory file.
type PostgresSource struct {
	pool   PgxPool
	logger internal.Logger
}

// PgxPool is the part of *pgxpool.Pool the source uses.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

const selectUsersSQL = `SELECT user_id, first_name, last_name, city, dietary_preference, medical_conditions, physical_limitations, latest_cgm, mood FROM users ORDER BY user_id`

func NewPostgresSource(ctx context.Context, dsn string, logger internal.Logger) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return NewPostgresSourceFromPool(pool, logger), nil
}

func NewPostgresSourceFromPool(pool PgxPool, logger internal.Logger) *PostgresSource {
	return &PostgresSource{pool: pool, logger: logger}
}

func (p *PostgresSource) LoadProfiles(ctx context.Context) (LoadResult, error) {
	rows, err := p.pool.Query(ctx, selectUsersSQL)
	if err != nil {
		p.logger.Errorf("failed to query users: %v", err)
		return LoadResult{}, err
	}
	defer rows.Close()

	var res LoadResult
	seen := make(map[int]bool)
	line := 0
	for rows.Next() {
		line++
		var u internal.UserProfile
		err := rows.Scan(&u.UserID, &u.FirstName, &u.LastName, &u.City, &u.DietaryPreference,
			&u.MedicalConditions, &u.PhysicalLimitations, &u.LatestCGM, &u.Mood)
		if err != nil {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Err: err})
			continue
		}
		if seen[u.UserID] {
			res.RowErrors = append(res.RowErrors, RowError{Line: line, Err: fmt.Errorf("duplicate user_id %d", u.UserID)})
			continue
		}
		seen[u.UserID] = true
		res.Profiles = append(res.Profiles, u)
	}
	if err := rows.Err(); err != nil {
		p.logger.Errorf("failed to read users: %v", err)
		return res, err
	}
	return res, nil
}

func (p *PostgresSource) Close() {
	p.pool.Close()
}

var _ ProfileSource = (*PostgresSource)(nil)
