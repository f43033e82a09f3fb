package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karobar/karobar_backend/internal/apperrors"
	"github.com/karobar/karobar_backend/internal/core/domain"
	portsrepo "github.com/karobar/karobar_backend/internal/core/ports/repositories"
)

// snapshotRepository implements the SnapshotRepository interface
type snapshotRepository struct {
	BaseRepository
}

func newSnapshotRepository(db *pgxpool.Pool) portsrepo.SnapshotRepository {
	return &snapshotRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// UpsertSnapshot stores the report payload keyed by start year, last write
// wins. The xmax check distinguishes a fresh insert from a replacement.
func (r *snapshotRepository) UpsertSnapshot(ctx context.Context, snapshot domain.BalanceSheetSnapshot) (bool, error) {
	payload, err := json.Marshal(snapshot.Data)
	if err != nil {
		return false, fmt.Errorf("error marshaling snapshot payload: %w", err)
	}

	query := `
		INSERT INTO balance_sheets (year, financial_year, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (year) DO UPDATE
		SET financial_year = EXCLUDED.financial_year,
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0)`

	var created bool
	if err := r.Pool.QueryRow(ctx, query,
		snapshot.Year,
		snapshot.FinancialYear,
		payload,
		snapshot.UpdatedAt,
	).Scan(&created); err != nil {
		return false, fmt.Errorf("error upserting balance sheet snapshot: %w", err)
	}
	return created, nil
}

func (r *snapshotRepository) FindSnapshotByYear(ctx context.Context, year int) (*domain.BalanceSheetSnapshot, error) {
	query := `
		SELECT year, financial_year, data, created_at, updated_at
		FROM balance_sheets
		WHERE year = $1`

	var snapshot domain.BalanceSheetSnapshot
	var payload []byte
	err := r.Pool.QueryRow(ctx, query, year).Scan(
		&snapshot.Year,
		&snapshot.FinancialYear,
		&payload,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("snapshot for year %d: %w", year, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error querying balance sheet snapshot: %w", err)
	}
	if err := json.Unmarshal(payload, &snapshot.Data); err != nil {
		return nil, fmt.Errorf("error unmarshaling snapshot payload: %w", err)
	}
	return &snapshot, nil
}
