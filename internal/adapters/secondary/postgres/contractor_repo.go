package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type contractorRepo struct {
	pool *pgxpool.Pool
}

func NewContractorRepository(pool *pgxpool.Pool) ports.ContractorRepository {
	return &contractorRepo{pool: pool}
}

func (r *contractorRepo) Create(ctx context.Context, contractor *domain.Contractor) error {
	query := `
		INSERT INTO contractors
			(id, created_at, updated_at, company_name, email, phone,
			 plan, subscription_status, renews_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		contractor.ID, contractor.CreatedAt, contractor.UpdatedAt,
		contractor.CompanyName, contractor.Email, contractor.Phone,
		string(contractor.Plan), string(contractor.SubscriptionStatus), contractor.RenewsAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrContractorEmailConflict
		}
		return fmt.Errorf("create contractor: %w", err)
	}
	return nil
}

func (r *contractorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	query := `
		SELECT id, created_at, updated_at, company_name, email, phone,
			   plan, subscription_status, renews_at
		FROM contractors
		WHERE id = $1
	`
	c := &domain.Contractor{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.CompanyName, &c.Email, &c.Phone,
		&c.Plan, &c.SubscriptionStatus, &c.RenewsAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContractorNotFound
		}
		return nil, fmt.Errorf("get contractor by id: %w", err)
	}
	return c, nil
}

func (r *contractorRepo) UpdateSubscription(ctx context.Context, id uuid.UUID, plan domain.Plan, status domain.SubscriptionStatus, renewsAt *time.Time) error {
	query := `
		UPDATE contractors
		SET plan=$1, subscription_status=$2, renews_at=$3, updated_at=NOW()
		WHERE id=$4
	`
	result, err := r.pool.Exec(ctx, query, string(plan), string(status), renewsAt, id)
	if err != nil {
		return fmt.Errorf("update contractor subscription: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrContractorNotFound
	}
	return nil
}

func (r *contractorRepo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM contractors ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list contractor ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan contractor id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contractor ids: %w", err)
	}
	return ids, nil
}
