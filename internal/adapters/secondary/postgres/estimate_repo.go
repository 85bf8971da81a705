package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type estimateRepo struct {
	pool *pgxpool.Pool
}

func NewEstimateRepository(pool *pgxpool.Pool) ports.EstimateRepository {
	return &estimateRepo{pool: pool}
}

const estimateColumns = `id, created_at, updated_at, contractor_id, client_id, project_id, title, notes, status, total_cents, valid_until`

// Create inserts the estimate header and its items in one transaction.
func (r *estimateRepo) Create(ctx context.Context, estimate *domain.Estimate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create estimate: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO estimates
			(id, created_at, updated_at, contractor_id, client_id, project_id,
			 title, notes, status, total_cents, valid_until)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err = tx.Exec(ctx, query,
		estimate.ID, estimate.CreatedAt, estimate.UpdatedAt,
		estimate.ContractorID, estimate.ClientID, estimate.ProjectID,
		estimate.Title, estimate.Notes, string(estimate.Status),
		estimate.TotalCents, estimate.ValidUntil,
	)
	if err != nil {
		return fmt.Errorf("create estimate: %w", err)
	}

	if err := insertEstimateItems(ctx, tx, estimate.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *estimateRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Estimate, error) {
	query := fmt.Sprintf(`SELECT %s FROM estimates WHERE id = $1 AND contractor_id = $2`, estimateColumns)
	e, err := scanEstimate(r.pool.QueryRow(ctx, query, id, contractorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEstimateNotFound
		}
		return nil, fmt.Errorf("get estimate by id: %w", err)
	}

	items, err := r.loadItems(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	e.Items = items
	return e, nil
}

// Update rewrites the header and replaces the item set in one
// transaction.
func (r *estimateRepo) Update(ctx context.Context, contractorID uuid.UUID, estimate *domain.Estimate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update estimate: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE estimates
		SET title=$1, notes=$2, status=$3, project_id=$4, total_cents=$5,
			valid_until=$6, updated_at=NOW()
		WHERE id=$7 AND contractor_id=$8
	`
	result, err := tx.Exec(ctx, query,
		estimate.Title, estimate.Notes, string(estimate.Status),
		estimate.ProjectID, estimate.TotalCents, estimate.ValidUntil,
		estimate.ID, contractorID,
	)
	if err != nil {
		return fmt.Errorf("update estimate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEstimateNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM estimate_items WHERE estimate_id=$1`, estimate.ID); err != nil {
		return fmt.Errorf("clear estimate items: %w", err)
	}
	if err := insertEstimateItems(ctx, tx, estimate.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *estimateRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM estimates WHERE id=$1 AND contractor_id=$2`, id, contractorID)
	if err != nil {
		return fmt.Errorf("delete estimate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEstimateNotFound
	}
	return nil
}

func (r *estimateRepo) List(ctx context.Context, filter ports.EstimateListFilter) ([]*domain.Estimate, int, error) {
	conditions := []string{"contractor_id = $1"}
	args := []interface{}{filter.ContractorID}
	argPos := 2

	if filter.ClientID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", argPos))
		args = append(args, filter.ClientID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM estimates WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count estimates: %w", err)
	}

	orderBy := "created_at DESC"
	if filter.SortBy != "" {
		orderBy = fmt.Sprintf("%s %s", sortColumn(filter.SortBy, estimateSortColumns, "created_at"), sortDirection(filter.Order))
	}

	query := fmt.Sprintf(`
		SELECT %s FROM estimates
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, estimateColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list estimates: %w", err)
	}
	defer rows.Close()

	var estimates []*domain.Estimate
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan estimate row: %w", err)
		}
		estimates = append(estimates, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate estimate rows: %w", err)
	}

	for _, e := range estimates {
		items, err := r.loadItems(ctx, e.ID)
		if err != nil {
			return nil, 0, err
		}
		e.Items = items
	}

	return estimates, total, nil
}

func (r *estimateRepo) loadItems(ctx context.Context, estimateID uuid.UUID) ([]domain.EstimateItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, estimate_id, description, quantity, unit_price_cents
		FROM estimate_items
		WHERE estimate_id=$1
		ORDER BY created_at
	`, estimateID)
	if err != nil {
		return nil, fmt.Errorf("load estimate items: %w", err)
	}
	defer rows.Close()

	var items []domain.EstimateItem
	for rows.Next() {
		var item domain.EstimateItem
		if err := rows.Scan(&item.ID, &item.EstimateID, &item.Description, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan estimate item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate estimate items: %w", err)
	}
	return items, nil
}

func insertEstimateItems(ctx context.Context, tx pgx.Tx, items []domain.EstimateItem) error {
	for _, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO estimate_items (id, estimate_id, description, quantity, unit_price_cents)
			VALUES ($1,$2,$3,$4,$5)
		`, item.ID, item.EstimateID, item.Description, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return fmt.Errorf("insert estimate item: %w", err)
		}
	}
	return nil
}

var estimateSortColumns = map[string]bool{
	"title":       true,
	"status":      true,
	"total_cents": true,
	"created_at":  true,
	"updated_at":  true,
}

func scanEstimate(row pgx.Row) (*domain.Estimate, error) {
	e := &domain.Estimate{}
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.ContractorID, &e.ClientID,
		&e.ProjectID, &e.Title, &e.Notes, &e.Status, &e.TotalCents,
		&e.ValidUntil,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}
