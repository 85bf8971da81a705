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

type clientRepo struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) ports.ClientRepository {
	return &clientRepo{pool: pool}
}

const clientColumns = `id, created_at, updated_at, contractor_id, name, company, email, phone, address, notes`

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients
			(id, created_at, updated_at, contractor_id, name, company,
			 email, phone, address, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.pool.Exec(ctx, query,
		client.ID, client.CreatedAt, client.UpdatedAt, client.ContractorID,
		client.Name, client.Company, client.Email, client.Phone,
		client.Address, client.Notes,
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Client, error) {
	query := fmt.Sprintf(`SELECT %s FROM clients WHERE id = $1 AND contractor_id = $2`, clientColumns)
	c, err := scanClient(r.pool.QueryRow(ctx, query, id, contractorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("get client by id: %w", err)
	}
	return c, nil
}

func (r *clientRepo) Update(ctx context.Context, contractorID uuid.UUID, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name=$1, company=$2, email=$3, phone=$4, address=$5, notes=$6,
			updated_at=NOW()
		WHERE id=$7 AND contractor_id=$8
	`
	result, err := r.pool.Exec(ctx, query,
		client.Name, client.Company, client.Email, client.Phone,
		client.Address, client.Notes, client.ID, contractorID,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1 AND contractor_id=$2`, id, contractorID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *clientRepo) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Client, int, error) {
	conditions := []string{"contractor_id = $1"}
	args := []interface{}{filter.ContractorID}
	argPos := 2

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR company ILIKE $%d OR email ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM clients WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clients: %w", err)
	}

	orderBy := "created_at DESC"
	if filter.SortBy != "" {
		orderBy = fmt.Sprintf("%s %s", sortColumn(filter.SortBy, clientSortColumns, "created_at"), sortDirection(filter.Order))
	}

	query := fmt.Sprintf(`
		SELECT %s FROM clients
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, clientColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate client rows: %w", err)
	}

	return clients, total, nil
}

var clientSortColumns = map[string]bool{
	"name":       true,
	"company":    true,
	"created_at": true,
	"updated_at": true,
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	c := &domain.Client{}
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.ContractorID,
		&c.Name, &c.Company, &c.Email, &c.Phone, &c.Address, &c.Notes,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
