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

type agentRepo struct {
	pool *pgxpool.Pool
}

func NewAgentRepository(pool *pgxpool.Pool) ports.AgentRepository {
	return &agentRepo{pool: pool}
}

const agentColumns = `id, created_at, updated_at, contractor_id, name, email, phone, role, active`

func (r *agentRepo) Create(ctx context.Context, agent *domain.Agent) error {
	query := `
		INSERT INTO agents
			(id, created_at, updated_at, contractor_id, name, email, phone, role, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		agent.ID, agent.CreatedAt, agent.UpdatedAt, agent.ContractorID,
		agent.Name, agent.Email, agent.Phone, agent.Role, agent.Active,
	)
	if err != nil {
		return fmt.Errorf("create agent: %w", err)
	}
	return nil
}

func (r *agentRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Agent, error) {
	query := fmt.Sprintf(`SELECT %s FROM agents WHERE id = $1 AND contractor_id = $2`, agentColumns)
	a, err := scanAgent(r.pool.QueryRow(ctx, query, id, contractorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, fmt.Errorf("get agent by id: %w", err)
	}
	return a, nil
}

func (r *agentRepo) Update(ctx context.Context, contractorID uuid.UUID, agent *domain.Agent) error {
	query := `
		UPDATE agents
		SET name=$1, email=$2, phone=$3, role=$4, active=$5, updated_at=NOW()
		WHERE id=$6 AND contractor_id=$7
	`
	result, err := r.pool.Exec(ctx, query,
		agent.Name, agent.Email, agent.Phone, agent.Role, agent.Active,
		agent.ID, contractorID,
	)
	if err != nil {
		return fmt.Errorf("update agent: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}

func (r *agentRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM agents WHERE id=$1 AND contractor_id=$2`, id, contractorID)
	if err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}

func (r *agentRepo) List(ctx context.Context, filter ports.AgentListFilter) ([]*domain.Agent, int, error) {
	conditions := []string{"contractor_id = $1"}
	args := []interface{}{filter.ContractorID}
	argPos := 2

	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("active = $%d", argPos))
		args = append(args, *filter.Active)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR role ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM agents WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count agents: %w", err)
	}

	orderBy := "name ASC"
	if filter.SortBy != "" {
		orderBy = fmt.Sprintf("%s %s", sortColumn(filter.SortBy, agentSortColumns, "name"), sortDirection(filter.Order))
	}

	query := fmt.Sprintf(`
		SELECT %s FROM agents
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, agentColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()

	var agents []*domain.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan agent row: %w", err)
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate agent rows: %w", err)
	}

	return agents, total, nil
}

var agentSortColumns = map[string]bool{
	"name":       true,
	"role":       true,
	"created_at": true,
}

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	a := &domain.Agent{}
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.ContractorID,
		&a.Name, &a.Email, &a.Phone, &a.Role, &a.Active,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
