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

type projectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ports.ProjectRepository {
	return &projectRepo{pool: pool}
}

const projectColumns = `id, created_at, updated_at, contractor_id, client_id, name, description, status, budget_cents, starts_at, ends_at`

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects
			(id, created_at, updated_at, contractor_id, client_id, name,
			 description, status, budget_cents, starts_at, ends_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err := r.pool.Exec(ctx, query,
		project.ID, project.CreatedAt, project.UpdatedAt,
		project.ContractorID, project.ClientID, project.Name,
		project.Description, string(project.Status), project.BudgetCents,
		project.StartsAt, project.EndsAt,
	)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1 AND contractor_id = $2`, projectColumns)
	p, err := scanProject(r.pool.QueryRow(ctx, query, id, contractorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return p, nil
}

func (r *projectRepo) Update(ctx context.Context, contractorID uuid.UUID, project *domain.Project) error {
	query := `
		UPDATE projects
		SET name=$1, description=$2, status=$3, budget_cents=$4,
			starts_at=$5, ends_at=$6, updated_at=NOW()
		WHERE id=$7 AND contractor_id=$8
	`
	result, err := r.pool.Exec(ctx, query,
		project.Name, project.Description, string(project.Status),
		project.BudgetCents, project.StartsAt, project.EndsAt,
		project.ID, contractorID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1 AND contractor_id=$2`, id, contractorID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepo) List(ctx context.Context, filter ports.ProjectListFilter) ([]*domain.Project, int, error) {
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
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM projects WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	orderBy := "created_at DESC"
	if filter.SortBy != "" {
		orderBy = fmt.Sprintf("%s %s", sortColumn(filter.SortBy, projectSortColumns, "created_at"), sortDirection(filter.Order))
	}

	query := fmt.Sprintf(`
		SELECT %s FROM projects
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, projectColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate project rows: %w", err)
	}

	return projects, total, nil
}

func (r *projectRepo) CountByClient(ctx context.Context, contractorID, clientID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects WHERE contractor_id=$1 AND client_id=$2`,
		contractorID, clientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count projects by client: %w", err)
	}
	return count, nil
}

var projectSortColumns = map[string]bool{
	"name":       true,
	"status":     true,
	"starts_at":  true,
	"created_at": true,
	"updated_at": true,
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	p := &domain.Project{}
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.ContractorID, &p.ClientID,
		&p.Name, &p.Description, &p.Status, &p.BudgetCents,
		&p.StartsAt, &p.EndsAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
