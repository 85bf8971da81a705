package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type eventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) ports.EventRepository {
	return &eventRepo{pool: pool}
}

const eventColumns = `id, created_at, updated_at, contractor_id, agent_id, project_id, title, notes, starts_at, ends_at`

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events
			(id, created_at, updated_at, contractor_id, agent_id, project_id,
			 title, notes, starts_at, ends_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.CreatedAt, event.UpdatedAt, event.ContractorID,
		event.AgentID, event.ProjectID, event.Title, event.Notes,
		event.StartsAt, event.EndsAt,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1 AND contractor_id = $2`, eventColumns)
	e, err := scanEvent(r.pool.QueryRow(ctx, query, id, contractorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return e, nil
}

func (r *eventRepo) Update(ctx context.Context, contractorID uuid.UUID, event *domain.Event) error {
	query := `
		UPDATE events
		SET agent_id=$1, project_id=$2, title=$3, notes=$4,
			starts_at=$5, ends_at=$6, updated_at=NOW()
		WHERE id=$7 AND contractor_id=$8
	`
	result, err := r.pool.Exec(ctx, query,
		event.AgentID, event.ProjectID, event.Title, event.Notes,
		event.StartsAt, event.EndsAt, event.ID, contractorID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id=$1 AND contractor_id=$2`, id, contractorID)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepo) List(ctx context.Context, filter ports.EventListFilter) ([]*domain.Event, int, error) {
	conditions := []string{"contractor_id = $1"}
	args := []interface{}{filter.ContractorID}
	argPos := 2

	if filter.AgentID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("agent_id = $%d", argPos))
		args = append(args, filter.AgentID)
		argPos++
	}
	if filter.ProjectID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", argPos))
		args = append(args, filter.ProjectID)
		argPos++
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("ends_at > $%d", argPos))
		args = append(args, filter.From)
		argPos++
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("starts_at < $%d", argPos))
		args = append(args, filter.To)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR notes ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE %s
		ORDER BY starts_at ASC
		LIMIT $%d OFFSET $%d
	`, eventColumns, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate event rows: %w", err)
	}

	return events, total, nil
}

// ListOverlapping matches half-open intervals: an event overlaps
// [start, end) when it starts before end and ends after start.
func (r *eventRepo) ListOverlapping(ctx context.Context, contractorID, agentID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]*domain.Event, error) {
	conditions := []string{
		"contractor_id = $1",
		"agent_id = $2",
		"starts_at < $3",
		"ends_at > $4",
	}
	args := []interface{}{contractorID, agentID, end, start}

	if excludeID != uuid.Nil {
		conditions = append(conditions, "id <> $5")
		args = append(args, excludeID)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE %s
		ORDER BY starts_at ASC
	`, eventColumns, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list overlapping events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan overlapping event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate overlapping events: %w", err)
	}
	return events, nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.ContractorID,
		&e.AgentID, &e.ProjectID, &e.Title, &e.Notes,
		&e.StartsAt, &e.EndsAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}
