package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type achievementRepo struct {
	pool *pgxpool.Pool
}

func NewAchievementRepository(pool *pgxpool.Pool) ports.AchievementRepository {
	return &achievementRepo{pool: pool}
}

func (r *achievementRepo) ListDefinitions(ctx context.Context) ([]*domain.AchievementDefinition, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT code, name, description, points
		FROM achievement_definitions
		ORDER BY points ASC, code ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list achievement definitions: %w", err)
	}
	defer rows.Close()

	var definitions []*domain.AchievementDefinition
	for rows.Next() {
		def := &domain.AchievementDefinition{}
		if err := rows.Scan(&def.Code, &def.Name, &def.Description, &def.Points); err != nil {
			return nil, fmt.Errorf("scan achievement definition: %w", err)
		}
		definitions = append(definitions, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievement definitions: %w", err)
	}
	return definitions, nil
}

func (r *achievementRepo) ListEarned(ctx context.Context, contractorID uuid.UUID) ([]*domain.EarnedAchievement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT contractor_id, code, earned_at
		FROM contractor_achievements
		WHERE contractor_id=$1
		ORDER BY earned_at ASC
	`, contractorID)
	if err != nil {
		return nil, fmt.Errorf("list earned achievements: %w", err)
	}
	defer rows.Close()

	var earned []*domain.EarnedAchievement
	for rows.Next() {
		e := &domain.EarnedAchievement{}
		if err := rows.Scan(&e.ContractorID, &e.Code, &e.EarnedAt); err != nil {
			return nil, fmt.Errorf("scan earned achievement: %w", err)
		}
		earned = append(earned, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate earned achievements: %w", err)
	}
	return earned, nil
}

// Award inserts the earned record. The primary key on
// (contractor_id, code) makes re-awarding a no-op.
func (r *achievementRepo) Award(ctx context.Context, contractorID uuid.UUID, code domain.AchievementCode) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO contractor_achievements (contractor_id, code, earned_at)
		VALUES ($1, $2, NOW())
	`, contractorID, string(code))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return fmt.Errorf("award achievement: %w", err)
	}
	return nil
}
