package lead

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SiteOpsService/internal/domain"
	"github.com/m04kA/SMC-SiteOpsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SiteOpsService/pkg/psqlbuilder"
)

// Repository Postgres-репозиторий архива заявок
// Используется, когда storage.driver = "postgres"
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую заявку
func (r *Repository) Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("leads").
		Columns(
			"id",
			"name",
			"email",
			"phone",
			"project_type",
			"message",
			"source",
			"status",
		).
		Values(
			lead.ID,
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.ProjectType,
			lead.Message,
			lead.Source,
			lead.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	lead.CreatedAt = createdAt.Time
	lead.UpdatedAt = updatedAt.Time

	return lead, nil
}

// List возвращает все заявки, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Lead, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"project_type",
		"message",
		"source",
		"status",
		"created_at",
		"updated_at",
	).
		From("leads").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		var lead domain.Lead
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.ProjectType,
			&lead.Message,
			&lead.Source,
			&lead.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan lead: %v", ErrScanRow, err)
		}

		lead.CreatedAt = createdAt.Time
		lead.UpdatedAt = updatedAt.Time
		leads = append(leads, &lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return leads, nil
}

// UpdateStatus меняет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("leads").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrLeadNotFound
	}

	return nil
}
