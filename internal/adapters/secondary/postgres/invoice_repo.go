package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"contractor-service/internal/core/domain"
	ports "contractor-service/internal/core/ports/output"
)

type invoiceRepo struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) ports.InvoiceRepository {
	return &invoiceRepo{pool: pool}
}

const invoiceColumns = `id, created_at, updated_at, contractor_id, client_id, project_id, estimate_id, number, status, total_cents, amount_paid_cents, issued_at, due_at`

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create invoice: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO invoices
			(id, created_at, updated_at, contractor_id, client_id, project_id,
			 estimate_id, number, status, total_cents, amount_paid_cents,
			 issued_at, due_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`
	_, err = tx.Exec(ctx, query,
		invoice.ID, invoice.CreatedAt, invoice.UpdatedAt,
		invoice.ContractorID, invoice.ClientID, invoice.ProjectID,
		invoice.EstimateID, invoice.Number, string(invoice.Status),
		invoice.TotalCents, invoice.AmountPaidCents,
		invoice.IssuedAt, invoice.DueAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrInvoiceNumberConflict
		}
		return fmt.Errorf("create invoice: %w", err)
	}

	if err := insertInvoiceItems(ctx, tx, invoice.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *invoiceRepo) GetByID(ctx context.Context, contractorID, id uuid.UUID) (*domain.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE id = $1 AND contractor_id = $2`, invoiceColumns)
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, id, contractorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}

	items, err := r.loadItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

func (r *invoiceRepo) Update(ctx context.Context, contractorID uuid.UUID, invoice *domain.Invoice) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update invoice: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE invoices
		SET status=$1, total_cents=$2, due_at=$3, updated_at=NOW()
		WHERE id=$4 AND contractor_id=$5
	`
	result, err := tx.Exec(ctx, query,
		string(invoice.Status), invoice.TotalCents, invoice.DueAt,
		invoice.ID, contractorID,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id=$1`, invoice.ID); err != nil {
		return fmt.Errorf("clear invoice items: %w", err)
	}
	if err := insertInvoiceItems(ctx, tx, invoice.Items); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *invoiceRepo) Delete(ctx context.Context, contractorID, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id=$1 AND contractor_id=$2`, id, contractorID)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) List(ctx context.Context, filter ports.InvoiceListFilter) ([]*domain.Invoice, int, error) {
	conditions := []string{"contractor_id = $1"}
	args := []interface{}{filter.ContractorID}
	argPos := 2

	if filter.ClientID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("client_id = $%d", argPos))
		args = append(args, filter.ClientID)
		argPos++
	}
	if filter.ProjectID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", argPos))
		args = append(args, filter.ProjectID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("number::text ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM invoices WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	orderBy := "number DESC"
	if filter.SortBy != "" {
		orderBy = fmt.Sprintf("%s %s", sortColumn(filter.SortBy, invoiceSortColumns, "number"), sortDirection(filter.Order))
	}

	query := fmt.Sprintf(`
		SELECT %s FROM invoices
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, invoiceColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate invoice rows: %w", err)
	}

	for _, inv := range invoices {
		items, err := r.loadItems(ctx, inv.ID)
		if err != nil {
			return nil, 0, err
		}
		inv.Items = items
	}

	return invoices, total, nil
}

// NextNumber allocates the next sequential invoice number per tenant.
// The (contractor_id, number) unique index catches the race between two
// concurrent allocations; callers see ErrInvoiceNumberConflict and retry.
func (r *invoiceRepo) NextNumber(ctx context.Context, contractorID uuid.UUID) (int, error) {
	var number int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(number), 0) + 1 FROM invoices WHERE contractor_id=$1`,
		contractorID,
	).Scan(&number)
	if err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return number, nil
}

func (r *invoiceRepo) UpdatePayment(ctx context.Context, contractorID, id uuid.UUID, amountPaidCents int64, status domain.InvoiceStatus) error {
	query := `
		UPDATE invoices
		SET amount_paid_cents=$1, status=$2, updated_at=NOW()
		WHERE id=$3 AND contractor_id=$4
	`
	result, err := r.pool.Exec(ctx, query, amountPaidCents, string(status), id, contractorID)
	if err != nil {
		return fmt.Errorf("update invoice payment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *invoiceRepo) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	query := `
		UPDATE invoices
		SET status=$1, updated_at=NOW()
		WHERE status IN ($2, $3) AND due_at < $4
	`
	result, err := r.pool.Exec(ctx, query,
		string(domain.InvoiceStatusOverdue),
		string(domain.InvoiceStatusPending),
		string(domain.InvoiceStatusPartiallyPaid),
		asOf,
	)
	if err != nil {
		return 0, fmt.Errorf("mark invoices overdue: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *invoiceRepo) loadItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, invoice_id, description, quantity, unit_price_cents
		FROM invoice_items
		WHERE invoice_id=$1
		ORDER BY created_at
	`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("load invoice items: %w", err)
	}
	defer rows.Close()

	var items []domain.InvoiceItem
	for rows.Next() {
		var item domain.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice items: %w", err)
	}
	return items, nil
}

func insertInvoiceItems(ctx context.Context, tx pgx.Tx, items []domain.InvoiceItem) error {
	for _, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price_cents)
			VALUES ($1,$2,$3,$4,$5)
		`, item.ID, item.InvoiceID, item.Description, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}
	return nil
}

var invoiceSortColumns = map[string]bool{
	"number":      true,
	"status":      true,
	"total_cents": true,
	"issued_at":   true,
	"due_at":      true,
	"created_at":  true,
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	inv := &domain.Invoice{}
	err := row.Scan(
		&inv.ID, &inv.CreatedAt, &inv.UpdatedAt, &inv.ContractorID,
		&inv.ClientID, &inv.ProjectID, &inv.EstimateID, &inv.Number,
		&inv.Status, &inv.TotalCents, &inv.AmountPaidCents,
		&inv.IssuedAt, &inv.DueAt,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}
