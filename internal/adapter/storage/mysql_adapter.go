package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/sntxs/sge-api-main/internal/core/domain"
)

// MySQL error numbers the adapter classifies into domain errors.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func isMySQLErr(err error, number uint16) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == number
}

// classify maps driver-level contention and constraint errors onto the
// domain taxonomy; anything else is wrapped as a storage failure.
func classify(err error, op string) error {
	switch {
	case isMySQLErr(err, mysqlErrLockWaitTimeout), isMySQLErr(err, mysqlErrDeadlock):
		return domain.ErrBusy
	case isMySQLErr(err, mysqlErrDuplicateEntry):
		return domain.ErrNameInUse
	case isMySQLErr(err, mysqlErrRowIsReferenced):
		return domain.ErrInUse
	}
	return fmt.Errorf("%s: %w", op, err)
}

// lockProduct reads the product's available quantity while taking the row
// lock that serializes stock-affecting operations on it.
func lockProduct(ctx context.Context, tx *sql.Tx, productID string) (int, error) {
	var quantity int
	err := tx.QueryRowContext(ctx,
		`SELECT quantity FROM products WHERE id = ? FOR UPDATE`, productID,
	).Scan(&quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrProductNotFound
	}
	if err != nil {
		return 0, classify(err, "lock product")
	}
	return quantity, nil
}

func (m *MySQLAdapter) CreateRequest(ctx context.Context, req domain.Request) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	available, err := lockProduct(ctx, tx, req.ProductID)
	if err != nil {
		return err
	}

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, req.UserID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return classify(err, "check user")
	}

	remaining, err := domain.DebitStock(available, req.Quantity)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO product_requests (id, user_id, product_id, quantity, created_at, delivered, delivered_at)
		VALUES (?, ?, ?, ?, ?, 0, NULL)`,
		req.ID, req.UserID, req.ProductID, req.Quantity, req.CreatedAt,
	)
	if err != nil {
		return classify(err, "insert request")
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products SET quantity = ? WHERE id = ?`, remaining, req.ProductID,
	)
	if err != nil {
		return classify(err, "update product quantity")
	}

	if err := tx.Commit(); err != nil {
		return classify(err, "commit")
	}
	return nil
}

const requestDetailColumns = `
	r.id, r.user_id, r.product_id, r.quantity, r.created_at, r.delivered, r.delivered_at,
	u.name, p.name, s.id, s.name, s.created_at, c.id, c.name
	FROM product_requests r
	JOIN users u ON r.user_id = u.id
	JOIN products p ON r.product_id = p.id
	JOIN sectors s ON u.sector_id = s.id
	JOIN categories c ON p.category_id = c.id`

func scanRequestDetail(row interface{ Scan(...any) error }) (*domain.RequestDetail, error) {
	var (
		d           domain.RequestDetail
		delivered   bool
		deliveredAt sql.NullTime
	)
	err := row.Scan(
		&d.ID, &d.UserID, &d.ProductID, &d.Quantity, &d.CreatedAt, &delivered, &deliveredAt,
		&d.UserName, &d.ProductName,
		&d.UserSector.ID, &d.UserSector.Name, &d.UserSector.CreatedAt,
		&d.CategoryID, &d.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	if delivered && deliveredAt.Valid {
		d.Delivery = domain.Delivered(deliveredAt.Time)
	}
	return &d, nil
}

func (m *MySQLAdapter) ListRequests(ctx context.Context) ([]domain.RequestDetail, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT`+requestDetailColumns)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close()

	var items []domain.RequestDetail
	for rows.Next() {
		d, err := scanRequestDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return items, nil
}

func (m *MySQLAdapter) GetRequest(ctx context.Context, id string) (*domain.RequestDetail, error) {
	row := m.db.QueryRowContext(ctx, `SELECT`+requestDetailColumns+` WHERE r.id = ?`, id)
	d, err := scanRequestDetail(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query request: %w", err)
	}
	return d, nil
}

// lockRequest reads the entry's product and quantity while taking its row
// lock. Lock order is always request first, product second.
func lockRequest(ctx context.Context, tx *sql.Tx, id string) (productID string, quantity int, err error) {
	err = tx.QueryRowContext(ctx,
		`SELECT product_id, quantity FROM product_requests WHERE id = ? FOR UPDATE`, id,
	).Scan(&productID, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, domain.ErrRequestNotFound
	}
	if err != nil {
		return "", 0, classify(err, "lock request")
	}
	return productID, quantity, nil
}

func (m *MySQLAdapter) UpdateRequestQuantity(ctx context.Context, id string, quantity int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	productID, oldQuantity, err := lockRequest(ctx, tx, id)
	if err != nil {
		return err
	}

	available, err := lockProduct(ctx, tx, productID)
	if err != nil {
		return err
	}

	// Positive delta returns stock to the pool, negative consumes more.
	remaining, err := domain.AdjustStock(available, oldQuantity-quantity)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE product_requests SET quantity = ? WHERE id = ?`, quantity, id,
	); err != nil {
		return classify(err, "update request")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE products SET quantity = ? WHERE id = ?`, remaining, productID,
	); err != nil {
		return classify(err, "update product quantity")
	}

	if err := tx.Commit(); err != nil {
		return classify(err, "commit")
	}
	return nil
}

func (m *MySQLAdapter) DeleteRequest(ctx context.Context, id string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	productID, quantity, err := lockRequest(ctx, tx, id)
	if err != nil {
		return err
	}

	available, err := lockProduct(ctx, tx, productID)
	if err != nil {
		return err
	}

	// Deleting restores the committed quantity even if the request was
	// already delivered.
	restored, err := domain.CreditStock(available, quantity)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM product_requests WHERE id = ?`, id,
	); err != nil {
		return classify(err, "delete request")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE products SET quantity = ? WHERE id = ?`, restored, productID,
	); err != nil {
		return classify(err, "update product quantity")
	}

	if err := tx.Commit(); err != nil {
		return classify(err, "commit")
	}
	return nil
}

func (m *MySQLAdapter) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	result, err := m.db.ExecContext(ctx,
		`UPDATE product_requests SET delivered = 1, delivered_at = ? WHERE id = ? AND delivered = 0`,
		at, id,
	)
	if err != nil {
		return classify(err, "mark delivered")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return m.deliveryConflict(ctx, id, true)
	}
	return nil
}

func (m *MySQLAdapter) CancelDelivery(ctx context.Context, id string) error {
	result, err := m.db.ExecContext(ctx,
		`UPDATE product_requests SET delivered = 0, delivered_at = NULL WHERE id = ? AND delivered = 1`,
		id,
	)
	if err != nil {
		return classify(err, "cancel delivery")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return m.deliveryConflict(ctx, id, false)
	}
	return nil
}

// deliveryConflict distinguishes a missing entry from one already in the
// target delivery state after a conditional update matched no rows.
func (m *MySQLAdapter) deliveryConflict(ctx context.Context, id string, wantDelivered bool) error {
	var delivered bool
	err := m.db.QueryRowContext(ctx,
		`SELECT delivered FROM product_requests WHERE id = ?`, id,
	).Scan(&delivered)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRequestNotFound
	}
	if err != nil {
		return classify(err, "check delivery state")
	}
	if wantDelivered {
		return domain.ErrAlreadyDelivered
	}
	return domain.ErrNotDelivered
}
