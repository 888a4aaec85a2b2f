package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sntxs/sge-api-main/internal/core/domain"
)

// Catalog CRUD. Name uniqueness is enforced by unique indexes and surfaces
// as domain.ErrNameInUse; dangling references surface through foreign keys.

func (m *MySQLAdapter) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, category_id, user_id, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.CategoryID, p.UserID, p.Quantity, p.CreatedAt,
	)
	if err != nil {
		if isMySQLErr(err, mysqlErrNoReferencedRow) {
			return domain.ErrUserNotFound
		}
		return classify(err, "insert product")
	}
	return nil
}

func (m *MySQLAdapter) ListProducts(ctx context.Context) ([]domain.ProductDetail, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.description, p.category_id, p.user_id, p.quantity, p.created_at, u.name
		FROM products p JOIN users u ON p.user_id = u.id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var items []domain.ProductDetail
	for rows.Next() {
		var d domain.ProductDetail
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CategoryID,
			&d.UserID, &d.Quantity, &d.CreatedAt, &d.UserName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return items, nil
}

func (m *MySQLAdapter) GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error) {
	var d domain.ProductDetail
	err := m.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, p.description, p.category_id, p.user_id, p.quantity, p.created_at, u.name
		FROM products p JOIN users u ON p.user_id = u.id
		WHERE p.id = ?`, id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.CategoryID,
		&d.UserID, &d.Quantity, &d.CreatedAt, &d.UserName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &d, nil
}

func (m *MySQLAdapter) UpdateProduct(ctx context.Context, p domain.Product) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE products SET name = ?, description = ?, category_id = ?, quantity = ?
		WHERE id = ?`,
		p.Name, p.Description, p.CategoryID, p.Quantity, p.ID,
	)
	if err != nil {
		return classify(err, "update product")
	}
	return m.ensureExists(ctx, result, `SELECT 1 FROM products WHERE id = ?`, p.ID, domain.ErrProductNotFound)
}

func (m *MySQLAdapter) DeleteProduct(ctx context.Context, id string) error {
	result, err := m.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return classify(err, "delete product")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (m *MySQLAdapter) CreateUser(ctx context.Context, u domain.User) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, phone_number, cpf, username, password_hash, is_admin, sector_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PhoneNumber, u.Cpf, u.Username, u.PasswordHash,
		u.IsAdmin, u.SectorID, u.CreatedAt,
	)
	if err != nil {
		if isMySQLErr(err, mysqlErrNoReferencedRow) {
			return domain.ErrSectorNotFound
		}
		return classify(err, "insert user")
	}
	return nil
}

const userDetailColumns = `
	u.id, u.name, u.email, u.phone_number, u.cpf, u.username, u.password_hash, u.is_admin, u.sector_id, u.created_at,
	s.id, s.name, s.created_at
	FROM users u JOIN sectors s ON u.sector_id = s.id`

func (m *MySQLAdapter) ListUsers(ctx context.Context) ([]domain.UserDetail, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT`+userDetailColumns)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var items []domain.UserDetail
	for rows.Next() {
		var d domain.UserDetail
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.PhoneNumber, &d.Cpf,
			&d.Username, &d.PasswordHash, &d.IsAdmin, &d.SectorID, &d.CreatedAt,
			&d.Sector.ID, &d.Sector.Name, &d.Sector.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return items, nil
}

func (m *MySQLAdapter) GetUser(ctx context.Context, id string) (*domain.UserDetail, error) {
	var d domain.UserDetail
	err := m.db.QueryRowContext(ctx, `SELECT`+userDetailColumns+` WHERE u.id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Email, &d.PhoneNumber, &d.Cpf,
			&d.Username, &d.PasswordHash, &d.IsAdmin, &d.SectorID, &d.CreatedAt,
			&d.Sector.ID, &d.Sector.Name, &d.Sector.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &d, nil
}

func (m *MySQLAdapter) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone_number, cpf, username, password_hash, is_admin, sector_id, created_at
		FROM users WHERE username = ?`, username,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.Cpf,
		&u.Username, &u.PasswordHash, &u.IsAdmin, &u.SectorID, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by username: %w", err)
	}
	return &u, nil
}

func (m *MySQLAdapter) UpdateUser(ctx context.Context, u domain.User) error {
	result, err := m.db.ExecContext(ctx, `
		UPDATE users SET name = ?, email = ?, phone_number = ?, cpf = ?, username = ?,
			password_hash = ?, is_admin = ?, sector_id = ?
		WHERE id = ?`,
		u.Name, u.Email, u.PhoneNumber, u.Cpf, u.Username,
		u.PasswordHash, u.IsAdmin, u.SectorID, u.ID,
	)
	if err != nil {
		if isMySQLErr(err, mysqlErrNoReferencedRow) {
			return domain.ErrSectorNotFound
		}
		return classify(err, "update user")
	}
	return m.ensureExists(ctx, result, `SELECT 1 FROM users WHERE id = ?`, u.ID, domain.ErrUserNotFound)
}

func (m *MySQLAdapter) DeleteUser(ctx context.Context, id string) error {
	result, err := m.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return classify(err, "delete user")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (m *MySQLAdapter) CreateSector(ctx context.Context, s domain.Sector) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO sectors (id, name, created_at) VALUES (?, ?, ?)`,
		s.ID, s.Name, s.CreatedAt,
	)
	if err != nil {
		return classify(err, "insert sector")
	}
	return nil
}

func (m *MySQLAdapter) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT id, name, created_at FROM sectors`)
	if err != nil {
		return nil, fmt.Errorf("query sectors: %w", err)
	}
	defer rows.Close()

	var items []domain.Sector
	for rows.Next() {
		var s domain.Sector
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sector: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sectors: %w", err)
	}
	return items, nil
}

func (m *MySQLAdapter) GetSector(ctx context.Context, id string) (*domain.Sector, error) {
	var s domain.Sector
	err := m.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM sectors WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrSectorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query sector: %w", err)
	}
	return &s, nil
}

func (m *MySQLAdapter) UpdateSector(ctx context.Context, s domain.Sector) error {
	result, err := m.db.ExecContext(ctx,
		`UPDATE sectors SET name = ? WHERE id = ?`, s.Name, s.ID,
	)
	if err != nil {
		return classify(err, "update sector")
	}
	return m.ensureExists(ctx, result, `SELECT 1 FROM sectors WHERE id = ?`, s.ID, domain.ErrSectorNotFound)
}

func (m *MySQLAdapter) DeleteSector(ctx context.Context, id string) error {
	result, err := m.db.ExecContext(ctx, `DELETE FROM sectors WHERE id = ?`, id)
	if err != nil {
		return classify(err, "delete sector")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrSectorNotFound
	}
	return nil
}

func (m *MySQLAdapter) CreateCategory(ctx context.Context, c domain.Category) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`,
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		return classify(err, "insert category")
	}
	return nil
}

func (m *MySQLAdapter) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT id, name, created_at FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var items []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return items, nil
}

func (m *MySQLAdapter) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := m.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query category: %w", err)
	}
	return &c, nil
}

func (m *MySQLAdapter) UpdateCategory(ctx context.Context, c domain.Category) error {
	result, err := m.db.ExecContext(ctx,
		`UPDATE categories SET name = ? WHERE id = ?`, c.Name, c.ID,
	)
	if err != nil {
		return classify(err, "update category")
	}
	return m.ensureExists(ctx, result, `SELECT 1 FROM categories WHERE id = ?`, c.ID, domain.ErrCategoryNotFound)
}

func (m *MySQLAdapter) DeleteCategory(ctx context.Context, id string) error {
	result, err := m.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return classify(err, "delete category")
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// ensureExists classifies a zero-row UPDATE: a row that exists but did not
// change is a success, a missing row is the given not-found error.
func (m *MySQLAdapter) ensureExists(ctx context.Context, result sql.Result, query, id string, notFound error) error {
	if rows, _ := result.RowsAffected(); rows > 0 {
		return nil
	}
	var one int
	err := m.db.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if err != nil {
		return fmt.Errorf("check existence: %w", err)
	}
	return nil
}
