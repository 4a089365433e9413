package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta. El email duplicado se traduce a ErrEmailAlreadyExists.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Email, a.PasswordHash, a.Name, a.Role, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, name, role, status, created_at, updated_at
		FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// GetByEmail obtiene una cuenta por email (login).
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := `
		SELECT id, email, password_hash, name, role, status, created_at, updated_at
		FROM accounts WHERE email = $1`
	var a entity.Account
	err := r.q.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return &a, nil
}

// Update actualiza una cuenta existente (incluye el soft-delete vía status).
func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	query := `
		UPDATE accounts SET email = $2, password_hash = $3, name = $4, role = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Email, a.PasswordHash, a.Name, a.Role, a.Status, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// Delete elimina físicamente una cuenta. Las cuentas referenciadas por
// órdenes o asignaciones no pasan por aquí: se desactivan vía Update.
func (r *AccountRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
