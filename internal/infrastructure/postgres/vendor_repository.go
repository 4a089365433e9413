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

var _ repository.VendorProfileRepository = (*VendorProfileRepo)(nil)

// VendorProfileRepo implementación del puerto VendorProfileRepository sobre PostgreSQL.
type VendorProfileRepo struct {
	q Querier
}

// NewVendorProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorProfileRepository(q Querier) *VendorProfileRepo {
	return &VendorProfileRepo{q: q}
}

const vendorColumns = `id, account_id, name, contact_email, contact_phone, address, city, country,
		business_type, description, tax_id, payment_terms, is_verified, created_at, updated_at`

// Create persiste un nuevo perfil. El contact_email duplicado se traduce a ErrConflict.
func (r *VendorProfileRepo) Create(ctx context.Context, v *entity.VendorProfile) error {
	query := `
		INSERT INTO vendor_profiles (` + vendorColumns + `)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.AccountID, v.Name, v.ContactEmail, v.ContactPhone, v.Address, v.City, v.Country,
		v.BusinessType, v.Description, v.TaxID, v.PaymentTerms, v.IsVerified, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert vendor profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID.
func (r *VendorProfileRepo) GetByID(ctx context.Context, id string) (*entity.VendorProfile, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendor_profiles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByAccountID obtiene el perfil vinculado a una cuenta vendor.
func (r *VendorProfileRepo) GetByAccountID(ctx context.Context, accountID string) (*entity.VendorProfile, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendor_profiles WHERE account_id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, accountID))
}

// Update actualiza un perfil existente.
func (r *VendorProfileRepo) Update(ctx context.Context, v *entity.VendorProfile) error {
	query := `
		UPDATE vendor_profiles SET name = $2, contact_email = $3, contact_phone = $4, address = $5,
			city = $6, country = $7, business_type = $8, description = $9, tax_id = $10,
			payment_terms = $11, is_verified = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Name, v.ContactEmail, v.ContactPhone, v.Address, v.City, v.Country,
		v.BusinessType, v.Description, v.TaxID, v.PaymentTerms, v.IsVerified, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update vendor profile: %w", err)
	}
	return nil
}

// List lista perfiles con paginación; onlyVerified filtra el directorio público.
func (r *VendorProfileRepo) List(ctx context.Context, onlyVerified bool, limit, offset int) ([]*entity.VendorProfile, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendor_profiles
		WHERE ($1 = false OR is_verified)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, onlyVerified, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendor profiles: %w", err)
	}
	defer rows.Close()

	var out []*entity.VendorProfile
	for rows.Next() {
		v, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VendorProfileRepo) scanOne(row pgx.Row) (*entity.VendorProfile, error) {
	var v entity.VendorProfile
	var accountID *string
	err := row.Scan(
		&v.ID, &accountID, &v.Name, &v.ContactEmail, &v.ContactPhone, &v.Address, &v.City, &v.Country,
		&v.BusinessType, &v.Description, &v.TaxID, &v.PaymentTerms, &v.IsVerified, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor profile: %w", err)
	}
	if accountID != nil {
		v.AccountID = *accountID
	}
	return &v, nil
}

func (r *VendorProfileRepo) scanRow(rows pgx.Rows) (*entity.VendorProfile, error) {
	var v entity.VendorProfile
	var accountID *string
	err := rows.Scan(
		&v.ID, &accountID, &v.Name, &v.ContactEmail, &v.ContactPhone, &v.Address, &v.City, &v.Country,
		&v.BusinessType, &v.Description, &v.TaxID, &v.PaymentTerms, &v.IsVerified, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan vendor profile: %w", err)
	}
	if accountID != nil {
		v.AccountID = *accountID
	}
	return &v, nil
}
