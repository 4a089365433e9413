package auth

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// Resolver carga la identidad del caller a partir del subject ya verificado
// por el middleware JWT. No valida firmas ni expiración: eso es del borde.
type Resolver struct {
	accounts repository.AccountRepository
	vendors  repository.VendorProfileRepository
}

// NewResolver construye el resolver de identidad.
func NewResolver(accounts repository.AccountRepository, vendors repository.VendorProfileRepository) *Resolver {
	return &Resolver{accounts: accounts, vendors: vendors}
}

// Resolve devuelve el Caller para el subject: cuenta activa y, si el rol es
// vendor, su perfil vinculado (nil si no existe; las reglas de policy lo
// tratan como denegación o listado vacío, nunca como crash).
func (r *Resolver) Resolve(ctx context.Context, subjectID string) (policy.Caller, error) {
	account, err := r.accounts.GetByID(ctx, subjectID)
	if err != nil {
		return policy.Caller{}, err
	}
	if account == nil || !account.Active() {
		return policy.Caller{}, domain.ErrAccountNotFound
	}
	caller := policy.Caller{Account: account}
	if account.Role == entity.RoleVendor {
		profile, err := r.vendors.GetByAccountID(ctx, account.ID)
		if err != nil {
			return policy.Caller{}, err
		}
		caller.Vendor = profile
	}
	return caller, nil
}
