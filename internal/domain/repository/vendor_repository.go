package repository

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
)

// VendorProfileRepository define el puerto de persistencia para VendorProfile.
type VendorProfileRepository interface {
	Create(ctx context.Context, profile *entity.VendorProfile) error
	GetByID(ctx context.Context, id string) (*entity.VendorProfile, error)
	GetByAccountID(ctx context.Context, accountID string) (*entity.VendorProfile, error)
	Update(ctx context.Context, profile *entity.VendorProfile) error
	// List devuelve perfiles; con onlyVerified=true filtra a los verificados.
	List(ctx context.Context, onlyVerified bool, limit, offset int) ([]*entity.VendorProfile, error)
}
