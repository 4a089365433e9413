package repository

import (
	"context"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// Las consultas que no encuentran fila devuelven (nil, nil).
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	Update(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id string) error
}
