package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/auth"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

var _ procurement.TxRunner = (*TxRunner)(nil)
var _ auth.RegistrationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuoteDecision inicia una transacción con repos de cotizaciones y órdenes
// atados a ella, y hace Commit o Rollback. Es el soporte de la escritura dual
// de la aceptación: cotización y orden persisten juntas o ninguna.
func (r *TxRunner) RunQuoteDecision(ctx context.Context, fn func(
	quotes repository.QuoteRepository,
	orders repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuoteRepository(tx), NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistration inicia una transacción con repos de cuentas y perfiles para
// el alta cuenta+perfil del registro de vendors.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	accounts repository.AccountRepository,
	vendors repository.VendorProfileRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAccountRepository(tx), NewVendorProfileRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
