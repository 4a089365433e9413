package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegistrationTxRunner ejecuta el alta cuenta+perfil dentro de una transacción.
// Lo implementa postgres.TxRunner.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		accounts repository.AccountRepository,
		vendors repository.VendorProfileRepository,
	) error) error
}

// AuthUseCase casos de uso de identidad: registro de proveedores, login y
// administración de cuentas internas por managers.
type AuthUseCase struct {
	accounts repository.AccountRepository
	vendors  repository.VendorProfileRepository
	tx       RegistrationTxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountRepository, vendors repository.VendorProfileRepository, tx RegistrationTxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, vendors: vendors, tx: tx, jwtCfg: jwtCfg}
}

// RegisterVendor crea la cuenta vendor y su perfil sin verificar, atómicamente.
// Email duplicado ⇒ ErrEmailAlreadyExists (constraint de la DB como respaldo).
func (uc *AuthUseCase) RegisterVendor(ctx context.Context, in dto.RegisterVendorRequest) (*dto.RegisterVendorResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrValidation
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrValidation
	}
	existing, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleVendor,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	country := in.Country
	if country == "" {
		country = "USA"
	}
	profile := &entity.VendorProfile{
		ID:           uuid.New().String(),
		AccountID:    account.ID,
		Name:         in.Name,
		ContactEmail: email,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		City:         in.City,
		Country:      country,
		BusinessType: in.BusinessType,
		TaxID:        in.TaxID,
		PaymentTerms: "Net 30",
		IsVerified:   false, // solo un manager verifica
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.RunRegistration(ctx, func(accounts repository.AccountRepository, vendors repository.VendorProfileRepository) error {
		if err := accounts.Create(ctx, account); err != nil {
			return err
		}
		return vendors.Create(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterVendorResponse{
		User:   *toAccountResponse(account),
		Vendor: toVendorResponse(profile),
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + cuenta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	account, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !account.Active() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toAccountResponse(account)}, nil
}

// CreateAccount alta de cuenta interna (manager o staff) por un manager.
func (uc *AuthUseCase) CreateAccount(ctx context.Context, caller policy.Caller, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if d := policy.Authorize(caller, policy.ActionAccountCreate, policy.Resource{}); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || len(in.Password) < 8 {
		return nil, domain.ErrValidation
	}
	if in.Role != entity.RoleManager && in.Role != entity.RoleStaff {
		// Las cuentas vendor nacen por el registro público, con perfil.
		return nil, domain.ErrValidation
	}
	existing, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = email
	}
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// DeactivateAccount baja lógica de una cuenta por un manager. Las cuentas
// referenciadas por órdenes o asignaciones no se borran físicamente.
func (uc *AuthUseCase) DeactivateAccount(ctx context.Context, caller policy.Caller, accountID string) error {
	if d := policy.Authorize(caller, policy.ActionAccountDelete, policy.Resource{}); !d.Allowed {
		return domain.ErrForbidden
	}
	account, err := uc.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	account.Status = "inactive"
	account.UpdatedAt = time.Now()
	return uc.accounts.Update(ctx, account)
}

// Me devuelve la cuenta del caller ya resuelto.
func (uc *AuthUseCase) Me(caller policy.Caller) *dto.AccountResponse {
	return toAccountResponse(caller.Account)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toVendorResponse(v *entity.VendorProfile) dto.VendorResponse {
	return dto.VendorResponse{
		ID:           v.ID,
		AccountID:    v.AccountID,
		Name:         v.Name,
		ContactEmail: v.ContactEmail,
		ContactPhone: v.ContactPhone,
		Address:      v.Address,
		City:         v.City,
		Country:      v.Country,
		BusinessType: v.BusinessType,
		Description:  v.Description,
		TaxID:        v.TaxID,
		PaymentTerms: v.PaymentTerms,
		IsVerified:   v.IsVerified,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
