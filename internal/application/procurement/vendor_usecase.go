package procurement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

// VendorUseCase directorio de proveedores: alta por manager, verificación,
// auto-actualización del vendor y listado.
type VendorUseCase struct {
	vendors repository.VendorProfileRepository
	indexer SearchIndexer
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(vendors repository.VendorProfileRepository, indexer SearchIndexer) *VendorUseCase {
	return &VendorUseCase{vendors: vendors, indexer: indexer}
}

// Create alta de perfil por un manager (sin cuenta asociada; nace sin verificar).
func (uc *VendorUseCase) Create(ctx context.Context, caller policy.Caller, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if d := policy.Authorize(caller, policy.ActionVendorCreate, policy.Resource{}); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	email := strings.ToLower(strings.TrimSpace(in.ContactEmail))
	if in.Name == "" || email == "" {
		return nil, domain.ErrValidation
	}
	now := time.Now()
	country := in.Country
	if country == "" {
		country = "USA"
	}
	terms := in.PaymentTerms
	if terms == "" {
		terms = "Net 30"
	}
	profile := &entity.VendorProfile{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ContactEmail: email,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		City:         in.City,
		Country:      country,
		BusinessType: in.BusinessType,
		Description:  in.Description,
		TaxID:        in.TaxID,
		PaymentTerms: terms,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.vendors.Create(ctx, profile); err != nil {
		return nil, err
	}
	uc.indexer.IndexVendor(ctx, profile)
	resp := toVendorDTO(profile)
	return &resp, nil
}

// Verify marca el perfil como verificado (solo manager). Es la llave que
// habilita al vendor a cotizar.
func (uc *VendorUseCase) Verify(ctx context.Context, caller policy.Caller, vendorID string) (*dto.VendorResponse, error) {
	if d := policy.Authorize(caller, policy.ActionVendorVerify, policy.Resource{}); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	profile, err := uc.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	profile.IsVerified = true
	profile.UpdatedAt = time.Now()
	if err := uc.vendors.Update(ctx, profile); err != nil {
		return nil, err
	}
	uc.indexer.IndexVendor(ctx, profile)
	resp := toVendorDTO(profile)
	return &resp, nil
}

// Update actualización parcial de campos no verificables. Manager cualquiera;
// vendor solo su propio perfil. El directorio es visible, así que la
// denegación aquí es Forbidden, no NotFound.
func (uc *VendorUseCase) Update(ctx context.Context, caller policy.Caller, vendorID string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	profile, err := uc.vendors.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if d := policy.Authorize(caller, policy.ActionVendorUpdate, policy.Resource{Vendor: profile}); !d.Allowed {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		profile.Name = *in.Name
	}
	if in.ContactPhone != nil {
		profile.ContactPhone = *in.ContactPhone
	}
	if in.Address != nil {
		profile.Address = *in.Address
	}
	if in.City != nil {
		profile.City = *in.City
	}
	if in.Country != nil {
		profile.Country = *in.Country
	}
	if in.BusinessType != nil {
		profile.BusinessType = *in.BusinessType
	}
	if in.Description != nil {
		profile.Description = *in.Description
	}
	if in.PaymentTerms != nil {
		profile.PaymentTerms = *in.PaymentTerms
	}
	profile.UpdatedAt = time.Now()
	if err := uc.vendors.Update(ctx, profile); err != nil {
		return nil, err
	}
	uc.indexer.IndexVendor(ctx, profile)
	resp := toVendorDTO(profile)
	return &resp, nil
}

// List directorio de proveedores: el manager ve todos; staff y vendors solo
// los verificados.
func (uc *VendorUseCase) List(ctx context.Context, caller policy.Caller, page dto.PageRequest) (*dto.VendorListResponse, error) {
	page.DefaultPage()
	onlyVerified := caller.Role() != entity.RoleManager
	list, err := uc.vendors.List(ctx, onlyVerified, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := lo.Map(list, func(v *entity.VendorProfile, _ int) dto.VendorResponse {
		return toVendorDTO(v)
	})
	return &dto.VendorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toVendorDTO(v *entity.VendorProfile) dto.VendorResponse {
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
