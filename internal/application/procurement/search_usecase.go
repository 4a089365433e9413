package procurement

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/dto"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/policy"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/repository"
)

const searchLimitPerType = 20

// SearchUseCase búsqueda naive por palabra clave sobre la DB (ILIKE) y
// conteos de dashboard. Ambos respetan el alcance del rol: nada aparece en
// los resultados que el caller no podría leer directamente.
type SearchUseCase struct {
	stats repository.StatsRepository
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(stats repository.StatsRepository) *SearchUseCase {
	return &SearchUseCase{stats: stats}
}

// foldTransformer descompone y descarta marcas diacríticas para que
// "camión" matchee "camion" y viceversa.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un término de búsqueda: minúsculas y sin diacríticos.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// Search ejecuta la búsqueda por palabra clave en vendors, órdenes y
// cotizaciones, cada colección acotada al alcance del rol del caller.
func (uc *SearchUseCase) Search(ctx context.Context, caller policy.Caller, query string) (*dto.SearchResponse, error) {
	term := Fold(strings.TrimSpace(query))
	if term == "" {
		return nil, domain.ErrValidation
	}
	pattern := "%" + term + "%"
	hits := make([]dto.SearchHitResponse, 0, searchLimitPerType)

	onlyVerified := caller.Role() != entity.RoleManager
	vendors, err := uc.stats.SearchVendors(ctx, pattern, onlyVerified, searchLimitPerType)
	if err != nil {
		return nil, err
	}
	for _, v := range vendors {
		hits = append(hits, dto.SearchHitResponse{
			ObjectID: "vendor_" + v.ID,
			Type:     "vendor",
			Name:     v.Name,
		})
	}

	orderScope := policy.OrderListScope(caller)
	if !orderScope.Empty {
		orders, err := uc.stats.SearchOrders(ctx, pattern, orderScope, searchLimitPerType)
		if err != nil {
			return nil, err
		}
		for _, o := range orders {
			hits = append(hits, dto.SearchHitResponse{
				ObjectID: "order_" + o.ID,
				Type:     "order",
				Name:     o.SpecialInstructions,
				Status:   o.Status,
			})
		}
	}

	quoteScope := policy.QuoteListScope(caller)
	if !quoteScope.Empty {
		quotes, err := uc.stats.SearchQuotes(ctx, pattern, quoteScope, searchLimitPerType)
		if err != nil {
			return nil, err
		}
		for _, q := range quotes {
			hits = append(hits, dto.SearchHitResponse{
				ObjectID: "quote_" + q.ID,
				Type:     "quote",
				Name:     q.Notes,
				Status:   q.Status,
			})
		}
	}

	return &dto.SearchResponse{Hits: hits}, nil
}

// Dashboard conteos por estado de órdenes y cotizaciones dentro del alcance
// del caller. Un vendor sin perfil recibe mapas vacíos, no un error.
func (uc *SearchUseCase) Dashboard(ctx context.Context, caller policy.Caller) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{
		Role:   caller.Role(),
		Orders: map[string]int{},
	}

	orderScope := policy.OrderListScope(caller)
	if !orderScope.Empty {
		counts, err := uc.stats.CountOrdersByStatus(ctx, orderScope)
		if err != nil {
			return nil, err
		}
		resp.Orders = counts
	}

	quoteScope := policy.QuoteListScope(caller)
	if !quoteScope.Empty {
		counts, err := uc.stats.CountQuotesByStatus(ctx, quoteScope)
		if err != nil {
			return nil, err
		}
		resp.Quotes = counts
	}

	return resp, nil
}
