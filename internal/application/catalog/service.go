package catalog

import (
	"context"

	"github.com/goldworks/terminal/internal/domain/catalog"
)

// Service exposes catalog reads from the back office, shaped for the
// terminal's selection lists.
type Service struct {
	gateway catalog.Gateway
}

// NewService creates a catalog service
func NewService(gateway catalog.Gateway) *Service {
	return &Service{gateway: gateway}
}

// ListMaterials returns all materials.
func (s *Service) ListMaterials(ctx context.Context) ([]MaterialResponse, error) {
	materials, err := s.gateway.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, ToMaterialResponse(m))
	}
	return out, nil
}

// ListProducts returns products. With sellableOnly set, products at
// zero stock are filtered out so they are never offered for sale.
func (s *Service) ListProducts(ctx context.Context, sellableOnly bool) ([]ProductResponse, error) {
	products, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		if sellableOnly && !p.IsSellable() {
			continue
		}
		out = append(out, ToProductResponse(p))
	}
	return out, nil
}

// ListComponents returns a product's recipe components with cost
// contributions priced at the materials' current unit cost.
func (s *Service) ListComponents(ctx context.Context, productID int64) ([]ComponentResponse, error) {
	components, err := s.gateway.ListComponents(ctx, productID)
	if err != nil {
		return nil, err
	}

	materials, err := s.gateway.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	costByID := make(map[int64]catalog.Material, len(materials))
	for _, m := range materials {
		costByID[m.ID] = m
	}

	out := make([]ComponentResponse, 0, len(components))
	for _, c := range components {
		resp := ToComponentResponse(c)
		if m, ok := costByID[c.MaterialID]; ok {
			cost := c.ComponentCost(m.CostPerUnit)
			resp.ComponentCost = &cost
		}
		out = append(out, resp)
	}
	return out, nil
}
