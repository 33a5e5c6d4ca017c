package service

import (
	"fmt"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
)

type pricingService struct {
	catalog  entity.Catalog
	shipping entity.ShippingTable
}

func (s *pricingService) Catalog() entity.Catalog { return s.catalog }

func (s *pricingService) Shipping() entity.ShippingTable { return s.shipping }

// Resolve looks up a product and color. An empty size skips the size check.
func (s *pricingService) Resolve(product, color, size string) (entity.Product, entity.ColorVariant, error) {
	p, ok := s.catalog[product]
	if !ok {
		return entity.Product{}, entity.ColorVariant{}, fmt.Errorf("%w: %q", entity.ErrUnknownProduct, product)
	}
	c, ok := p.Colors[color]
	if !ok {
		return entity.Product{}, entity.ColorVariant{}, fmt.Errorf("%w: %q", entity.ErrUnknownColor, color)
	}
	if size != "" && !c.HasSize(size) {
		return entity.Product{}, entity.ColorVariant{}, fmt.Errorf("%w: %q", entity.ErrUnknownSize, size)
	}
	return p, c, nil
}

// Quote prices a selection. The dual-side surcharge is added per item only
// when both sides carry a design; shipping is flat per region.
func (s *pricingService) Quote(sel entity.Selection) (entity.Quote, error) {
	if sel.Quantity < 1 {
		return entity.Quote{}, entity.ErrInvalidQuantity
	}
	p, _, err := s.Resolve(sel.Product, sel.Color, sel.Size)
	if err != nil {
		return entity.Quote{}, err
	}
	shipping, ok := s.shipping[sel.Region]
	if !ok {
		return entity.Quote{}, fmt.Errorf("%w: %q", entity.ErrUnknownRegion, sel.Region)
	}

	unit := p.BasePrice
	if sel.HasFront && sel.HasBack {
		unit += p.DualSideSurcharge
	}
	price := unit * sel.Quantity

	return entity.Quote{
		ProductPrice: price,
		ShippingCost: shipping,
		Total:        price + shipping,
	}, nil
}
