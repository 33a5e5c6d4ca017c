package service

import (
	"testing"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() entity.Catalog {
	return entity.Catalog{
		"tshirt": {
			DisplayName:       "T-shirt",
			BasePrice:         350,
			DualSideSurcharge: 20,
			Colors: map[string]entity.ColorVariant{
				"black": {
					Sizes:      []string{"S", "M", "L", "XL"},
					FrontImage: "mockups/tshirt/black/front.png",
					BackImage:  "mockups/tshirt/black/back.png",
				},
			},
		},
	}
}

func testShipping() entity.ShippingTable {
	return entity.ShippingTable{"south": 50, "hanoi": 30}
}

func TestQuote(t *testing.T) {
	pricing := NewPricingService(testCatalog(), testShipping())

	tests := []struct {
		name string
		sel  entity.Selection
		want entity.Quote
	}{
		{
			name: "both sides pay the surcharge",
			sel: entity.Selection{Product: "tshirt", Color: "black", Size: "L", Quantity: 2,
				Region: "south", HasFront: true, HasBack: true},
			want: entity.Quote{ProductPrice: 740, ShippingCost: 50, Total: 790},
		},
		{
			name: "front only",
			sel: entity.Selection{Product: "tshirt", Color: "black", Size: "L", Quantity: 2,
				Region: "south", HasFront: true},
			want: entity.Quote{ProductPrice: 700, ShippingCost: 50, Total: 750},
		},
		{
			name: "back only",
			sel: entity.Selection{Product: "tshirt", Color: "black", Size: "M", Quantity: 1,
				Region: "hanoi", HasBack: true},
			want: entity.Quote{ProductPrice: 350, ShippingCost: 30, Total: 380},
		},
		{
			name: "no design",
			sel:  entity.Selection{Product: "tshirt", Color: "black", Size: "S", Quantity: 3, Region: "hanoi"},
			want: entity.Quote{ProductPrice: 1050, ShippingCost: 30, Total: 1080},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Quote(tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteErrors(t *testing.T) {
	pricing := NewPricingService(testCatalog(), testShipping())
	valid := entity.Selection{Product: "tshirt", Color: "black", Size: "L", Quantity: 1, Region: "south"}

	tests := []struct {
		name   string
		modify func(s *entity.Selection)
		want   error
	}{
		{"unknown product", func(s *entity.Selection) { s.Product = "mug" }, entity.ErrUnknownProduct},
		{"unknown color", func(s *entity.Selection) { s.Color = "pink" }, entity.ErrUnknownColor},
		{"unknown size", func(s *entity.Selection) { s.Size = "XXXL" }, entity.ErrUnknownSize},
		{"unknown region", func(s *entity.Selection) { s.Region = "mars" }, entity.ErrUnknownRegion},
		{"zero quantity", func(s *entity.Selection) { s.Quantity = 0 }, entity.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := valid
			tt.modify(&sel)
			_, err := pricing.Quote(sel)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestResolveWithoutSize(t *testing.T) {
	pricing := NewPricingService(testCatalog(), testShipping())

	_, variant, err := pricing.Resolve("tshirt", "black", "")
	require.NoError(t, err)
	assert.Equal(t, "mockups/tshirt/black/back.png", variant.MockupPath(entity.SideBack))
}
