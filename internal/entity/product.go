package entity

type ColorVariant struct {
	Sizes      []string `mapstructure:"sizes" json:"sizes"`
	FrontImage string   `mapstructure:"front_image" json:"front_image"`
	BackImage  string   `mapstructure:"back_image" json:"back_image"`
}

// MockupPath returns the base photo used for the given side.
func (c ColorVariant) MockupPath(side Side) string {
	if side == SideBack {
		return c.BackImage
	}
	return c.FrontImage
}

func (c ColorVariant) HasSize(size string) bool {
	for _, s := range c.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type Product struct {
	DisplayName       string                  `mapstructure:"display_name" json:"display_name"`
	BasePrice         int                     `mapstructure:"base_price" json:"base_price"`
	DualSideSurcharge int                     `mapstructure:"dual_side_surcharge" json:"dual_side_surcharge"`
	SizeChart         string                  `mapstructure:"size_chart" json:"size_chart"`
	Colors            map[string]ColorVariant `mapstructure:"colors" json:"colors"`
}

// Catalog maps a product key such as "tshirt" to its definition.
type Catalog map[string]Product

// ShippingTable maps a region key to a flat shipping cost.
type ShippingTable map[string]int
