package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Product struct {
	ID            uint64           `json:"id"`
	Name          string           `json:"name"`
	Price         int64            `json:"price"`
	OriginalPrice *int64           `json:"original_price,omitempty"`
	Brand         string           `json:"brand,omitempty"`
	Image         string           `json:"image,omitempty"`
	Category      string           `json:"category,omitempty"`
	Variants      []ProductVariant `json:"variants,omitempty"`
	Benefits      []Benefit        `json:"benefits,omitempty"`
}

type ProductVariant struct {
	ID            uint64 `json:"id"`
	ProductID     uint64 `json:"product_id"`
	Color         string `json:"color,omitempty"`
	Size          string `json:"size,omitempty"`
	HasFootrest   *bool  `json:"has_footrest,omitempty"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"original_price,omitempty"`
	Stock         int64  `json:"stock"`
	Image         string `json:"image,omitempty"`
	IsDefault     bool   `json:"is_default"`
}

// VariantSelection is a partial attribute selection; nil fields are unconstrained.
type VariantSelection struct {
	Color       *string `json:"color,omitempty"`
	Size        *string `json:"size,omitempty"`
	HasFootrest *bool   `json:"has_footrest,omitempty"`
}

type ProductFilter struct {
	Category string
	Brand    string
	Sort     string
	Limit    int
}

type ProductListResponse struct {
	Products []Product `json:"products"`
}

// ProductDetailResponse carries a product with the variant the UI should preselect.
type ProductDetailResponse struct {
	Product      Product         `json:"product"`
	Variant      *ProductVariant `json:"variant,omitempty"`
	ShowSelector bool            `json:"show_selector"`
	Colors       []string        `json:"colors,omitempty"`
	Footrest     []bool          `json:"footrest_options,omitempty"`
}

type SelectVariantRequest struct {
	Current     *uint64 `json:"current_variant_id,omitempty"`
	Color       *string `json:"color,omitempty"`
	HasFootrest *bool   `json:"has_footrest,omitempty"`
}

type BenefitKind string

const (
	BenefitText    BenefitKind = "text"
	BenefitList    BenefitKind = "list"
	BenefitSection BenefitKind = "section"
)

// Benefit is a product selling point. Upstream sends it as a bare string, a list of
// strings or a {title, description} object; it is normalized here once.
type Benefit struct {
	Kind  BenefitKind `json:"kind"`
	Title string      `json:"title,omitempty"`
	Text  string      `json:"text,omitempty"`
	Items []string    `json:"items,omitempty"`
}

func (b *Benefit) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*b = Benefit{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = Benefit{Kind: BenefitText, Text: s}
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*b = Benefit{Kind: BenefitList, Items: items}
		return nil
	case '{':
		var raw struct {
			Kind        BenefitKind `json:"kind"`
			Title       string      `json:"title"`
			Description string      `json:"description"`
			Text        string      `json:"text"`
			Items       []string    `json:"items"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		// Already normalized (e.g. read back from our own responses).
		if raw.Kind != "" {
			*b = Benefit{Kind: raw.Kind, Title: raw.Title, Text: raw.Text, Items: raw.Items}
			return nil
		}
		*b = Benefit{Kind: BenefitSection, Title: raw.Title, Text: raw.Description}
		return nil
	}
	return fmt.Errorf("benefit: unsupported payload %q", trimmed)
}
