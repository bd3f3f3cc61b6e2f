// Package variant maps a product and a partial attribute selection to a purchasable variant.
// Every function is a pure lookup; callers re-render price, stock and image from the result.
package variant

import (
	"errors"
	"fmt"

	"github.com/muhammadheryan/storefront/model"
)

var (
	ErrNoMatch         = errors.New("variant: no variant matches selection")
	ErrAmbiguous       = errors.New("variant: selection matches several variants")
	ErrMultipleDefault = errors.New("variant: more than one default variant")
)

// ShowSelector reports whether the UI should offer a variant picker: at least two
// variants and at least one dimension with two distinct values.
func ShowSelector(variants []model.ProductVariant) bool {
	if len(variants) < 2 {
		return false
	}
	return len(Colors(variants)) >= 2 || len(FootrestOptions(variants)) >= 2
}

// Default returns the variant flagged as default, the first one otherwise, or nil.
func Default(variants []model.ProductVariant) *model.ProductVariant {
	if len(variants) == 0 {
		return nil
	}
	for i := range variants {
		if variants[i].IsDefault {
			return &variants[i]
		}
	}
	return &variants[0]
}

// ValidateDefaults enforces that at most one variant is the default.
func ValidateDefaults(variants []model.ProductVariant) error {
	n := 0
	for _, v := range variants {
		if v.IsDefault {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("%w: %d flagged", ErrMultipleDefault, n)
	}
	return nil
}

// Resolve returns the unique variant matching every dimension set in sel.
// With zero or one variant the selection is ignored.
func Resolve(variants []model.ProductVariant, sel model.VariantSelection) (*model.ProductVariant, error) {
	switch len(variants) {
	case 0:
		return nil, nil
	case 1:
		return &variants[0], nil
	}

	var found *model.ProductVariant
	for i := range variants {
		if !matches(variants[i], sel) {
			continue
		}
		if found != nil {
			return nil, ErrAmbiguous
		}
		found = &variants[i]
	}
	if found == nil {
		return nil, ErrNoMatch
	}
	return found, nil
}

// SelectColor moves the selection to color. The footrest choice of current is kept
// when that combination exists; otherwise the first variant of the color wins.
// The bool is false when no variant carries the color, in which case current is returned.
func SelectColor(variants []model.ProductVariant, current *model.ProductVariant, color string) (*model.ProductVariant, bool) {
	var keep *bool
	if current != nil {
		keep = current.HasFootrest
	}
	return pick(variants, current,
		func(v model.ProductVariant) bool { return v.Color == color },
		func(v model.ProductVariant) bool { return keep != nil && sameFlag(v.HasFootrest, keep) },
	)
}

// SelectFootrest is SelectColor for the footrest dimension, preserving the current color.
func SelectFootrest(variants []model.ProductVariant, current *model.ProductVariant, hasFootrest bool) (*model.ProductVariant, bool) {
	keep := ""
	if current != nil {
		keep = current.Color
	}
	return pick(variants, current,
		func(v model.ProductVariant) bool { return sameFlag(v.HasFootrest, &hasFootrest) },
		func(v model.ProductVariant) bool { return keep != "" && v.Color == keep },
	)
}

// Colors lists distinct non-empty colors in catalog order.
func Colors(variants []model.ProductVariant) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, v := range variants {
		if v.Color == "" {
			continue
		}
		if _, ok := seen[v.Color]; ok {
			continue
		}
		seen[v.Color] = struct{}{}
		out = append(out, v.Color)
	}
	return out
}

// FootrestOptions lists distinct footrest flags in catalog order.
func FootrestOptions(variants []model.ProductVariant) []bool {
	var hasTrue, hasFalse bool
	out := make([]bool, 0, 2)
	for _, v := range variants {
		if v.HasFootrest == nil {
			continue
		}
		if *v.HasFootrest && !hasTrue {
			hasTrue = true
			out = append(out, true)
		}
		if !*v.HasFootrest && !hasFalse {
			hasFalse = true
			out = append(out, false)
		}
	}
	return out
}

// FindByID returns the variant with the given id, or nil.
func FindByID(variants []model.ProductVariant, id uint64) *model.ProductVariant {
	for i := range variants {
		if variants[i].ID == id {
			return &variants[i]
		}
	}
	return nil
}

func pick(variants []model.ProductVariant, current *model.ProductVariant, changed, preserved func(model.ProductVariant) bool) (*model.ProductVariant, bool) {
	var fallback *model.ProductVariant
	for i := range variants {
		if !changed(variants[i]) {
			continue
		}
		if preserved(variants[i]) {
			return &variants[i], true
		}
		if fallback == nil {
			fallback = &variants[i]
		}
	}
	if fallback == nil {
		return current, false
	}
	return fallback, true
}

func matches(v model.ProductVariant, sel model.VariantSelection) bool {
	if sel.Color != nil && v.Color != *sel.Color {
		return false
	}
	if sel.Size != nil && v.Size != *sel.Size {
		return false
	}
	if sel.HasFootrest != nil && !sameFlag(v.HasFootrest, sel.HasFootrest) {
		return false
	}
	return true
}

func sameFlag(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
