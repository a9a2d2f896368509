package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Record is a loosely shaped product record from an external source. Field
// names follow the remote catalog's conventions and may be missing entirely;
// Normalizer maps them onto the canonical Product shape.
type Record map[string]any

// Normalizer converts external records into canonical Products. The zero
// value is usable; FallbackImage and DefaultHighlights fill the image and
// highlights fields when the record carries neither.
//
// The listing call site uses an empty DefaultHighlights; the product-detail
// call site uses DetailHighlights. Each call site must pick one and stick
// with it.
type Normalizer struct {
	FallbackImage     string
	DefaultHighlights []string
}

// DetailHighlights is the placeholder highlight set used by the
// single-product detail flow when the record has no highlights of its own.
func DetailHighlights() []string {
	return []string{"Verified stock", "One-year warranty", "Local support"}
}

// Normalize maps a record onto a Product, applying a fixed precedence per
// field: explicit value, then alternate field name, then default.
func (n Normalizer) Normalize(rec Record) Product {
	p := Product{
		ID:          n.normalizeID(rec),
		Name:        stringField(rec, "name", "title"),
		Category:    stringField(rec, "category"),
		Price:       priceField(rec),
		Image:       stringField(rec, "image", "image_url"),
		Description: stringField(rec, "description"),
		Highlights:  highlightsField(rec),
	}
	if p.Name == "" {
		p.Name = "Untitled"
	}
	if p.Category == "" {
		p.Category = "Accessories"
	}
	if p.Image == "" {
		p.Image = n.FallbackImage
	}
	if p.Highlights == nil {
		p.Highlights = append([]string(nil), n.DefaultHighlights...)
	}
	return p
}

// NormalizeAll maps a batch of records.
func (n Normalizer) NormalizeAll(recs []Record) []Product {
	out := make([]Product, len(recs))
	for i, rec := range recs {
		out[i] = n.Normalize(rec)
	}
	return out
}

func (n Normalizer) normalizeID(rec Record) string {
	if id := stringField(rec, "id", "slug"); id != "" {
		return id
	}
	if name := stringField(rec, "name"); name != "" {
		return Slugify(name)
	}
	return "item"
}

// stringField returns the first non-empty string coercion among the given
// keys.
func stringField(rec Record, keys ...string) string {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		if s := cast.ToString(v); s != "" {
			return s
		}
	}
	return ""
}

// priceField coerces the price to a decimal, defaulting to zero when the
// field is absent or not a number.
func priceField(rec Record) decimal.Decimal {
	v, ok := rec["price"]
	if !ok || v == nil {
		return decimal.Zero
	}
	if d, ok := v.(decimal.Decimal); ok {
		return d
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func highlightsField(rec Record) []string {
	v, ok := rec["highlights"]
	if !ok || v == nil {
		return nil
	}
	hs, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil
	}
	return hs
}

// Slugify lowercases a name and reduces it to [a-z0-9] runs separated by
// single hyphens, trimming hyphens at the edges. An empty result becomes
// "item".
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	slug := b.String()
	if slug == "" {
		return "item"
	}
	return slug
}

// NewProductID derives a unique product ID for an admin-created product:
// the slugified name plus the creation timestamp in milliseconds, so
// repeated submissions of the same name stay distinct.
func NewProductID(name string, now time.Time) string {
	return Slugify(name) + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
