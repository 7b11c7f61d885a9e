// Package catalog defines the provider and review domain types and the
// pure filtering and aggregation logic the review panel is built on.
package catalog

import "fmt"

// Provider is a bookable service professional shown in the panel rail.
// Providers are supplied externally and never mutated by the panel.
type Provider struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Avatar string `yaml:"avatar"`
}

// Review is a single user-submitted rating-and-comment record tied to
// exactly one provider. Ratings are conventionally 1-5 but are passed
// through uninterpreted; this is a display layer, not a validation
// boundary.
type Review struct {
	ID         string `yaml:"id"`
	ProviderID string `yaml:"provider_id"`
	Rating     int    `yaml:"rating"`
	HasPhoto   bool   `yaml:"has_photo"`
	Text       string `yaml:"text"`
	Service    string `yaml:"service"`
	Date       string `yaml:"date"`
	Author     string `yaml:"author"`
}

// FilterMode narrows the review collection by rating or photo presence.
type FilterMode string

// Supported quality filter modes.
const (
	FilterAll      FilterMode = "all"
	FilterFiveStar FilterMode = "five-star"
	FilterFourPlus FilterMode = "four-plus-star"
	FilterHasPhoto FilterMode = "has-photo"
)

// Modes lists every filter mode in display order.
func Modes() []FilterMode {
	return []FilterMode{FilterAll, FilterFiveStar, FilterFourPlus, FilterHasPhoto}
}

// ParseFilterMode returns the mode for a config/CLI string value.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case FilterAll, FilterFiveStar, FilterFourPlus, FilterHasPhoto:
		return FilterMode(s), nil
	case "":
		return FilterAll, nil
	}
	return "", fmt.Errorf("unknown filter mode %q", s)
}

// Label returns the human label shown in the filter picker.
func (m FilterMode) Label() string {
	switch m {
	case FilterFiveStar:
		return "5 stars only"
	case FilterFourPlus:
		return "4 stars & up"
	case FilterHasPhoto:
		return "With photos"
	default:
		return "All reviews"
	}
}

// Match reports whether a single review passes the quality predicate.
// Out-of-range ratings are compared literally, never rejected.
func (m FilterMode) Match(r Review) bool {
	switch m {
	case FilterFiveStar:
		return r.Rating == 5
	case FilterFourPlus:
		return r.Rating >= 4
	case FilterHasPhoto:
		return r.HasPhoto
	default:
		return true
	}
}

// Filter returns the ordered subset of reviews matching both the provider
// selection and the quality mode. selectedID == "" means no provider is
// selected and every provider matches. Relative order of the input is
// preserved; the result is always a fresh slice.
func Filter(reviews []Review, selectedID string, mode FilterMode) []Review {
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if selectedID != "" && r.ProviderID != selectedID {
			continue
		}
		if !mode.Match(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Average returns the arithmetic mean of the ratings formatted to one
// decimal place. An empty input yields the literal "0.0", never NaN.
func Average(reviews []Review) string {
	if len(reviews) == 0 {
		return "0.0"
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(reviews)))
}

// Summary bundles the derived values the panel header displays.
type Summary struct {
	Count   int
	Average string
}

// Summarize computes the header summary for an already-filtered subset.
func Summarize(filtered []Review) Summary {
	return Summary{
		Count:   len(filtered),
		Average: Average(filtered),
	}
}
