package valueobjects

import "fmt"

// EditStyle is the closed set of generation styles a shoot can target.
type EditStyle string

const (
	StyleEcommerce   EditStyle = "ecommerce"
	StyleCatalog     EditStyle = "catalog"
	StyleSocialMedia EditStyle = "social_media"
	StyleAdvertising EditStyle = "advertising"
)

// BaselineStyle is the one style the free tier may use.
const BaselineStyle = StyleEcommerce

// NewEditStyle validates a style identifier.
func NewEditStyle(s string) (EditStyle, error) {
	e := EditStyle(s)
	if !e.IsValid() {
		return "", fmt.Errorf("invalid edit style: %s", s)
	}
	return e, nil
}

func (e EditStyle) IsValid() bool {
	switch e {
	case StyleEcommerce, StyleCatalog, StyleSocialMedia, StyleAdvertising:
		return true
	}
	return false
}

// IsBaseline reports whether this is the free-tier style.
func (e EditStyle) IsBaseline() bool {
	return e == BaselineStyle
}

// DisplayName returns the customer-facing name of the style.
func (e EditStyle) DisplayName() string {
	switch e {
	case StyleEcommerce:
		return "E-Commerce"
	case StyleCatalog:
		return "Catalog / Lookbook"
	case StyleSocialMedia:
		return "Social Media"
	case StyleAdvertising:
		return "Advertising / Campaign"
	}
	return string(e)
}

func (e EditStyle) String() string {
	return string(e)
}

// AllStyles lists every valid style.
func AllStyles() []EditStyle {
	return []EditStyle{StyleEcommerce, StyleCatalog, StyleSocialMedia, StyleAdvertising}
}
