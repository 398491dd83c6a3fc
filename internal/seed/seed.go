// Package seed provides the listings a fresh store starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"auction-front/internal/auctionerrors"
	"auction-front/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed listings.yaml
var defaultListings []byte

type document struct {
	Listings []entry `yaml:"listings"`
}

type entry struct {
	models.Listing `yaml:",inline"`
	CurrentBid     string `yaml:"current_bid"`
}

// Load returns the built-in listings
func Load() ([]models.Listing, error) {
	return Parse(defaultListings)
}

// LoadFile reads listings from a YAML file in the same format as the built-in set
func LoadFile(path string) ([]models.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML seed document
func Parse(data []byte) ([]models.Listing, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("seed: parsing listings: %w", err)
	}

	out := make([]models.Listing, 0, len(doc.Listings))
	for i, e := range doc.Listings {
		l := e.Listing
		if l.ID == "" {
			return nil, fmt.Errorf("seed: listing %d: %w - missing id", i, auctionerrors.ErrInvalidListing)
		}
		if !l.Category.Valid() {
			return nil, fmt.Errorf("seed: listing %s: %w - %q", l.ID, auctionerrors.ErrInvalidCategory, l.Category)
		}

		bid := decimal.Zero
		if e.CurrentBid != "" {
			var err error
			if bid, err = decimal.NewFromString(e.CurrentBid); err != nil {
				return nil, fmt.Errorf("seed: listing %s: %w - current_bid %q", l.ID, auctionerrors.ErrInvalidListing, e.CurrentBid)
			}
		}
		l.CurrentBid = bid
		out = append(out, l)
	}
	return out, nil
}
