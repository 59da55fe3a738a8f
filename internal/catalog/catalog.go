// Package catalog provides the storefront product catalogue: a static
// in-memory product list, optionally loaded from a JSON file, plus the
// selector tracking which product is open for detailed viewing.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"romarket/internal/model"

	"github.com/rs/zerolog"
)

// Store holds the immutable product catalogue.
type Store struct {
	products []model.Product
	byID     map[int]model.Product
}

// NewStore creates a catalogue store over the given products.
func NewStore(products []model.Product) *Store {
	byID := make(map[int]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Store{
		products: products,
		byID:     byID,
	}
}

// NewDefaultStore creates a store with the built-in storefront catalogue.
func NewDefaultStore() *Store {
	return NewStore(defaultProducts())
}

// LoadFile reads a catalogue from a JSON file containing an array of
// products and returns a store over it.
func LoadFile(path string, logger zerolog.Logger) (*Store, error) {
	logger = logger.With().Str("component", "catalog-loader").Logger()
	logger.Info().Str("file", path).Msg("loading catalogue file")

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("failed to read catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", path, err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("failed to parse catalogue file")
		return nil, fmt.Errorf("failed to parse catalogue file %s: %w", path, err)
	}

	logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("catalogue file loaded successfully")

	return NewStore(products), nil
}

// Products returns the catalogue in listing order.
func (s *Store) Products() []model.Product {
	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products
}

// ByID returns the product with the given ID, or nil when absent.
func (s *Store) ByID(id int) *model.Product {
	p, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &p
}

// Size returns the number of catalogued products.
func (s *Store) Size() int {
	return len(s.products)
}

// defaultProducts is the built-in storefront set.
func defaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          1,
			Name:        "Neon Cyber Sword",
			Price:       1299,
			Image:       "https://cdn.romarket.example/items/neon-cyber-sword.jpg",
			Description: "A powerful blade with a neon glow. Ideal for PvP battles, with unique attack animations.",
			Category:    "Weapons",
		},
		{
			ID:          2,
			Name:        "Cyber Visor Helmet",
			Price:       899,
			Image:       "https://cdn.romarket.example/items/cyber-visor-helmet.jpg",
			Description: "A futuristic helmet with a blue visor. Defence +50, exclusive design.",
			Category:    "Armour",
		},
		{
			ID:          3,
			Name:        "Magic Wings",
			Price:       1599,
			Image:       "https://cdn.romarket.example/items/magic-wings.jpg",
			Description: "Enchanted wings with a spark effect. Grants flight. Rare item.",
			Category:    "Accessories",
		},
		{
			ID:          4,
			Name:        "Dragon Scale Shield",
			Price:       1099,
			Image:       "https://cdn.romarket.example/items/dragon-scale-shield.jpg",
			Description: "A shield forged from dragon scales. Blocks 80% of damage. Legendary quality.",
			Category:    "Armour",
		},
		{
			ID:          5,
			Name:        "Lightning Staff",
			Price:       1399,
			Image:       "https://cdn.romarket.example/items/lightning-staff.jpg",
			Description: "A lightning staff with powerful spells. Damage +100. Epic rarity.",
			Category:    "Weapons",
		},
		{
			ID:          6,
			Name:        "Rainbow Pet",
			Price:       799,
			Image:       "https://cdn.romarket.example/items/rainbow-pet.jpg",
			Description: "A pet with a rainbow tail that follows you around. Very cute.",
			Category:    "Pets",
		},
	}
}
