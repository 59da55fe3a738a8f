package catalog

import "romarket/internal/model"

// Selector tracks which product is currently open for detailed viewing.
// Like the cart, it is owned by a single goroutine.
type Selector struct {
	selected *model.Product
}

// NewSelector creates a selector with nothing selected.
func NewSelector() *Selector {
	return &Selector{}
}

// Select opens the given product for detailed viewing.
func (s *Selector) Select(p model.Product) {
	s.selected = &p
}

// Selected returns the open product, or nil when none is selected.
func (s *Selector) Selected() *model.Product {
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}

// Clear closes the detail view.
func (s *Selector) Clear() {
	s.selected = nil
}
