package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"romarket/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ByID(t *testing.T) {
	store := NewDefaultStore()

	p := store.ByID(1)
	require.NotNil(t, p)
	assert.Equal(t, "Neon Cyber Sword", p.Name)
	assert.Equal(t, 1299.0, p.Price)

	assert.Nil(t, store.ByID(999))
}

func TestStore_ProductsReturnsCopy(t *testing.T) {
	store := NewDefaultStore()

	products := store.Products()
	require.NotEmpty(t, products)
	products[0].Name = "mutated"

	assert.Equal(t, "Neon Cyber Sword", store.Products()[0].Name)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	content := `[
		{"id": 10, "name": "Test Item", "price": 500, "category": "Test"},
		{"id": 11, "name": "Other Item", "price": 250, "category": "Test"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := LoadFile(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, store.Size())

	p := store.ByID(10)
	require.NotNil(t, p)
	assert.Equal(t, "Test Item", p.Name)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"), zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFile(path, zerolog.Nop())
	assert.Error(t, err)
}

func TestSelector(t *testing.T) {
	sel := NewSelector()
	assert.Nil(t, sel.Selected())

	product := model.Product{ID: 3, Name: "Magic Wings", Price: 1599}
	sel.Select(product)

	selected := sel.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, product.ID, selected.ID)

	sel.Clear()
	assert.Nil(t, sel.Selected())
}
