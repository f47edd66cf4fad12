package catalog

import (
	"testing"

	"github.com/askcart/askcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFindByName(t *testing.T) {
	snap := newSnapshot([]domain.Product{
		{ID: 1, Title: "Kiwi Juice", Category: "beverages"},
		{ID: 2, Title: "Kiwi", Category: "groceries"},
	})

	// An exact title match wins even when a substring match comes first.
	p, ok := snap.FindByName("kiwi")
	require.True(t, ok)
	assert.Equal(t, 2, p.ID)

	p, ok = snap.FindByName("KIWI JUICE")
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)

	p, ok = snap.FindByName("juice")
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)

	_, ok = snap.FindByName("plasma tv")
	assert.False(t, ok)

	_, ok = snap.FindByName("   ")
	assert.False(t, ok)
}

func TestSnapshotCategories(t *testing.T) {
	snap := newSnapshot([]domain.Product{
		{ID: 1, Title: "Lipstick", Category: "Beauty"},
		{ID: 2, Title: "Kiwi", Category: "Groceries"},
		{ID: 3, Title: "Mascara", Category: "Beauty"},
	})

	assert.Equal(t, []string{"Beauty", "Groceries"}, snap.Categories())

	beauty := snap.FindByCategory("BEAUTY")
	require.Len(t, beauty, 2)
	assert.Equal(t, 1, beauty[0].ID)
	assert.Equal(t, 3, beauty[1].ID)

	assert.Empty(t, snap.FindByCategory("toys"))
}

func TestSnapshotFindByFilter(t *testing.T) {
	snap := newSnapshot([]domain.Product{
		{ID: 1, Title: "Kiwi", Price: 2.49},
		{ID: 2, Title: "Plasma TV", Price: 999.00},
		{ID: 3, Title: "Cat Food", Price: 5.00},
	})

	cheap := snap.FindByFilter(func(p domain.Product) bool { return p.Price < 10 })
	require.Len(t, cheap, 2)
	assert.Equal(t, 1, cheap[0].ID)
	assert.Equal(t, 3, cheap[1].ID)

	assert.Empty(t, snap.FindByFilter(func(domain.Product) bool { return false }))
}
