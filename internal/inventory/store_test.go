package inventory

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispensa/internal/model"
	"dispensa/internal/storage"
	"dispensa/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, storage.Gateway) {
	t.Helper()
	gw := testutil.NewGateway(t)
	store, err := NewStore(gw)
	require.NoError(t, err)
	require.NoError(t, store.Load(context.Background()))
	return store, gw
}

func putJSONEntry(t *testing.T, gw storage.Gateway, key string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, gw.Put(context.Background(), key, data))
}

func TestLoadSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	store, gw := newTestStore(t)

	assert.Len(t, store.Products(), 126)
	assert.Len(t, store.Categories(), 10)
	for _, c := range store.Categories() {
		assert.True(t, c.IsDefault, "seeded category %q should be default", c.ID)
	}

	// seeding is durable: a second store over the same gateway sees the
	// same collections without re-seeding
	second, err := NewStore(gw)
	require.NoError(t, err)
	require.NoError(t, second.Load(ctx))
	assert.Equal(t, store.Products(), second.Products())
	assert.Equal(t, store.Categories(), second.Categories())
}

func TestLoadCorruptedEntryIsStartupFault(t *testing.T) {
	ctx := context.Background()
	gw := testutil.NewGateway(t)
	require.NoError(t, gw.Put(ctx, storage.ProductsKey, []byte("{not json")))

	store, err := NewStore(gw)
	require.NoError(t, err)

	err = store.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrCorrupted)
}

func TestLoadExtractsCategoriesFromProducts(t *testing.T) {
	ctx := context.Background()
	gw := testutil.NewGateway(t)
	putJSONEntry(t, gw, storage.ProductsKey, []model.Product{
		{ID: 1, Name: "Piselli surgelati", Category: "surgelati", Quantity: 2, MinThreshold: 1, Unit: "pz"},
		{ID: 2, Name: "Sottovuoto", Category: "magazzino", Quantity: 1, MinThreshold: 1, Unit: "pz"},
	})

	store, err := NewStore(gw)
	require.NoError(t, err)
	require.NoError(t, store.Load(ctx))

	surgelati, ok := store.Category("surgelati")
	require.True(t, ok)
	assert.Equal(t, "Surgelati", surgelati.Name)
	assert.Equal(t, "🧊", surgelati.Icon)
	assert.False(t, surgelati.IsDefault)

	magazzino, ok := store.Category("magazzino")
	require.True(t, ok)
	assert.Equal(t, "Magazzino", magazzino.Name)
	assert.Equal(t, model.DefaultIcon, magazzino.Icon)
	assert.False(t, magazzino.IsDefault)

	// extraction runs before validation, so products referencing the
	// synthesized categories are left alone
	p, ok := store.Product(1)
	require.True(t, ok)
	assert.Equal(t, "surgelati", p.Category)
}

func TestLoadValidatesEmptyCategoryReferences(t *testing.T) {
	ctx := context.Background()
	gw := testutil.NewGateway(t)
	putJSONEntry(t, gw, storage.ProductsKey, []model.Product{
		{ID: 1, Name: "Misterioso", Category: "", Quantity: 1, MinThreshold: 1, Unit: "pz"},
	})

	store, err := NewStore(gw)
	require.NoError(t, err)
	require.NoError(t, store.Load(ctx))

	// extraction cannot invent a category for the empty id; the
	// validation pass moves the product to the first default category
	p, ok := store.Product(1)
	require.True(t, ok)
	assert.Equal(t, "carne", p.Category)

	// every product resolves after the startup passes
	for _, p := range store.Products() {
		_, ok := store.Category(p.Category)
		assert.True(t, ok, "product %q has dangling category %q", p.Name, p.Category)
	}
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("adds with coerced input", func(t *testing.T) {
		store, _ := newTestStore(t)
		before := store.TotalItems()

		n, err := store.AddProduct(ctx, ProductInput{
			Name:         "  Pelati  ",
			Category:     "conserve_test",
			Quantity:     "abc",
			MinThreshold: "",
		})
		// unknown category is rejected, nothing added
		require.NoError(t, err)
		assert.Equal(t, LevelError, n.Level)
		assert.Equal(t, before, store.TotalItems())

		n, err = store.AddProduct(ctx, ProductInput{
			Name:         "  Pelati  ",
			Category:     "condimenti",
			Quantity:     "abc",
			MinThreshold: "",
		})
		require.NoError(t, err)
		assert.Equal(t, LevelSuccess, n.Level)
		require.Equal(t, before+1, store.TotalItems())

		products := store.Products()
		added := products[len(products)-1]
		assert.Equal(t, "Pelati", added.Name)
		assert.Equal(t, "condimenti", added.Category)
		assert.Equal(t, 0, added.Quantity, "non-numeric quantity defaults to 0")
		assert.Equal(t, 1, added.MinThreshold, "missing threshold defaults to 1")
		assert.Equal(t, model.DefaultUnit, added.Unit)
		assert.NotZero(t, added.ID)
	})

	t.Run("empty name is a validation failure", func(t *testing.T) {
		store, _ := newTestStore(t)
		before := store.Products()

		n, err := store.AddProduct(ctx, ProductInput{Name: "   ", Category: "carne"})
		require.NoError(t, err)
		assert.Equal(t, LevelError, n.Level)
		assert.Equal(t, before, store.Products())
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	t.Run("unknown id is a no-op", func(t *testing.T) {
		n, err := store.UpdateProduct(ctx, 999999, ProductInput{Name: "X", Category: "carne"})
		require.NoError(t, err)
		assert.Equal(t, LevelInfo, n.Level)
	})

	t.Run("replaces fields", func(t *testing.T) {
		n, err := store.UpdateProduct(ctx, 4, ProductInput{
			Name:         "Mozzarella di bufala",
			Category:     "formaggi",
			Quantity:     "7",
			MinThreshold: "2",
			Unit:         "kg",
		})
		require.NoError(t, err)
		assert.Equal(t, LevelSuccess, n.Level)

		p, ok := store.Product(4)
		require.True(t, ok)
		assert.Equal(t, "Mozzarella di bufala", p.Name)
		assert.Equal(t, 7, p.Quantity)
		assert.Equal(t, 2, p.MinThreshold)
		assert.Equal(t, "kg", p.Unit)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	before := store.TotalItems()

	n, err := store.DeleteProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, LevelWarning, n.Level)
	assert.Equal(t, before-1, store.TotalItems())
	_, ok := store.Product(1)
	assert.False(t, ok)

	n, err = store.DeleteProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, n.Level)
	assert.Equal(t, before-1, store.TotalItems())
}

func TestAdjustQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("floors at zero", func(t *testing.T) {
		store, _ := newTestStore(t)

		// Caciotta starts at quantity 0
		n, err := store.AdjustQuantity(ctx, 1, -5)
		require.NoError(t, err)
		require.NotEqual(t, LevelError, n.Level)

		p, ok := store.Product(1)
		require.True(t, ok)
		assert.Equal(t, 0, p.Quantity)
	})

	t.Run("reports status transitions", func(t *testing.T) {
		store, _ := newTestStore(t)

		// 0 -> positive is back in stock
		n, err := store.AdjustQuantity(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, LevelSuccess, n.Level)
		assert.Contains(t, n.Message, "back in stock")

		// positive -> 0 is out of stock
		n, err = store.AdjustQuantity(ctx, 1, -3)
		require.NoError(t, err)
		assert.Equal(t, LevelWarning, n.Level)
		assert.Contains(t, n.Message, "out of stock")

		// plain delta otherwise
		n, err = store.AdjustQuantity(ctx, 4, 1)
		require.NoError(t, err)
		assert.Equal(t, LevelSuccess, n.Level)
		assert.NotContains(t, n.Message, "back in stock")
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store, _ := newTestStore(t)
		n, err := store.AdjustQuantity(ctx, 424242, 1)
		require.NoError(t, err)
		assert.Equal(t, LevelInfo, n.Level)
	})
}

func TestThresholdWalk(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	n, err := store.AddProduct(ctx, ProductInput{
		Name:         "Chinotto",
		Category:     "bevande",
		Quantity:     "11",
		MinThreshold: "10",
	})
	require.NoError(t, err)
	require.Equal(t, LevelSuccess, n.Level)

	products := store.Products()
	id := products[len(products)-1].ID

	status := func() model.Status {
		p, ok := store.Product(id)
		require.True(t, ok)
		return model.ProductStatus(p)
	}

	assert.Equal(t, model.StatusOK, status())

	_, err = store.AdjustQuantity(ctx, id, -1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusLow, status())

	for i := 0; i < 10; i++ {
		_, err = store.AdjustQuantity(ctx, id, -1)
		require.NoError(t, err)
	}
	assert.Equal(t, model.StatusOut, status())

	_, err = store.AdjustQuantity(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusLow, status(), "one unit above zero is low, not ok")
}

func TestAddCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the id from the name", func(t *testing.T) {
		store, _ := newTestStore(t)

		n, err := store.AddCategory(ctx, CategoryInput{Name: "Cibi Surgelati"})
		require.NoError(t, err)
		assert.Equal(t, LevelSuccess, n.Level)

		c, ok := store.Category("cibi_surgelati")
		require.True(t, ok)
		assert.Equal(t, "Cibi Surgelati", c.Name)
		assert.Equal(t, model.DefaultIcon, c.Icon)
		assert.False(t, c.IsDefault)
	})

	t.Run("duplicate id is rejected without changes", func(t *testing.T) {
		store, _ := newTestStore(t)
		before := store.Categories()

		n, err := store.AddCategory(ctx, CategoryInput{Name: "Carne", ID: "carne"})
		require.NoError(t, err)
		assert.Equal(t, LevelError, n.Level)
		assert.Equal(t, before, store.Categories())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		store, _ := newTestStore(t)
		n, err := store.AddCategory(ctx, CategoryInput{Name: "  "})
		require.NoError(t, err)
		assert.Equal(t, LevelError, n.Level)
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	n, err := store.UpdateCategory(ctx, "dolci", CategoryInput{Name: "Dessert", Icon: "🍮"})
	require.NoError(t, err)
	assert.Equal(t, LevelSuccess, n.Level)

	c, ok := store.Category("dolci")
	require.True(t, ok)
	assert.Equal(t, "Dessert", c.Name)
	assert.Equal(t, "🍮", c.Icon)
	assert.True(t, c.IsDefault, "updating must not clear the default flag")

	n, err = store.UpdateCategory(ctx, "no_such", CategoryInput{Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, n.Level)
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("default categories are protected", func(t *testing.T) {
		store, _ := newTestStore(t)
		before, ok := store.Category("carne")
		require.True(t, ok)

		n, err := store.DeleteCategory(ctx, "carne")
		require.NoError(t, err)
		assert.Equal(t, LevelError, n.Level)

		after, ok := store.Category("carne")
		require.True(t, ok)
		assert.Equal(t, before, after)
	})

	t.Run("unreferenced category is removed", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.AddCategory(ctx, CategoryInput{Name: "Temporanea"})
		require.NoError(t, err)

		n, err := store.DeleteCategory(ctx, "temporanea")
		require.NoError(t, err)
		assert.Equal(t, LevelWarning, n.Level)
		_, ok := store.Category("temporanea")
		assert.False(t, ok)
	})

	t.Run("referenced category requires reassignment", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.AddCategory(ctx, CategoryInput{Name: "Speciali"})
		require.NoError(t, err)
		_, err = store.AddProduct(ctx, ProductInput{Name: "Tartufo", Category: "speciali"})
		require.NoError(t, err)

		n, err := store.DeleteCategory(ctx, "speciali")
		require.NoError(t, err)
		assert.Equal(t, LevelWarning, n.Level)
		assert.Contains(t, n.Message, "reassign")

		_, ok := store.Category("speciali")
		assert.True(t, ok, "referenced category must survive a plain delete")
	})
}

func TestReassignProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("moves products then removes the category", func(t *testing.T) {
		store, _ := newTestStore(t)
		_, err := store.AddCategory(ctx, CategoryInput{Name: "Speciali"})
		require.NoError(t, err)
		for _, name := range []string{"Tartufo", "Zafferano", "Caviale"} {
			_, err = store.AddProduct(ctx, ProductInput{Name: name, Category: "speciali"})
			require.NoError(t, err)
		}
		require.Len(t, store.ProductsByCategory("speciali"), 3)
		altriBefore := len(store.ProductsByCategory("altri"))

		n, err := store.ReassignProducts(ctx, "speciali", "altri")
		require.NoError(t, err)
		assert.Equal(t, LevelSuccess, n.Level)

		assert.Empty(t, store.ProductsByCategory("speciali"))
		assert.Len(t, store.ProductsByCategory("altri"), altriBefore+3)
		_, ok := store.Category("speciali")
		assert.False(t, ok)

		// no dangling references anywhere
		for _, p := range store.Products() {
			_, ok := store.Category(p.Category)
			assert.True(t, ok, "product %q has dangling category %q", p.Name, p.Category)
		}
	})

	t.Run("refuses a default source and an unknown target", func(t *testing.T) {
		store, _ := newTestStore(t)

		n, err := store.ReassignProducts(ctx, "carne", "altri")
		require.NoError(t, err)
		assert.Equal(t, LevelError, n.Level)
		_, ok := store.Category("carne")
		assert.True(t, ok)

		_, err = store.AddCategory(ctx, CategoryInput{Name: "Speciali"})
		require.NoError(t, err)
		n, err = store.ReassignProducts(ctx, "speciali", "no_such")
		require.NoError(t, err)
		assert.Equal(t, LevelError, n.Level)
		_, ok = store.Category("speciali")
		assert.True(t, ok)
	})
}

func TestFilter(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, FilterAll, store.Filter())
	assert.Len(t, store.FilteredProducts(), store.TotalItems())

	store.SetFilter("bevande")
	filtered := store.FilteredProducts()
	assert.Len(t, filtered, 10)
	for _, p := range filtered {
		assert.Equal(t, "bevande", p.Category)
	}
}

func TestCategoryCounts(t *testing.T) {
	store, _ := newTestStore(t)

	counts := store.CategoryCounts()
	require.Len(t, counts, 10)

	byID := make(map[string]CategoryCount, len(counts))
	for _, cc := range counts {
		byID[cc.Category.ID] = cc
	}

	carne := byID["carne"]
	assert.Equal(t, 17, carne.Products)
	assert.Equal(t, 6, carne.TotalQuantity) // only Bistecche has stock
	assert.Equal(t, 16, carne.Alerts)       // everything but Bistecche

	pane := byID["pane"]
	assert.Equal(t, 6, pane.Products)
	assert.Equal(t, 0, pane.TotalQuantity)
	assert.Equal(t, 6, pane.Alerts)
}

func TestAlerts(t *testing.T) {
	store, _ := newTestStore(t)

	alerts := store.Alerts()
	// the seeded catalog has three products with stock: Mozzarella and
	// Bistecche are OK, Lattuga romana is low; everything else is out
	assert.Len(t, alerts, 124)

	for _, a := range alerts {
		assert.NotEqual(t, model.StatusOK, a.Status)
		if a.Product.Name == "Lattuga romana" {
			assert.Equal(t, model.StatusLow, a.Status)
			assert.Equal(t, "low stock (1/5)", a.Message())
		}
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_, err := store.DeleteProduct(ctx, 1)
	require.NoError(t, err)
	_, err = store.AddCategory(ctx, CategoryInput{Name: "Speciali"})
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))

	assert.Len(t, store.Products(), 126)
	assert.Len(t, store.Categories(), 10)
	_, ok := store.Category("speciali")
	assert.False(t, ok)
	_, ok = store.Product(1)
	assert.True(t, ok)
}

func TestResetRecoversFromCorruption(t *testing.T) {
	ctx := context.Background()
	gw := testutil.NewGateway(t)
	require.NoError(t, gw.Put(ctx, storage.ProductsKey, []byte("{not json")))

	store, err := NewStore(gw)
	require.NoError(t, err)
	require.ErrorIs(t, store.Load(ctx), storage.ErrCorrupted)

	require.NoError(t, store.Reset(ctx))
	assert.Len(t, store.Products(), 126)
}
