// Package inventory implements the stock store: the product and category
// collections, the grid filter, and every mutation the CLI exposes.
// Mutations persist synchronously through the storage gateway and return a
// Notification describing the outcome; rendering is left to the caller.
package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"

	"dispensa/internal/model"
	"dispensa/internal/storage"
)

// FilterAll selects every product regardless of category.
const FilterAll = "all"

// Store owns the product and category collections. It is single-writer by
// design: every mutation runs to completion, including its gateway write,
// before the next one starts.
type Store struct {
	gateway    storage.Gateway
	ids        *snowflake.Node
	filter     string
	products   []model.Product
	categories []model.Category
}

// NewStore creates a store over the given gateway. Call Load before using it.
func NewStore(gateway storage.Gateway) (*Store, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}
	return &Store{
		gateway: gateway,
		ids:     node,
		filter:  FilterAll,
	}, nil
}

// Load reads both collections from the gateway, seeding the default catalog
// for entries that have never been written, then runs category extraction
// followed by the validation pass. A present but undecodable entry is a
// startup fault (storage.ErrCorrupted); no partial recovery is attempted.
func (s *Store) Load(ctx context.Context) error {
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return err
	}
	products, err := s.loadProducts(ctx)
	if err != nil {
		return err
	}
	s.categories = categories
	s.products = products

	if err := s.ExtractCategories(ctx); err != nil {
		return err
	}
	if _, err := s.ValidateProductCategories(ctx); err != nil {
		return err
	}

	slog.Debug("inventory loaded", "products", len(s.products), "categories", len(s.categories))
	return nil
}

func (s *Store) loadCategories(ctx context.Context) ([]model.Category, error) {
	raw, err := s.gateway.Get(ctx, storage.CategoriesKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		seeded := DefaultCategories()
		slog.Info("no saved categories, seeding defaults", "count", len(seeded))
		if err := s.putJSON(ctx, storage.CategoriesKey, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	var categories []model.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("%w: categories entry: %v", storage.ErrCorrupted, err)
	}
	return categories, nil
}

func (s *Store) loadProducts(ctx context.Context) ([]model.Product, error) {
	raw, err := s.gateway.Get(ctx, storage.ProductsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		seeded := DefaultProducts()
		slog.Info("no saved products, seeding starting catalog", "count", len(seeded))
		if err := s.putJSON(ctx, storage.ProductsKey, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: products entry: %v", storage.ErrCorrupted, err)
	}
	return products, nil
}

// ExtractCategories synthesizes a non-default category for every product
// category id missing from the collection (name = capitalized id, icon from
// the fixed table). Imported or hand-edited data may reference unknown
// categories, so this runs after load and after every product create,
// update, or import. Persists only when something was added.
func (s *Store) ExtractCategories(ctx context.Context) error {
	added := 0
	for _, p := range s.products {
		if p.Category == "" {
			// left for the validation pass
			continue
		}
		if s.categoryIndex(p.Category) >= 0 {
			continue
		}
		s.categories = append(s.categories, model.Category{
			ID:   p.Category,
			Name: model.Capitalize(p.Category),
			Icon: model.IconFor(p.Category),
		})
		added++
	}
	if added == 0 {
		return nil
	}
	slog.Debug("synthesized categories from product references", "count", added)
	return s.saveCategories(ctx)
}

// ValidateProductCategories reassigns every product whose category does not
// resolve to the first default category (or the first category when none is
// flagged default). Runs once at startup, after extraction. Persists only
// when a product was changed; returns the number fixed.
func (s *Store) ValidateProductCategories(ctx context.Context) (int, error) {
	if len(s.categories) == 0 {
		return 0, nil
	}
	fallback := s.categories[0]
	for _, c := range s.categories {
		if c.IsDefault {
			fallback = c
			break
		}
	}

	fixed := 0
	for i := range s.products {
		if s.products[i].Category == "" || s.categoryIndex(s.products[i].Category) < 0 {
			s.products[i].Category = fallback.ID
			fixed++
		}
	}
	if fixed == 0 {
		return 0, nil
	}
	slog.Debug("fixed products with invalid categories", "count", fixed, "fallback", fallback.ID)
	return fixed, s.saveProducts(ctx)
}

// Read accessors.

// Products returns a copy of the full product collection.
func (s *Store) Products() []model.Product {
	return append([]model.Product(nil), s.products...)
}

// Categories returns a copy of the full category collection.
func (s *Store) Categories() []model.Category {
	return append([]model.Category(nil), s.categories...)
}

// Product returns the product with the given id.
func (s *Store) Product(id int64) (model.Product, bool) {
	if i := s.productIndex(id); i >= 0 {
		return s.products[i], true
	}
	return model.Product{}, false
}

// Category returns the category with the given id.
func (s *Store) Category(id string) (model.Category, bool) {
	if i := s.categoryIndex(id); i >= 0 {
		return s.categories[i], true
	}
	return model.Category{}, false
}

// ProductsByCategory returns the products referencing the given category id.
func (s *Store) ProductsByCategory(id string) []model.Product {
	var out []model.Product
	for _, p := range s.products {
		if p.Category == id {
			out = append(out, p)
		}
	}
	return out
}

// TotalItems returns the number of tracked products.
func (s *Store) TotalItems() int {
	return len(s.products)
}

// SetFilter selects the category the grid shows; FilterAll shows everything.
func (s *Store) SetFilter(id string) {
	s.filter = id
}

// Filter returns the currently selected category filter.
func (s *Store) Filter() string {
	return s.filter
}

// FilteredProducts returns the products visible under the current filter.
func (s *Store) FilteredProducts() []model.Product {
	if s.filter == FilterAll || s.filter == "" {
		return s.Products()
	}
	return s.ProductsByCategory(s.filter)
}

// Product mutations.

// ProductInput carries form-style input for product create and update.
// Quantity and MinThreshold are free text; non-numeric or missing values
// fall back to 0 and 1 respectively.
type ProductInput struct {
	Name         string
	Category     string
	Quantity     string
	MinThreshold string
	Unit         string
}

func coerceQuantity(v string) int {
	q := cast.ToInt(strings.TrimSpace(v))
	if q < 0 {
		return 0
	}
	return q
}

func coerceThreshold(v string) int {
	m := cast.ToInt(strings.TrimSpace(v))
	if m <= 0 {
		return 1
	}
	return m
}

func (s *Store) validateProductInput(in ProductInput) (Notification, bool) {
	if strings.TrimSpace(in.Name) == "" {
		return notifyError("product name is required"), false
	}
	if _, ok := s.Category(in.Category); !ok {
		return notifyError("unknown category %q", in.Category), false
	}
	return Notification{}, true
}

// AddProduct validates and appends a new product, persists, and re-runs
// category extraction. Validation failures are reported as notifications and
// mutate nothing.
func (s *Store) AddProduct(ctx context.Context, in ProductInput) (Notification, error) {
	if n, ok := s.validateProductInput(in); !ok {
		return n, nil
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = model.DefaultUnit
	}
	p := model.Product{
		ID:           s.ids.Generate().Int64(),
		Name:         strings.TrimSpace(in.Name),
		Category:     in.Category,
		Quantity:     coerceQuantity(in.Quantity),
		MinThreshold: coerceThreshold(in.MinThreshold),
		Unit:         unit,
	}

	products := append(s.Products(), p)
	if err := s.putJSON(ctx, storage.ProductsKey, products); err != nil {
		return Notification{}, err
	}
	s.products = products

	if err := s.ExtractCategories(ctx); err != nil {
		return Notification{}, err
	}
	return notifySuccess("added %q: %s", p.Name, model.ProductStatus(p).Label()), nil
}

// UpdateProduct replaces the named fields of an existing product. An unknown
// id is a no-op, not an error.
func (s *Store) UpdateProduct(ctx context.Context, id int64, in ProductInput) (Notification, error) {
	idx := s.productIndex(id)
	if idx < 0 {
		return notifyInfo("product %d not found", id), nil
	}
	if n, ok := s.validateProductInput(in); !ok {
		return n, nil
	}

	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = model.DefaultUnit
	}
	products := s.Products()
	p := &products[idx]
	p.Name = strings.TrimSpace(in.Name)
	p.Category = in.Category
	p.Quantity = coerceQuantity(in.Quantity)
	p.MinThreshold = coerceThreshold(in.MinThreshold)
	p.Unit = unit

	if err := s.putJSON(ctx, storage.ProductsKey, products); err != nil {
		return Notification{}, err
	}
	s.products = products

	if err := s.ExtractCategories(ctx); err != nil {
		return Notification{}, err
	}
	return notifySuccess("updated %q: %s", p.Name, model.ProductStatus(*p).Label()), nil
}

// DeleteProduct removes a product by id. An unknown id is a no-op.
// Interactive confirmation is the caller's concern.
func (s *Store) DeleteProduct(ctx context.Context, id int64) (Notification, error) {
	idx := s.productIndex(id)
	if idx < 0 {
		return notifyInfo("product %d not found", id), nil
	}

	name := s.products[idx].Name
	products := append(s.products[:idx:idx], s.products[idx+1:]...)
	if err := s.putJSON(ctx, storage.ProductsKey, products); err != nil {
		return Notification{}, err
	}
	s.products = products
	return notifyWarning("deleted %q", name), nil
}

// AdjustQuantity applies a delta to a product's quantity, flooring at zero,
// and reports status transitions: zero to positive is back in stock,
// positive to zero is out of stock.
func (s *Store) AdjustQuantity(ctx context.Context, id int64, delta int) (Notification, error) {
	idx := s.productIndex(id)
	if idx < 0 {
		return notifyInfo("product %d not found", id), nil
	}

	products := s.Products()
	p := &products[idx]
	before := p.Quantity
	after := before + delta
	if after < 0 {
		after = 0
	}
	p.Quantity = after

	if err := s.putJSON(ctx, storage.ProductsKey, products); err != nil {
		return Notification{}, err
	}
	s.products = products

	switch {
	case before == 0 && after > 0:
		return notifySuccess("%q back in stock: %d %s", p.Name, after, p.Unit), nil
	case before > 0 && after == 0:
		return notifyWarning("%q now out of stock", p.Name), nil
	default:
		return notifySuccess("%q quantity %+d: now %d %s", p.Name, delta, after, p.Unit), nil
	}
}

// Category mutations.

// CategoryInput carries form-style input for category create and update.
type CategoryInput struct {
	ID   string
	Name string
	Icon string
}

// AddCategory appends a user-defined category. The id is taken from the
// input or derived from the name; a duplicate id is rejected and leaves the
// collection untouched.
func (s *Store) AddCategory(ctx context.Context, in CategoryInput) (Notification, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return notifyError("category name is required"), nil
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = model.Slugify(name)
	}
	if _, ok := s.Category(id); ok {
		return notifyError("category %q already exists", id), nil
	}

	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = model.DefaultIcon
	}

	categories := append(s.Categories(), model.Category{
		ID:   id,
		Name: name,
		Icon: icon,
	})
	if err := s.putJSON(ctx, storage.CategoriesKey, categories); err != nil {
		return Notification{}, err
	}
	s.categories = categories
	return notifySuccess("added category %q (%s)", name, id), nil
}

// UpdateCategory replaces a category's name and icon in place. An unknown id
// is a no-op.
func (s *Store) UpdateCategory(ctx context.Context, id string, in CategoryInput) (Notification, error) {
	idx := s.categoryIndex(id)
	if idx < 0 {
		return notifyInfo("category %q not found", id), nil
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return notifyError("category name is required"), nil
	}
	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = model.DefaultIcon
	}

	categories := s.Categories()
	categories[idx].Name = name
	categories[idx].Icon = icon
	if err := s.putJSON(ctx, storage.CategoriesKey, categories); err != nil {
		return Notification{}, err
	}
	s.categories = categories
	return notifySuccess("updated category %q", name), nil
}

// DeleteCategory removes an unreferenced, non-default category. Default
// categories are never deletable. A category still referenced by products is
// not removed; the caller must run ReassignProducts instead.
func (s *Store) DeleteCategory(ctx context.Context, id string) (Notification, error) {
	idx := s.categoryIndex(id)
	if idx < 0 {
		return notifyInfo("category %q not found", id), nil
	}
	c := s.categories[idx]
	if c.IsDefault {
		return notifyError("default category %q cannot be deleted", c.Name), nil
	}
	if n := len(s.ProductsByCategory(id)); n > 0 {
		return notifyWarning("category %q still has %d products: reassign them first", c.Name, n), nil
	}

	categories := append(s.categories[:idx:idx], s.categories[idx+1:]...)
	if err := s.putJSON(ctx, storage.CategoriesKey, categories); err != nil {
		return Notification{}, err
	}
	s.categories = categories
	return notifyWarning("deleted category %q", c.Name), nil
}

// ReassignProducts moves every product referencing oldID to newID, persists
// the products, then removes the old category. The product write always
// lands before the category is removed, so no observable state has a product
// pointing at a missing category.
func (s *Store) ReassignProducts(ctx context.Context, oldID, newID string) (Notification, error) {
	oldIdx := s.categoryIndex(oldID)
	if oldIdx < 0 {
		return notifyInfo("category %q not found", oldID), nil
	}
	old := s.categories[oldIdx]
	if old.IsDefault {
		return notifyError("default category %q cannot be deleted", old.Name), nil
	}
	if newID == oldID {
		return notifyError("target category must differ from %q", oldID), nil
	}
	if _, ok := s.Category(newID); !ok {
		return notifyError("unknown target category %q", newID), nil
	}

	products := s.Products()
	moved := 0
	for i := range products {
		if products[i].Category == oldID {
			products[i].Category = newID
			moved++
		}
	}
	if err := s.putJSON(ctx, storage.ProductsKey, products); err != nil {
		return Notification{}, err
	}
	s.products = products

	categories := append(s.categories[:oldIdx:oldIdx], s.categories[oldIdx+1:]...)
	if err := s.putJSON(ctx, storage.CategoriesKey, categories); err != nil {
		return Notification{}, err
	}
	s.categories = categories

	if s.filter == oldID {
		s.filter = FilterAll
	}
	return notifySuccess("reassigned %d products to %q and deleted category %q", moved, newID, old.Name), nil
}

// Reset clears both gateway entries and re-seeds the default catalog.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.gateway.Delete(ctx, storage.ProductsKey); err != nil {
		return err
	}
	if err := s.gateway.Delete(ctx, storage.CategoriesKey); err != nil {
		return err
	}
	s.products = nil
	s.categories = nil
	s.filter = FilterAll
	slog.Info("inventory reset to defaults")
	return s.Load(ctx)
}

// Persistence helpers. Every write is synchronous: no mutation returns
// before its state is durable.

func (s *Store) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.gateway.Put(ctx, key, data)
}

func (s *Store) saveProducts(ctx context.Context) error {
	return s.putJSON(ctx, storage.ProductsKey, s.products)
}

func (s *Store) saveCategories(ctx context.Context) error {
	return s.putJSON(ctx, storage.CategoriesKey, s.categories)
}

func (s *Store) productIndex(id int64) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) categoryIndex(id string) int {
	for i, c := range s.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
