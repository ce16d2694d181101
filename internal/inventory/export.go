package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gocarina/gocsv"

	"dispensa/internal/model"
	"dispensa/internal/storage"
)

// csvRecord is the flattened tabular form of a product. The column order is
// the contract: name, category, quantity, minThreshold, unit, status. The
// status column carries the derived label and is dropped on import, so the
// format is lossy and not meant to round-trip.
type csvRecord struct {
	Name         string `csv:"Name"`
	Category     string `csv:"Category"`
	Quantity     string `csv:"Quantity"`
	MinThreshold string `csv:"MinThreshold"`
	Unit         string `csv:"Unit"`
	Status       string `csv:"Status"`
}

// ExportJSON serializes the product collection as the structured dump,
// suitable for round-trip re-import.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.products, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode products: %w", err)
	}
	return data, nil
}

// ExportCSV serializes the product collection in the tabular form, one row
// per product with the derived status label appended.
func (s *Store) ExportCSV() ([]byte, error) {
	records := make([]*csvRecord, 0, len(s.products))
	for _, p := range s.products {
		records = append(records, &csvRecord{
			Name:         p.Name,
			Category:     p.Category,
			Quantity:     fmt.Sprintf("%d", p.Quantity),
			MinThreshold: fmt.Sprintf("%d", p.MinThreshold),
			Unit:         p.Unit,
			Status:       model.ProductStatus(p).Label(),
		})
	}
	data, err := gocsv.MarshalBytes(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CSV: %w", err)
	}
	return data, nil
}

// ImportJSON replaces the product collection wholesale with the structured
// dump in data. Anything that is not a sequence of product records is a
// format error; there is no per-field validation and no merge.
func (s *Store) ImportJSON(ctx context.Context, data []byte) (Notification, error) {
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return notifyError("invalid import format: expected an array of products"), nil
	}
	// a literal null decodes into a nil slice; it is not an array and must
	// not wipe the collection
	if products == nil {
		return notifyError("invalid import format: expected an array of products"), nil
	}
	return s.replaceProducts(ctx, products)
}

// ImportCSV replaces the product collection with rows parsed by positional
// column order. The first line is assumed to be a header and discarded
// without validation; missing numeric cells fall back to the usual defaults
// and every row gets a fresh id.
func (s *Store) ImportCSV(ctx context.Context, data []byte) (Notification, error) {
	rows := dropHeaderLine(bytes.TrimSpace(data))

	var products []model.Product
	if len(rows) > 0 {
		var records []*csvRecord
		if err := gocsv.UnmarshalWithoutHeaders(bytes.NewReader(rows), &records); err != nil {
			return notifyError("invalid CSV: %v", err), nil
		}
		products = make([]model.Product, 0, len(records))
		for _, r := range records {
			unit := r.Unit
			if unit == "" {
				unit = model.DefaultUnit
			}
			products = append(products, model.Product{
				ID:           s.ids.Generate().Int64(),
				Name:         r.Name,
				Category:     r.Category,
				Quantity:     coerceQuantity(r.Quantity),
				MinThreshold: coerceThreshold(r.MinThreshold),
				Unit:         unit,
			})
		}
	}
	return s.replaceProducts(ctx, products)
}

func (s *Store) replaceProducts(ctx context.Context, products []model.Product) (Notification, error) {
	if err := s.putJSON(ctx, storage.ProductsKey, products); err != nil {
		return Notification{}, err
	}
	s.products = products

	// imported rows may reference categories we have never seen
	if err := s.ExtractCategories(ctx); err != nil {
		return Notification{}, err
	}
	return notifySuccess("imported %d products", len(products)), nil
}

func dropHeaderLine(data []byte) []byte {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return data[i+1:]
	}
	return nil
}
