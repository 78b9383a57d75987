package report

import (
	"strings"
	"unicode"
)

// Column identifies one table column by its camelCase key. The keys, their
// canonical order and the header-label derivation below are load-bearing:
// existing exported reports depend on them.
type Column string

const (
	ColImage       Column = "image"
	ColProductCode Column = "productCode"
	ColName        Column = "name"
	ColProduct     Column = "product"
	ColBrand       Column = "brand"
	ColDimensions  Column = "dimensions"
	ColMaterial    Column = "material"
	ColFinish      Column = "finish"
	ColQuantity    Column = "quantity"
	ColUnitPrice   Column = "unitPrice"
	ColTotalPrice  Column = "totalPrice"
	ColLeadTime    Column = "leadTime"
	ColSupplier    Column = "supplier"
	ColStatus      Column = "status"
)

// columnOrder is the canonical order. Visibility removes columns, it never
// reorders them.
var columnOrder = []Column{
	ColImage, ColProductCode, ColName, ColProduct, ColBrand, ColDimensions,
	ColMaterial, ColFinish, ColQuantity, ColUnitPrice, ColTotalPrice,
	ColLeadTime, ColSupplier, ColStatus,
}

// columnWidths are relative widths, normalized over the visible set.
var columnWidths = map[Column]float64{
	ColImage:       10,
	ColProductCode: 8,
	ColName:        12,
	ColProduct:     12,
	ColBrand:       8,
	ColDimensions:  10,
	ColMaterial:    8,
	ColFinish:      8,
	ColQuantity:    6,
	ColUnitPrice:   6,
	ColTotalPrice:  6,
	ColLeadTime:    8,
	ColSupplier:    8,
	ColStatus:      6,
}

// Visibility is the per-column boolean map controlling which fields appear in
// an export. JSON keys are the column keys.
type Visibility struct {
	Image       bool `json:"image"`
	ProductCode bool `json:"productCode"`
	Name        bool `json:"name"`
	Product     bool `json:"product"`
	Brand       bool `json:"brand"`
	Dimensions  bool `json:"dimensions"`
	Material    bool `json:"material"`
	Finish      bool `json:"finish"`
	Quantity    bool `json:"quantity"`
	UnitPrice   bool `json:"unitPrice"`
	TotalPrice  bool `json:"totalPrice"`
	LeadTime    bool `json:"leadTime"`
	Supplier    bool `json:"supplier"`
	Status      bool `json:"status"`
}

// AllColumns shows everything.
func AllColumns() Visibility {
	return Visibility{
		Image: true, ProductCode: true, Name: true, Product: true,
		Brand: true, Dimensions: true, Material: true, Finish: true,
		Quantity: true, UnitPrice: true, TotalPrice: true, LeadTime: true,
		Supplier: true, Status: true,
	}
}

func (v Visibility) enabled(c Column) bool {
	switch c {
	case ColImage:
		return v.Image
	case ColProductCode:
		return v.ProductCode
	case ColName:
		return v.Name
	case ColProduct:
		return v.Product
	case ColBrand:
		return v.Brand
	case ColDimensions:
		return v.Dimensions
	case ColMaterial:
		return v.Material
	case ColFinish:
		return v.Finish
	case ColQuantity:
		return v.Quantity
	case ColUnitPrice:
		return v.UnitPrice
	case ColTotalPrice:
		return v.TotalPrice
	case ColLeadTime:
		return v.LeadTime
	case ColSupplier:
		return v.Supplier
	case ColStatus:
		return v.Status
	}
	return false
}

// Columns returns the enabled columns in canonical order.
func (v Visibility) Columns() []Column {
	out := make([]Column, 0, len(columnOrder))
	for _, c := range columnOrder {
		if v.enabled(c) {
			out = append(out, c)
		}
	}
	return out
}

// Label turns a camelCase column key into its header label: the first rune is
// upper-cased and a space goes before every interior uppercase rune, so
// "unitPrice" renders as "Unit Price".
func Label(c Column) string {
	var sb strings.Builder
	for i, r := range string(c) {
		if i == 0 {
			sb.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
