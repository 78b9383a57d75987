package report

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/specbook-io/specbook/internal/modules/model"
)

// Options parameterizes one export. Everything about the visual layout is
// determined by (Theme, Columns, item data).
type Options struct {
	Theme            Theme
	Columns          Visibility
	ProjectName      string
	ScheduleName     string
	ClientName       string
	OrganizationName string
}

// Generator renders schedule exports. It is stateless apart from the image
// fetcher and safe for concurrent use.
type Generator struct {
	images *imageFetcher
}

// NewGenerator returns a ready generator.
func NewGenerator() *Generator {
	return &Generator{images: newImageFetcher()}
}

// Generate renders a paginated document: a cover page, then one page per
// category in first-seen order over the item list. The renderer is a read
// boundary; internal panics are recovered and returned as errors, and a
// broken image degrades to an empty cell rather than failing the document.
func (g *Generator) Generate(ctx context.Context, items []model.Item, opts Options) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("report: render failed: %v", r)
		}
	}()

	st, ok := themeStyles[opts.Theme]
	if !ok {
		return nil, fmt.Errorf("report: unknown theme %q", opts.Theme)
	}
	cols := opts.Columns.Columns()
	if len(cols) == 0 {
		return nil, fmt.Errorf("report: no visible columns")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCreator(opts.OrganizationName, false)
	pdf.SetTitle(opts.ProjectName+" - "+opts.ScheduleName, false)
	pdf.SetMargins(st.pageMargin, st.pageMargin, st.pageMargin)
	pdf.SetAutoPageBreak(false, st.pageMargin)
	pdf.AliasNbPages("")

	// Footer: the cover page carries only the organization name, every
	// other page "{org} - Page {n} of {total}".
	pdf.SetFooterFunc(func() {
		pdf.SetY(-st.pageMargin)
		pdf.SetFont(st.font, "", st.footerSize)
		pdf.SetTextColor(st.footerColor.r, st.footerColor.g, st.footerColor.b)
		text := opts.OrganizationName
		if pdf.PageNo() > 1 {
			text = fmt.Sprintf("%s - Page %d of {nb}", opts.OrganizationName, pdf.PageNo())
		}
		pdf.CellFormat(0, 6, text, "", 0, "C", false, 0, "")
	})

	g.coverPage(pdf, st, opts)

	order, groups := groupByFirstSeen(items)
	for _, category := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.categoryPage(ctx, pdf, st, opts, cols, category, groups[category])
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return buf.Bytes(), nil
}

// groupByFirstSeen buckets items by category name, keyed independently of
// the project category list: the report's page order is the order categories
// first appear in the item list.
func groupByFirstSeen(items []model.Item) ([]string, map[string][]model.Item) {
	order := []string{}
	groups := map[string][]model.Item{}
	for _, it := range items {
		if _, ok := groups[it.Category]; !ok {
			order = append(order, it.Category)
		}
		groups[it.Category] = append(groups[it.Category], it)
	}
	return order, groups
}

func (g *Generator) coverPage(pdf *fpdf.Fpdf, st style, opts Options) {
	pdf.AddPage()
	_, pageH := pdf.GetPageSize()

	pdf.SetY(pageH/2 - 30)
	pdf.SetFont(st.font, "B", st.coverTitleSize)
	pdf.SetTextColor(st.titleColor.r, st.titleColor.g, st.titleColor.b)
	pdf.CellFormat(0, 14, opts.ProjectName, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont(st.font, "", st.coverSubtitleSize)
	pdf.SetTextColor(st.subtitleColor.r, st.subtitleColor.g, st.subtitleColor.b)
	pdf.CellFormat(0, 10, opts.ScheduleName, "", 1, "C", false, 0, "")

	if opts.ClientName != "" {
		pdf.Ln(2)
		pdf.SetFont(st.font, "", st.coverInfoSize)
		pdf.SetTextColor(st.footerColor.r, st.footerColor.g, st.footerColor.b)
		pdf.CellFormat(0, 8, "Client: "+opts.ClientName, "", 1, "C", false, 0, "")
	}
}

func (g *Generator) categoryPage(ctx context.Context, pdf *fpdf.Fpdf, st style, opts Options, cols []Column, category string, items []model.Item) {
	pdf.AddPage()
	g.pageHeader(pdf, st, opts, category)

	pageW, pageH := pdf.GetPageSize()
	usable := pageW - 2*st.pageMargin
	widths := normalizeWidths(cols, usable)

	g.tableHeaderRow(pdf, st, cols, widths)
	for _, it := range items {
		// keep the row plus the footer above the bottom margin
		if pdf.GetY()+st.rowHeight > pageH-st.pageMargin-8 {
			pdf.AddPage()
			g.pageHeader(pdf, st, opts, category)
			g.tableHeaderRow(pdf, st, cols, widths)
		}
		g.bodyRow(ctx, pdf, st, cols, widths, it)
	}
}

func (g *Generator) pageHeader(pdf *fpdf.Fpdf, st style, opts Options, category string) {
	pdf.SetFont(st.font, "B", st.titleSize)
	pdf.SetTextColor(st.titleColor.r, st.titleColor.g, st.titleColor.b)
	pdf.CellFormat(0, 10, opts.ProjectName, "", 1, "L", false, 0, "")

	pdf.SetFont(st.font, "", st.subtitleSize)
	pdf.SetTextColor(st.subtitleColor.r, st.subtitleColor.g, st.subtitleColor.b)
	pdf.CellFormat(0, 6, opts.ScheduleName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, category, "", 1, "L", false, 0, "")
	pdf.Ln(3)
}

func normalizeWidths(cols []Column, usable float64) []float64 {
	total := 0.0
	for _, c := range cols {
		total += columnWidths[c]
	}
	out := make([]float64, len(cols))
	for i, c := range cols {
		out[i] = columnWidths[c] / total * usable
	}
	return out
}

func (g *Generator) tableHeaderRow(pdf *fpdf.Fpdf, st style, cols []Column, widths []float64) {
	pdf.SetFont(st.font, "B", st.headerSize)
	pdf.SetTextColor(st.headerText.r, st.headerText.g, st.headerText.b)
	pdf.SetFillColor(st.headerFill.r, st.headerFill.g, st.headerFill.b)
	pdf.SetDrawColor(st.border.r, st.border.g, st.border.b)
	for i, c := range cols {
		pdf.CellFormat(widths[i], st.rowHeight*0.8, Label(c), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func (g *Generator) bodyRow(ctx context.Context, pdf *fpdf.Fpdf, st style, cols []Column, widths []float64, it model.Item) {
	pdf.SetFont(st.font, "", st.cellSize)
	pdf.SetDrawColor(st.border.r, st.border.g, st.border.b)

	x0 := pdf.GetX()
	y0 := pdf.GetY()
	x := x0
	for i, c := range cols {
		w := widths[i]
		switch c {
		case ColImage:
			pdf.Rect(x, y0, w, st.rowHeight, "D")
			g.drawThumbnail(ctx, pdf, st, it, x, y0, w)
		case ColStatus:
			if fill, ok := st.statusFill[it.Status]; ok {
				pdf.SetFillColor(fill.r, fill.g, fill.b)
				pdf.SetXY(x, y0)
				pdf.SetTextColor(st.textColor.r, st.textColor.g, st.textColor.b)
				pdf.CellFormat(w, st.rowHeight, g.fit(pdf, string(it.Status), w, st), "1", 0, "L", true, 0, "")
			} else {
				g.textCell(pdf, st, string(it.Status), x, y0, w)
			}
		default:
			g.textCell(pdf, st, cellValue(c, it), x, y0, w)
		}
		x += w
	}
	pdf.SetXY(x0, y0+st.rowHeight)
}

func (g *Generator) textCell(pdf *fpdf.Fpdf, st style, text string, x, y, w float64) {
	pdf.SetXY(x, y)
	pdf.SetTextColor(st.textColor.r, st.textColor.g, st.textColor.b)
	pdf.CellFormat(w, st.rowHeight, g.fit(pdf, text, w, st), "1", 0, "L", false, 0, "")
}

// fit truncates text to the cell width with an ellipsis.
func (g *Generator) fit(pdf *fpdf.Fpdf, text string, w float64, st style) string {
	max := w - 2*st.cellPadding
	if pdf.GetStringWidth(text) <= max {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func (g *Generator) drawThumbnail(ctx context.Context, pdf *fpdf.Fpdf, st style, it model.Item, x, y, w float64) {
	if it.Image == "" {
		return
	}
	name, ok := g.images.register(ctx, pdf, it.Image)
	if !ok {
		// unfetchable image renders as an empty cell
		return
	}
	size := st.thumbSize
	pdf.ImageOptions(name, x+(w-size)/2, y+(st.rowHeight-size)/2, size, size, false, fpdf.ImageOptions{}, 0, "")
}

func cellValue(c Column, it model.Item) string {
	switch c {
	case ColProductCode:
		return it.ProductCode
	case ColName:
		return it.Name
	case ColProduct:
		return it.Product
	case ColBrand:
		return it.Brand
	case ColDimensions:
		return it.Dimensions
	case ColMaterial:
		return it.Material
	case ColFinish:
		return it.Finish
	case ColQuantity:
		return strconv.Itoa(it.Quantity)
	case ColUnitPrice:
		return money(it.Price)
	case ColTotalPrice:
		return money(it.LineTotal())
	case ColLeadTime:
		return it.LeadTime
	case ColSupplier:
		return it.Supplier
	case ColStatus:
		return string(it.Status)
	}
	return ""
}

// money renders "$1,234.56", dropping the fraction for whole amounts.
func money(v float64) string {
	whole := math.Trunc(v) == v
	var s string
	if whole {
		s = strconv.FormatFloat(v, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', 2, 64)
	}
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	n := len(intPart)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(intPart[i])
	}
	sb.WriteString(frac)
	return sb.String()
}
