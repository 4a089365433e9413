// Package pdf genera el resumen imprimible de una orden de compra con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Orden de Compra + ID  │  Estado + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre / Contacto / Condiciones de pago          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Cantidad                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COTIZACIONES (solo manager): Proveedor | Precio | Estado    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Instrucciones especiales + fecha de entrega                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/json"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/domain/entity"
)

var _ procurement.OrderPDFGenerator = (*MarotoOrderPDF)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoOrderPDF genera el resumen de orden usando Maroto v2.
type MarotoOrderPDF struct{}

// NewMarotoOrderPDF construye el generador.
func NewMarotoOrderPDF() *MarotoOrderPDF { return &MarotoOrderPDF{} }

// materialLine representa una fila de la tabla de materiales. El payload de
// materials es JSON opaco; se intenta el formato [{"name": ..., "qty": ...}]
// y si no cuadra se imprime el crudo.
type materialLine struct {
	Name string          `json:"name"`
	Qty  json.RawMessage `json:"qty"`
}

// GenerateOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoOrderPDF) GenerateOrderPDF(
	_ context.Context,
	order *entity.PurchaseOrder,
	vendor *entity.VendorProfile,
	quotes []*entity.Quote,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+order.ID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vendorRow(vendor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(materialsHeaderRow())
	for _, r := range materialRows(order.Materials) {
		m.AddRows(r)
	}

	if len(quotes) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(quotesHeaderRow())
		for _, q := range quotes {
			m.AddRows(quoteRow(q))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + ID (izq) y estado + fecha (der).
func headerRow(order *entity.PurchaseOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Estado: "+order.Status, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Creada: "+order.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// vendorRow: datos del proveedor destino.
func vendorRow(vendor *entity.VendorProfile) core.Row {
	verificado := "sin verificar"
	if vendor.IsVerified {
		verificado = "verificado"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)   |   %s   |   Pago: %s",
				vendor.Name, verificado,
				nonEmpty(vendor.ContactEmail, "—"),
				nonEmpty(vendor.PaymentTerms, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func materialsHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(9).Add(text.New("Material", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(3).Add(text.New("Cantidad", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
	)
}

func materialRows(raw []byte) []core.Row {
	var lines []materialLine
	if err := json.Unmarshal(raw, &lines); err != nil || len(lines) == 0 {
		return []core.Row{row.New(6).Add(
			col.New(12).Add(text.New(string(raw), props.Text{Size: 7, Color: colorGray, Top: 1})),
		)}
	}
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New(l.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(string(l.Qty), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

func quotesHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Cotización", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1})),
		col.New(3).Add(text.New("Precio", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New("Estado", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
	)
}

func quoteRow(q *entity.Quote) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(q.ID, props.Text{Size: 7, Color: colorGray, Top: 1})),
		col.New(3).Add(text.New("$"+q.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(q.Status, props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func footerRow(order *entity.PurchaseOrder) core.Row {
	entrega := "—"
	if order.DeliveryDate != nil {
		entrega = order.DeliveryDate.Format("02/01/2006")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Entrega: "+entrega, props.Text{Size: 8, Top: 1}),
			text.New("Instrucciones: "+nonEmpty(order.SpecialInstructions, "—"), props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
