// Package pdf genera el reporte de existencias de un puesto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Puesto      │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ítems / unidades / ítems bajo mínimo               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA EXISTENCIAS: Ítem | Condición | Actual | Mínimo | ⚠   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA MOVIMIENTOS: Fecha | Tipo | Ítem | Cant | Responsable │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia del reporte                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Vigilancia-api/internal/application/inventory"
	"github.com/jhoicas/Vigilancia-api/internal/domain/entity"
)

var _ inventory.StockReportGenerator = (*StockReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator implementa inventory.StockReportGenerator usando Maroto v2.
type StockReportGenerator struct {
	company string
}

// NewStockReportGenerator construye el generador; company aparece como autor del documento.
func NewStockReportGenerator(company string) *StockReportGenerator {
	return &StockReportGenerator{company: company}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(
	_ context.Context,
	locationID int64,
	stock []*entity.StockSnapshot,
	movements []*entity.MovementRecord,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Inventario puesto %d", locationID), true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(locationID, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stock))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("EXISTENCIAS"))
	m.AddRows(stockHeaderRow())
	m.AddRows(stockRows(stock)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("ÚLTIMOS MOVIMIENTOS"))
	m.AddRows(movementHeaderRow())
	m.AddRows(movementRows(movements)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(locationID, generatedAt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(locationID int64, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE INVENTARIO POR PUESTO", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Puesto N° "+strconv.FormatInt(locationID, 10), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func summaryRow(stock []*entity.StockSnapshot) core.Row {
	units, below := 0, 0
	for _, s := range stock {
		units += s.CurrentQuantity
		if s.BelowMinimum() {
			below++
		}
	}
	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: color, Align: align.Center, Top: 5}),
		)
	}
	belowColor := colorPrimary
	if below > 0 {
		belowColor = colorAlert
	}
	return row.New(14).Add(
		cell("Ítems", strconv.Itoa(len(stock)), colorPrimary),
		cell("Unidades", formatThousands(units), colorPrimary),
		cell("Bajo mínimo", strconv.Itoa(below), belowColor),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func stockHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Ítem (variante)", 4, align.Left),
		headerCell("Condición", 2, align.Center),
		headerCell("Actual", 2, align.Right),
		headerCell("Mínimo", 2, align.Right),
		headerCell("Estado", 2, align.Center),
	)
}

func stockRows(stock []*entity.StockSnapshot) []core.Row {
	if len(stock) == 0 {
		return []core.Row{emptyRow("Sin existencias registradas")}
	}
	rows := make([]core.Row, 0, len(stock))
	for _, s := range stock {
		status, color := "OK", colorGray
		if s.BelowMinimum() {
			status, color = "BAJO MÍNIMO", colorAlert
		}
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(strconv.FormatInt(s.ItemVariantID, 10), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(s.Condition, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatThousands(s.CurrentQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatThousands(s.MinimumQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(status, props.Text{Size: 7, Style: fontstyle.Bold, Align: align.Center, Top: 1, Color: color})),
		))
	}
	return rows
}

func movementHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Fecha", 3, align.Left),
		headerCell("Tipo", 2, align.Left),
		headerCell("Ítem", 2, align.Left),
		headerCell("Cant.", 1, align.Right),
		headerCell("Condición", 2, align.Center),
		headerCell("Responsable", 2, align.Left),
	)
}

func movementRows(movements []*entity.MovementRecord) []core.Row {
	if len(movements) == 0 {
		return []core.Row{emptyRow("Sin movimientos")}
	}
	rows := make([]core.Row, 0, len(movements))
	for _, m := range movements {
		qty := "-" + strconv.Itoa(m.Quantity)
		if m.Type == entity.MovementTypeDeliver {
			qty = "+" + strconv.Itoa(m.Quantity)
		}
		rows = append(rows, row.New(5).Add(
			col.New(3).Add(text.New(m.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 7, Top: 1, Left: 1})),
			col.New(2).Add(text.New(m.Type, props.Text{Size: 7, Top: 1})),
			col.New(2).Add(text.New(strconv.FormatInt(m.ItemVariantID, 10), props.Text{Size: 7, Top: 1})),
			col.New(1).Add(text.New(qty, props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(m.Condition, props.Text{Size: 7, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(m.ResponsiblePartyID, "—"), props.Text{Size: 6, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

func footerRow(locationID int64, at time.Time) core.Row {
	ref := fmt.Sprintf("inventario-puesto:%d:%s", locationID, at.UTC().Format(time.RFC3339))
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(ref, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Referencia del reporte", props.Text{Style: fontstyle.Bold, Size: 8, Top: 6, Left: 3, Color: colorPrimary}),
			text.New(ref, props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray}),
			text.New("Las existencias se derivan del libro de movimientos del puesto.", props.Text{Size: 6.5, Top: 20, Left: 3, Color: colorGray}),
		),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	l := len(s)
	if l <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, l+l/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
