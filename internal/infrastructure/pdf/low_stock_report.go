// Package pdf genera el reporte imprimible de alertas de stock bajo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Unidad | Stock | Umbral | Déficit  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de modelos en alerta                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/Wesley1888/InvenMate/internal/application/dto"
	"github.com/Wesley1888/InvenMate/internal/application/report"
)

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ report.LowStockPDFGenerator = (*LowStockReport)(nil)

// LowStockReport implementa report.LowStockPDFGenerator usando Maroto v2.
type LowStockReport struct{}

// NewLowStockReport construye el generador.
func NewLowStockReport() *LowStockReport { return &LowStockReport{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *LowStockReport) Generate(alerts []dto.LowStockAlertDTO, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Alertas de stock bajo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(alerts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(alerts)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("ALERTAS DE STOCK BAJO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Modelos monitoreados con saldo bajo su umbral mínimo", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de alertas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Unidad", 1, align.Center),
		h("Stock", 1, align.Right),
		h("Umbral", 1, align.Right),
		h("Déficit", 2, align.Right),
		h("Nivel", 1, align.Center),
	)
}

// tableRows: una fila por alerta; el déficit en rojo para niveles críticos.
func tableRows(alerts []dto.LowStockAlertDTO) []core.Row {
	result := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		deficitColor := colorGray
		if a.Level == "critical" {
			deficitColor = colorCritical
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(a.ModelCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(a.ModelName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(a.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprint(a.CurrentQuantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(fmt.Sprint(a.MinThreshold), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(fmt.Sprint(a.Deficit), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: deficitColor,
			})),
			col.New(1).Add(text.New(a.Level, props.Text{Size: 7, Align: align.Center, Top: 1})),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(10).Add(col.New(12).Add(
			text.New("Sin alertas: todos los modelos monitoreados están sobre su umbral.", props.Text{
				Size: 9, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	return result
}

// footerRow: total de modelos en alerta.
func footerRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de modelos en alerta: %d", count), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
		}),
	))
}
