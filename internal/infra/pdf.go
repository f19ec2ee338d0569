package infra

// Printable sales report using go-pdf/fpdf. A4 portrait with:
//   - venue name header and the queried date range
//   - one row per venta (fecha, nombre, cantidad, modo de pago, total)
//   - subtotal block per payment mode and bold grand total

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Finisterre/bastetmania/internal/model"
	"github.com/Finisterre/bastetmania/internal/stats"
)

// GenerarReporteVentasPDF renders the range report and returns the PDF bytes.
// ventas must already be restricted to [desde, hasta]; resumen must be the
// aggregation of that same slice.
func GenerarReporteVentasPDF(ventas []model.Venta, resumen stats.Resumen, desde, hasta time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; product names carry accents, so everything
	// user-visible goes through the translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Bastetmania", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	rango := fmt.Sprintf("Reporte de ventas - %s al %s",
		desde.Format("02/01/2006"), hasta.Format("02/01/2006"))
	pdf.CellFormat(contentW, 6, rango, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	colFecha := contentW * 0.22
	colNombre := contentW * 0.34
	colCant := contentW * 0.10
	colModo := contentW * 0.16
	colTotal := contentW * 0.18

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colFecha, 6, "Fecha", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colNombre, 6, "Detalle", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colCant, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colModo, 6, "Modo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colTotal, 6, "Total", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for i := range ventas {
		v := &ventas[i]
		nombre := stats.NombreVenta(v)
		if r := []rune(nombre); len(r) > 34 {
			nombre = string(r[:33]) + "..."
		}
		pdf.CellFormat(colFecha, 5, v.FechaVenta.Format("02/01/2006 15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(colNombre, 5, tr(nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(colCant, 5, fmt.Sprintf("x%d", v.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(colModo, 5, v.ModoPago, "", 0, "L", false, 0, "")
		pdf.CellFormat(colTotal, 5, "$"+v.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	labelW := colFecha + colNombre + colCant + colModo

	pdf.CellFormat(labelW, 5, "Efectivo:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 5, "$"+resumen.TotalEfectivo.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 5, "Digital:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 5, "$"+resumen.TotalDigital.StringFixed(2), "", 1, "R", false, 0, "")
	if resumen.CantidadBonanza > 0 {
		pdf.CellFormat(labelW, 5, fmt.Sprintf("Bonanza (%d entregas):", resumen.CantidadBonanza), "", 0, "R", false, 0, "")
		pdf.CellFormat(colTotal, 5, "$0.00", "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 7, "TOTAL GENERAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(colTotal, 7, "$"+resumen.TotalGeneral.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d ventas - %d unidades de producto, %d entradas",
		resumen.CantidadVentas, resumen.CantidadProductos, resumen.CantidadTickets), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
