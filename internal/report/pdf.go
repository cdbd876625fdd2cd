// Package report renders the inventory valuation report as a PDF using
// go-pdf/fpdf: a summary block with the dashboard figures followed by the
// product table, with critical-stock rows marked.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/metrics"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

// GenerarReporteInventario writes an A4 inventory report for the given
// product list. storagePath is created if needed; the absolute path of the
// generated file is returned.
func GenerarReporteInventario(productos []model.Producto, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("report: create storage dir: %w", err)
	}

	now := time.Now()
	fileName := fmt.Sprintf("inventario_%s.pdf", now.Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	resumen := metrics.Calcular(productos)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Reporte de Inventario", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, now.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Summary block ────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Resumen", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	linea := func(label, valor string) {
		pdf.CellFormat(contentW*0.5, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.5, 6, valor, "", 1, "R", false, 0, "")
	}
	linea("Valor total del inventario:", "$"+resumen.ValorInventario.StringFixed(2))
	linea("Capital invertido:", "$"+resumen.CapitalInvertido.StringFixed(2))
	linea("Ganancia proyectada:", "$"+resumen.GananciaProyectada.StringFixed(2))
	linea("Productos con stock critico:", fmt.Sprintf("%d", resumen.StockCritico))
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	col := []float64{contentW * 0.30, contentW * 0.18, contentW * 0.14, contentW * 0.13, contentW * 0.10, contentW * 0.15}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col[0], 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[1], 6, "Categoria", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[2], 6, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col[3], 6, "Costo", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col[4], 6, "Stock", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col[5], 6, "Gan. total", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for i := range productos {
		p := &productos[i]
		nombre := p.Nombre
		// Truncate on runes; the core fonts have no ellipsis glyph
		if runes := []rune(nombre); len(runes) > 38 {
			nombre = string(runes[:35]) + "..."
		}
		if metrics.EsCritico(p) {
			pdf.SetTextColor(200, 30, 30)
			if deficit := metrics.DeficitReposicion(p); deficit > 0 {
				nombre += fmt.Sprintf(" (faltan %d)", deficit)
			} else {
				nombre += " (en el limite)"
			}
		}
		pdf.CellFormat(col[0], 5.5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 5.5, p.NombreCategoria(), "", 0, "L", false, 0, "")
		pdf.CellFormat(col[2], 5.5, "$"+p.Precio.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col[3], 5.5, "$"+p.Costo().StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col[4], 5.5, fmt.Sprintf("%d", p.Stock), "", 0, "C", false, 0, "")
		pdf.CellFormat(col[5], 5.5, "$"+metrics.GananciaTotal(p).StringFixed(2), "", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	if len(productos) == 0 {
		pdf.CellFormat(contentW, 8, "No hay productos registrados.", "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("report: write file: %w", err)
	}
	return filePath, nil
}
