package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/apierror"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/ledger"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/metrics"
	"github.com/MatiasPalacios5/sistema-gestion-inventario/internal/model"
)

// Transient notifications, the terminal stand-in for toasts.

func exito(msg string) {
	fmt.Println("✔ " + msg)
}

func fallo(err error) {
	var e *apierror.Error
	if errors.As(err, &e) {
		fmt.Fprintln(os.Stderr, "✖ "+e.Mensaje())
		return
	}
	fmt.Fprintln(os.Stderr, "✖ "+err.Error())
}

// formatearMoneda renders es-AR currency: "$ 1.234,56".
func formatearMoneda(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	entero, decimales := parts[0], parts[1]

	var b strings.Builder
	for i, r := range entero {
		if i > 0 && (len(entero)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "$ " + b.String() + "," + decimales
	if neg {
		out = "-" + out
	}
	return out
}

func nuevaTabla() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func renderProductos(productos []model.Producto) {
	if len(productos) == 0 {
		fmt.Println("No se encontraron productos.")
		return
	}
	w := nuevaTabla()
	fmt.Fprintln(w, "ID\tPRODUCTO\tCATEGORIA\tMARCA\tPRECIO\tSTOCK\tMARGEN\tESTADO")
	for i := range productos {
		p := &productos[i]
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ID, p.Nombre,
			oGuion(p.NombreCategoria()), oGuion(p.NombreMarca()),
			formatearMoneda(p.Precio), p.Stock,
			renderMargen(p), renderEstadoStock(p))
	}
	w.Flush()
}

func renderMargen(p *model.Producto) string {
	margen := p.Margen()
	switch metrics.ClasificarMargen(margen) {
	case metrics.MargenSano:
		return margen.StringFixed(1) + "%"
	case metrics.MargenBajo:
		return margen.StringFixed(1) + "% (bajo)"
	default:
		return margen.StringFixed(1) + "% (critico)"
	}
}

// renderEstadoStock distinguishes a product exactly at its threshold from one
// strictly below it.
func renderEstadoStock(p *model.Producto) string {
	if !metrics.EsCritico(p) {
		return "ok"
	}
	if deficit := metrics.DeficitReposicion(p); deficit > 0 {
		return fmt.Sprintf("critico: faltan %d", deficit)
	}
	return "critico: en el limite"
}

func renderCategorias(categorias []model.Categoria) {
	if len(categorias) == 0 {
		fmt.Println("No hay registros.")
		return
	}
	w := nuevaTabla()
	fmt.Fprintln(w, "ID\tNOMBRE")
	for _, c := range categorias {
		fmt.Fprintf(w, "%d\t%s\n", c.ID, c.Nombre)
	}
	w.Flush()
}

func renderMarcas(marcas []model.Marca) {
	if len(marcas) == 0 {
		fmt.Println("No hay marcas registradas.")
		return
	}
	w := nuevaTabla()
	fmt.Fprintln(w, "ID\tNOMBRE\tCATEGORIAS")
	for i := range marcas {
		m := &marcas[i]
		nombres := make([]string, 0, len(m.Categorias))
		for _, c := range m.Categorias {
			nombres = append(nombres, c.Nombre)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, m.Nombre, oGuion(strings.Join(nombres, ", ")))
	}
	w.Flush()
}

func renderVentas(ventas []model.Venta, totales ledger.Totales) {
	if len(ventas) == 0 {
		fmt.Println("No se han registrado ventas aun.")
		return
	}
	w := nuevaTabla()
	fmt.Fprintln(w, "FECHA\tPRODUCTO\tCANT.\tTOTAL")
	for i := range ventas {
		v := &ventas[i]
		nombre := v.NombreProducto
		if nombre == "" {
			nombre = "Producto desconocido"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			v.FechaVenta.Format("02/01/2006 15:04"), nombre,
			v.CantidadVendida, formatearMoneda(v.MontoTotal))
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Ingreso total:    " + formatearMoneda(totales.Monto))
	fmt.Printf("Unidades vendidas: %d\n", totales.Unidades)
	fmt.Println("Ganancia real:    " + formatearMoneda(totales.GananciaReal))
}

func renderDashboard(resumen metrics.Resumen, totalProductos int) {
	fmt.Println("── Panel de Inventario ──────────────────────────")
	fmt.Printf("Productos registrados:      %d\n", totalProductos)
	fmt.Println("Valor total del inventario: " + formatearMoneda(resumen.ValorInventario))
	fmt.Println("Capital invertido:          " + formatearMoneda(resumen.CapitalInvertido))
	fmt.Println("Ganancia proyectada:        " + formatearMoneda(resumen.GananciaProyectada))
	fmt.Printf("Stock critico:              %d producto(s)\n", resumen.StockCritico)
}

func oGuion(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
