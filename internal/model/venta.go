package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Venta is one sale record from GET /ventas. Append-only: the client never
// mutates or deletes these. NombreProducto is denormalized at sale time;
// CostoUnitario is a cost-price snapshot, absent on older records.
type Venta struct {
	ID              int64            `json:"id"`
	FechaVenta      FechaLocal       `json:"fechaVenta"`
	NombreProducto  string           `json:"nombreProducto"`
	ProductoID      *int64           `json:"productoId"`
	CantidadVendida int              `json:"cantidadVendida"`
	PrecioUnitario  decimal.Decimal  `json:"precioUnitario"`
	MontoTotal      decimal.Decimal  `json:"montoTotal"`
	CostoUnitario   *decimal.Decimal `json:"costoUnitario"`
}

// Costo returns the cost snapshot, treating a missing snapshot as zero.
func (v *Venta) Costo() decimal.Decimal {
	if v.CostoUnitario == nil {
		return decimal.Zero
	}
	return *v.CostoUnitario
}

// GananciaReal is montoTotal - costoUnitario*cantidad for this record.
func (v *Venta) GananciaReal() decimal.Decimal {
	return v.MontoTotal.Sub(v.Costo().Mul(decimal.NewFromInt(int64(v.CantidadVendida))))
}

// FechaLocal wraps time.Time to accept the backend's zone-less timestamps
// ("2006-01-02T15:04:05.999") as well as RFC 3339. Zone-less values are
// interpreted in the local zone, the same zone the date filters are built in,
// so day-granularity comparisons line up.
type FechaLocal struct {
	time.Time
}

const layoutLocal = "2006-01-02T15:04:05"

func (f *FechaLocal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		f.Time = t
		return nil
	}
	// Fractional seconds are optional on the wire
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if t, err := time.ParseInLocation(layoutLocal+".999999999", s, time.Local); err == nil {
			f.Time = t
			return nil
		}
	}
	t, err := time.ParseInLocation(layoutLocal, s, time.Local)
	if err != nil {
		return fmt.Errorf("model: parse fechaVenta %q: %w", s, err)
	}
	f.Time = t
	return nil
}

func (f FechaLocal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Format(layoutLocal) + `"`), nil
}
