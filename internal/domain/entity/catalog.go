package entity

import "time"

// Department destino de salidas de almacén.
type Department struct {
	ID        string
	Name      string // único
	Code      string
	CreatedAt time.Time
}

// Supplier proveedor asociado a órdenes de compra.
type Supplier struct {
	ID            string
	Name          string // único
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
}

// AppData par clave/valor para persistir datos ligeros de la aplicación.
type AppData struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
