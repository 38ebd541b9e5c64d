package entity

import "time"

// PartModel es una entrada del catálogo: un tipo de repuesto o consumible en stock.
// MinThreshold = 0 significa "sin monitoreo de stock bajo" (excluido de alertas).
type PartModel struct {
	ID            string
	ModelCode     string // clave de negocio, única
	ModelName     string
	Specification string
	Unit          string // unidad de presentación ("unidad", "caja", "metro"...)
	Category      string
	Description   string
	MinThreshold  int64 // >= 0
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Monitored indica si el modelo participa en la clasificación de stock bajo.
func (p *PartModel) Monitored() bool {
	return p.MinThreshold > 0
}
