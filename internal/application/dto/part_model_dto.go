package dto

import "time"

// CreatePartModelRequest body para POST /api/part-models.
type CreatePartModelRequest struct {
	ModelCode     string `json:"model_code"`
	ModelName     string `json:"model_name"`
	Specification string `json:"specification"`
	Unit          string `json:"unit"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	MinThreshold  int64  `json:"min_threshold"`
}

// UpdatePartModelRequest body para PUT /api/part-models/:id.
// ModelCode no es editable: es la clave de negocio.
type UpdatePartModelRequest struct {
	ModelName     string `json:"model_name"`
	Specification string `json:"specification"`
	Unit          string `json:"unit"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	MinThreshold  int64  `json:"min_threshold"`
}

// PartModelResponse representación de un modelo en respuestas.
type PartModelResponse struct {
	ID            string    `json:"id"`
	ModelCode     string    `json:"model_code"`
	ModelName     string    `json:"model_name"`
	Specification string    `json:"specification"`
	Unit          string    `json:"unit"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	MinThreshold  int64     `json:"min_threshold"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
