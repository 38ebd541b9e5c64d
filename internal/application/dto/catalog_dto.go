package dto

import "time"

// DepartmentRequest body para crear un departamento.
type DepartmentRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// DepartmentResponse departamento en respuestas.
type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierRequest body para crear/actualizar un proveedor.
type SupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}

// AppDataEntry par clave/valor de datos de aplicación.
type AppDataEntry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
