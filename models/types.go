package models

import "time"

// Row type tags
const (
	TypeComponent  = "component"
	TypeElectrical = "electrical"
)

// Request types

// LookupRequest carries the lookup parameters accepted in a POST body.
// Only the field relevant to the endpoint is read.
type LookupRequest struct {
	SerialNumber LookupParam `json:"serialNumber"`
	JobNumber    LookupParam `json:"jobNumber"`
}

// Domain types

type Burner struct {
	ID           int64     `json:"id"`
	SerialNumber string    `json:"serial_number"`
	Model        *string   `json:"model"`
	CustomerName *string   `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type Component struct {
	ID              int64   `json:"id"`
	BurnerID        int64   `json:"burner_id"`
	PartCode        string  `json:"part_code"`
	PartDescription string  `json:"part_description"`
	Quantity        float64 `json:"quantity"`
	Tags            *string `json:"tags"`
}

type Job struct {
	ID           int64     `json:"id"`
	JobNumber    string    `json:"job_number"`
	CustomerName string    `json:"customer_name"`
	Filename     string    `json:"filename"`
	CreatedAt    time.Time `json:"created_at"`
	BurnerType   string    `json:"burner_type"`
}

type JobComponent struct {
	ID              int64   `json:"id"`
	JobNumber       string  `json:"job_number"`
	SheetName       string  `json:"sheet_name"`
	PartCode        string  `json:"part_code"`
	PartDescription string  `json:"part_description"`
	Quantity        float64 `json:"quantity"`
	Tags            *string `json:"tags"`
}

type JobElectricalItem struct {
	ID          int64   `json:"id"`
	JobNumber   string  `json:"job_number"`
	SheetName   string  `json:"sheet_name"`
	ItemCode    string  `json:"item_code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Notes       *string `json:"notes"`
}

// ElectricalRow is an electrical item coerced into the component shape
// used inside a sheet.
type ElectricalRow struct {
	PartCode        string  `json:"part_code"`
	PartDescription string  `json:"part_description"`
	Quantity        float64 `json:"quantity"`
	Tags            *string `json:"tags"`
	Type            string  `json:"type"`
}

// Response types

type BurnerResponse struct {
	Burner     Burner      `json:"burner"`
	Components []Component `json:"components"`
}

// Sheets is typed as any so models stays free of the grouping package;
// handlers put a *sheets.Sheets here.
type JobResponse struct {
	Job             Job `json:"job"`
	Sheets          any `json:"sheets"`
	SheetCount      int `json:"sheetCount"`
	TotalComponents int `json:"totalComponents"`
}

type JobDetailResponse struct {
	Job                  Job `json:"job"`
	Sheets               any `json:"sheets"`
	SheetCount           int `json:"sheetCount"`
	TotalComponents      int `json:"totalComponents"`
	TotalElectricalItems int `json:"totalElectricalItems"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DebugResponse struct {
	Message     string           `json:"message"`
	Environment DebugEnvironment `json:"environment"`
}

type DebugEnvironment struct {
	DatabaseURL  string `json:"databaseUrl"`
	DatabaseType string `json:"databaseType"`
	GoVersion    string `json:"goVersion"`
	Version      string `json:"version"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
