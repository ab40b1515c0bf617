package request

// ToggleRequest is the request body for toggling a cell
type ToggleRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
