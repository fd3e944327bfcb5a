package models

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CardRequest carries the form fields of a compose request. Name and
// designation may be empty; QRData is optional and adds a QR overlay when set.
type CardRequest struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	QRData      string `json:"qr_data,omitempty"`
}
