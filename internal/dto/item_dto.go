package dto

// ItemRequest is the body for both create and update. Update replaces every
// mutable field; the owner is never taken from the body.
type ItemRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Status       string  `json:"status" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	Date         string  `json:"date" validate:"required"`
	Image        *string `json:"image"`
	ContactName  string  `json:"contactName" validate:"required"`
	ContactPhone string  `json:"contactPhone" validate:"required"`
	ContactEmail string  `json:"contactEmail" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
