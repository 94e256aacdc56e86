package http

import (
	"github.com/storefront/core/internal/domain/entities"
)

// Response is the uniform JSON envelope returned by every API route
type Response struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message,omitempty"`
	Data        interface{} `json:"data,omitempty"`
	Count       *int        `json:"count,omitempty"`
	SearchQuery string      `json:"searchQuery,omitempty"`
}

// CartResponse is the envelope variant used by cart routes, which carry
// the cart under its own key instead of data.
type CartResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Cart    []entities.CartItem `json:"cart"`
}

// listResponse wraps a collection with its count
func listResponse(data interface{}, count int) Response {
	n := count
	return Response{
		Success: true,
		Data:    data,
		Count:   &n,
	}
}

// dataResponse wraps a single record, optionally with a message
func dataResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// errorResponse wraps a failure message
func errorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}
