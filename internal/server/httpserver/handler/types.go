package handler

import "github.com/avelys/rolodex-go/internal/core/domain"

// errorResponse is the body of every error reply.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// messageResponse is the body of replies that carry only a
// confirmation message.
type messageResponse struct {
	Message string `json:"message"`
}

// contactResponse confirms a contact mutation and echoes the stored
// record.
type contactResponse struct {
	Message string         `json:"message"`
	Contact domain.Contact `json:"contact"`
}
