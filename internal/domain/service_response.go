package domain

import (
	"errors"
	"fmt"
)

type ServiceStatus string

const (
	StatusCreated  ServiceStatus = "Created"
	StatusUpdated  ServiceStatus = "Updated"
	StatusDeleted  ServiceStatus = "Deleted"
	StatusNotFound ServiceStatus = "NotFound"
	StatusError    ServiceStatus = "Error"
)

// ErrConcurrencyConflict is returned when an update matched no row although the
// row still exists. Nothing sensible can be done about it inside one operation.
var ErrConcurrencyConflict = errors.New("concurrency conflict")

// ServiceResponse is the result of every mutating service call.
type ServiceResponse struct {
	Status    ServiceStatus `json:"status"`
	Messages  []string      `json:"messages"`
	CreatedID int64         `json:"created_id,omitempty"`
}

func NewResponse(status ServiceStatus, messages ...string) ServiceResponse {
	return ServiceResponse{Status: status, Messages: append([]string{}, messages...)}
}

func Created(id int64) ServiceResponse {
	return ServiceResponse{Status: StatusCreated, Messages: []string{}, CreatedID: id}
}

func (r *ServiceResponse) AddMessage(format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

func (r ServiceResponse) Is(status ServiceStatus) bool {
	return r.Status == status
}

// Succeeded reports whether the operation changed the store.
func (r ServiceResponse) Succeeded() bool {
	switch r.Status {
	case StatusCreated, StatusUpdated, StatusDeleted:
		return true
	}
	return false
}

const (
	MsgDessertNotFound     = "Dessert was not found."
	MsgIngredientNotFound  = "Ingredient was not found."
	MsgInstructionNotFound = "Instruction was not found."
	MsgReviewNotFound      = "Review was not found."
	MsgNoFileContent       = "No File Content"
)
