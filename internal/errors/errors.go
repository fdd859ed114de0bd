// internal/errors/errors.go
package appErrors

import "fmt"

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// ErrCustomerNotFound signals an order referencing an unknown customer email
type ErrCustomerNotFound struct {
	Email string
}

func (e *ErrCustomerNotFound) Error() string {
	return fmt.Sprintf("customer with email %s not found", e.Email)
}

func NewCustomerNotFound(email string) error {
	return &ErrCustomerNotFound{Email: email}
}

// ErrInvalidCampaign rejects a create payload before any row is written
type ErrInvalidCampaign struct {
	Reason string
}

func (e *ErrInvalidCampaign) Error() string {
	return e.Reason
}

func NewInvalidCampaign(reason string) error {
	return &ErrInvalidCampaign{Reason: reason}
}

// ErrContactNotFound covers audience contacts
type ErrContactNotFound struct {
	ContactID string
}

func (e *ErrContactNotFound) Error() string {
	return fmt.Sprintf("contact with ID %s not found", e.ContactID)
}

func NewContactNotFound(id string) error {
	return &ErrContactNotFound{ContactID: id}
}
