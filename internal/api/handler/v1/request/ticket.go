package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

type PurchaseTicketsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Quantity int    `json:"quantity"`
}

func (req *PurchaseTicketsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, validation.Length(10, 30)),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

func (req *PurchaseTicketsRequest) Participant() domain.ParticipantInfo {
	return domain.ParticipantInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdatePaymentStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required, validation.In(
			string(domain.PaymentPending),
			string(domain.PaymentCompleted),
			string(domain.PaymentFailed),
		)),
	)
}
