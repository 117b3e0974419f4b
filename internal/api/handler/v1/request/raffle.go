package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

// Amounts are in cents.
type CreateRaffleRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	GoalAmount  int64      `json:"goal_amount"`
	TicketPrice int64      `json:"ticket_price"`
	Category    string     `json:"category"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     time.Time  `json:"end_date"`
}

func (req *CreateRaffleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(10, 200)),
		validation.Field(&req.Description, validation.Required, validation.Length(50, 5000)),
		validation.Field(&req.ImageURL, is.URL),
		validation.Field(&req.GoalAmount, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.TicketPrice, validation.Required, validation.Min(int64(1))),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
}

func (req *CreateRaffleRequest) ToDomain(organizerID, organizerName string) domain.Raffle {
	raffle := domain.Raffle{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		GoalAmount:    req.GoalAmount,
		TicketPrice:   req.TicketPrice,
		Category:      req.Category,
		OrganizerID:   organizerID,
		OrganizerName: organizerName,
		EndDate:       req.EndDate,
	}
	if req.StartDate != nil {
		raffle.StartDate = *req.StartDate
	}

	return raffle
}

type UpdateRaffleStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateRaffleStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In(string(domain.RaffleCompleted), string(domain.RaffleCancelled))),
	)
}
