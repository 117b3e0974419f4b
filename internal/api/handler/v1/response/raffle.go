package response

import (
	"github.com/google/uuid"

	"github.com/vietanh2810/raffle-api/internal/domain"
)

type Raffle struct {
	domain.Raffle
	Progress domain.Progress `json:"progress"`
}

type TicketNumbers struct {
	RaffleID      uuid.UUID `json:"raffle_id"`
	TicketNumbers []int     `json:"ticket_numbers"`
}

type Purchase struct {
	RaffleID      uuid.UUID       `json:"raffle_id"`
	TicketNumbers []int           `json:"ticket_numbers"`
	TotalAmount   int64           `json:"total_amount"`
	Tickets       []domain.Ticket `json:"tickets"`
}

func NewPurchase(raffleID uuid.UUID, tickets []domain.Ticket) Purchase {
	p := Purchase{
		RaffleID:      raffleID,
		TicketNumbers: make([]int, len(tickets)),
		Tickets:       tickets,
	}
	for i, t := range tickets {
		p.TicketNumbers[i] = t.TicketNumber
		p.TotalAmount += t.PaymentAmount
	}

	return p
}
