package domain

import "github.com/google/uuid"

type PlatformStats struct {
	TotalRaffles int64 `json:"total_raffles"`
	TotalTickets int64 `json:"total_tickets"`
	TotalRaised  int64 `json:"total_raised"`
}

// ReconcileReport describes one reconciliation of a raffle's aggregates
// against its completed tickets.
type ReconcileReport struct {
	RaffleID          uuid.UUID `json:"raffle_id"`
	TicketsSoldBefore int       `json:"tickets_sold_before"`
	TicketsSoldAfter  int       `json:"tickets_sold_after"`
	RaisedBefore      int64     `json:"raised_amount_before"`
	RaisedAfter       int64     `json:"raised_amount_after"`

	LastTicketNumberBefore int   `json:"last_ticket_number_before"`
	LastTicketNumber       int   `json:"last_ticket_number"`
	Gaps                   []int `json:"gaps,omitempty"`
}

// Changed reports whether the aggregates or the claim counter were corrected.
func (r ReconcileReport) Changed() bool {
	return r.TicketsSoldBefore != r.TicketsSoldAfter ||
		r.RaisedBefore != r.RaisedAfter ||
		r.LastTicketNumberBefore != r.LastTicketNumber
}

type Dashboard struct {
	Raffle       Raffle        `json:"raffle"`
	Progress     Progress      `json:"progress"`
	Participants []Participant `json:"participants"`
	Chart        []DailyCount  `json:"chart"`
}
