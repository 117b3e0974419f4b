package domain

import (
	"time"

	"github.com/google/uuid"
)

type RaffleStatus string

const (
	RaffleActive    RaffleStatus = "active"
	RaffleCompleted RaffleStatus = "completed"
	RaffleCancelled RaffleStatus = "cancelled"
)

// Amounts are in minor currency units (cents).
type Raffle struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	ImageURL      string       `json:"image_url,omitempty"`
	GoalAmount    int64        `json:"goal_amount"`
	RaisedAmount  int64        `json:"raised_amount"`
	TicketPrice   int64        `json:"ticket_price"`
	TicketsTotal  int          `json:"tickets_total"`
	TicketsSold   int          `json:"tickets_sold"`
	Category      string       `json:"category"`
	Status        RaffleStatus `json:"status"`
	OrganizerID   string       `json:"organizer_id"`
	OrganizerName string       `json:"organizer_name"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// IsOpen reports whether tickets can still be bought at now.
func (r Raffle) IsOpen(now time.Time) bool {
	return r.Status == RaffleActive && !r.EndDate.Before(now)
}

func (r Raffle) OwnedBy(organizerID string) bool {
	return organizerID != "" && r.OrganizerID == organizerID
}

// CanTransitionTo allows an active raffle to be closed either way. Closed
// raffles stay closed.
func (s RaffleStatus) CanTransitionTo(next RaffleStatus) bool {
	return s == RaffleActive && (next == RaffleCompleted || next == RaffleCancelled)
}

// TicketsTotalFor is the capacity hint stored at creation: enough tickets to
// reach the goal at the given price.
func TicketsTotalFor(goal, price int64) int {
	if price <= 0 {
		return 0
	}

	return int((goal + price - 1) / price)
}

type RaffleSort string

const (
	SortNewest  RaffleSort = "newest"
	SortEnding  RaffleSort = "ending"
	SortPopular RaffleSort = "popular"
	SortGoal    RaffleSort = "goal"
)

type RaffleFilter struct {
	Category string
	Search   string
	Sort     RaffleSort
}
