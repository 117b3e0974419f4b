package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}

	return false
}

// CanTransitionTo lists the allowed payment moves. Failed is terminal and a
// completed payment can only be reversed to failed.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return next == PaymentCompleted || next == PaymentFailed
	case PaymentCompleted:
		return next == PaymentFailed
	}

	return false
}

// SoldDelta is the change to a raffle's tickets_sold when one ticket moves
// from s to next. Only completed tickets are counted.
func (s PaymentStatus) SoldDelta(next PaymentStatus) int {
	switch {
	case s != PaymentCompleted && next == PaymentCompleted:
		return 1
	case s == PaymentCompleted && next != PaymentCompleted:
		return -1
	}

	return 0
}

type Ticket struct {
	ID               uuid.UUID     `json:"id"`
	RaffleID         uuid.UUID     `json:"raffle_id"`
	ParticipantEmail string        `json:"participant_email"`
	ParticipantName  string        `json:"participant_name"`
	ParticipantPhone string        `json:"participant_phone,omitempty"`
	TicketNumber     int           `json:"ticket_number"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	PaymentAmount    int64         `json:"payment_amount"`
	PurchaseDate     time.Time     `json:"purchase_date"`
	CreatedAt        time.Time     `json:"created_at"`
}

type TicketWithRaffle struct {
	Ticket
	RaffleTitle   string    `json:"raffle_title"`
	RaffleEndDate time.Time `json:"raffle_end_date"`
}

// ParticipantInfo is what a buyer hands over at checkout.
type ParticipantInfo struct {
	Name  string
	Email string
	Phone string
}

// NextTicketNumbers returns the count numbers following last, ascending.
func NextTicketNumbers(last, count int) []int {
	numbers := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		numbers = append(numbers, last+i)
	}

	return numbers
}

// TicketNumberGaps lists the numbers between 1 and the highest used number
// that no ticket holds. used does not need to be sorted.
func TicketNumberGaps(used []int) []int {
	highest := 0
	seen := make(map[int]struct{}, len(used))
	for _, n := range used {
		seen[n] = struct{}{}
		if n > highest {
			highest = n
		}
	}

	var gaps []int
	for n := 1; n <= highest; n++ {
		if _, ok := seen[n]; !ok {
			gaps = append(gaps, n)
		}
	}

	return gaps
}
