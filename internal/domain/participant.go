package domain

import (
	"sort"
	"strings"
	"time"
)

type Participant struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	TicketNumbers []int     `json:"tickets"`
	PurchaseDate  time.Time `json:"purchase_date"`
	Amount        int64     `json:"amount"`
}

// ParticipantKey is the grouping key for a participant email: surrounding
// spaces and letter case are ignored.
func ParticipantKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AggregateParticipants groups tickets by participant. Name and email are
// taken from the earliest ticket of each group. Every ticket number is listed,
// but Amount only counts completed payments. The result is ordered by first
// purchase, then by key.
func AggregateParticipants(tickets []Ticket, ticketPrice int64) []Participant {
	byKey := make(map[string]*Participant)
	var keys []string

	for _, t := range tickets {
		key := ParticipantKey(t.ParticipantEmail)
		p, ok := byKey[key]
		if !ok {
			p = &Participant{
				Name:         t.ParticipantName,
				Email:        strings.TrimSpace(t.ParticipantEmail),
				PurchaseDate: t.CreatedAt,
			}
			byKey[key] = p
			keys = append(keys, key)
		}

		if t.CreatedAt.Before(p.PurchaseDate) {
			p.PurchaseDate = t.CreatedAt
			p.Name = t.ParticipantName
			p.Email = strings.TrimSpace(t.ParticipantEmail)
		}
		p.TicketNumbers = append(p.TicketNumbers, t.TicketNumber)
		if t.PaymentStatus == PaymentCompleted {
			p.Amount += ticketPrice
		}
	}

	participants := make([]Participant, 0, len(keys))
	for _, key := range keys {
		p := byKey[key]
		sort.Ints(p.TicketNumbers)
		participants = append(participants, *p)
	}

	sort.SliceStable(participants, func(i, j int) bool {
		a, b := participants[i], participants[j]
		if !a.PurchaseDate.Equal(b.PurchaseDate) {
			return a.PurchaseDate.Before(b.PurchaseDate)
		}
		return ParticipantKey(a.Email) < ParticipantKey(b.Email)
	})

	return participants
}
