package domain

import (
	"math"
	"sort"
	"time"
)

type Progress struct {
	Percentage       float64 `json:"percentage"`
	DaysLeft         int     `json:"days_left"`
	TicketsRemaining int     `json:"tickets_remaining"`
	State            string  `json:"state"`
}

func ProgressOf(r Raffle, now time.Time) Progress {
	p := Progress{
		DaysLeft:         DaysLeft(r.EndDate, now),
		TicketsRemaining: r.TicketsTotal - r.TicketsSold,
	}
	if p.TicketsRemaining < 0 {
		p.TicketsRemaining = 0
	}

	if r.GoalAmount > 0 {
		p.Percentage = math.Min(float64(r.RaisedAmount)/float64(r.GoalAmount)*100, 100)
	}

	switch {
	case r.Status == RaffleCompleted:
		p.State = "Completed"
	case r.Status == RaffleCancelled:
		p.State = "Cancelled"
	case p.DaysLeft == 0:
		p.State = "Ended"
	default:
		p.State = "Active"
	}

	return p
}

// DaysLeft rounds the remaining time up to whole days, never below zero.
func DaysLeft(end, now time.Time) int {
	remaining := end.Sub(now)
	if remaining <= 0 {
		return 0
	}

	return int(math.Ceil(remaining.Hours() / 24))
}

type DailyCount struct {
	Date       string `json:"date"`
	Tickets    int    `json:"tickets"`
	Cumulative int    `json:"cumulative"`
}

// DailyTicketCounts buckets completed tickets per UTC day, oldest first.
func DailyTicketCounts(tickets []Ticket) []DailyCount {
	perDay := make(map[string]int)
	for _, t := range tickets {
		if t.PaymentStatus != PaymentCompleted {
			continue
		}
		perDay[t.CreatedAt.UTC().Format(time.DateOnly)]++
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	counts := make([]DailyCount, 0, len(days))
	cumulative := 0
	for _, day := range days {
		cumulative += perDay[day]
		counts = append(counts, DailyCount{
			Date:       day,
			Tickets:    perDay[day],
			Cumulative: cumulative,
		})
	}

	return counts
}
