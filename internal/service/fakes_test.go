package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

type storedRaffle struct {
	raffle domain.Raffle
	last   int
}

// fakeStore keeps raffles and tickets in memory. Purchases are serialised by
// mu the way the row lock serialises them in Postgres.
type fakeStore struct {
	mu      sync.Mutex
	raffles map[uuid.UUID]*storedRaffle
	tickets []domain.Ticket

	purchaseCalls int
	peekCalls     int
	purchaseErrs  []error
	err           error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		raffles: make(map[uuid.UUID]*storedRaffle),
	}
}

func (f *fakeStore) addRaffle(r domain.Raffle) domain.Raffle {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.raffles[r.ID] = &storedRaffle{raffle: r}

	return r
}

func (f *fakeStore) addTicket(t domain.Ticket) domain.Ticket {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.tickets = append(f.tickets, t)

	return t
}

func (f *fakeStore) raffle(id uuid.UUID) domain.Raffle {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.raffles[id].raffle
}

func (f *fakeStore) Create(_ context.Context, r domain.Raffle) (domain.Raffle, error) {
	if f.err != nil {
		return domain.Raffle{}, f.err
	}
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt

	return f.addRaffle(r), nil
}

func (f *fakeStore) FindByID(_ context.Context, id uuid.UUID) (domain.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return domain.Raffle{}, f.err
	}
	r, ok := f.raffles[id]
	if !ok {
		return domain.Raffle{}, fmt.Errorf("r.dao.FindByID -> %w", repository.ErrRaffleNotFound)
	}

	return r.raffle, nil
}

func (f *fakeStore) FindActive(_ context.Context, filter domain.RaffleFilter, now time.Time) ([]domain.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Raffle
	for _, r := range f.raffles {
		if r.raffle.IsOpen(now) && (filter.Category == "" || r.raffle.Category == filter.Category) {
			result = append(result, r.raffle)
		}
	}

	return result, f.err
}

func (f *fakeStore) FindByOrganizerID(_ context.Context, organizerID string) ([]domain.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Raffle
	for _, r := range f.raffles {
		if r.raffle.OrganizerID == organizerID {
			result = append(result, r.raffle)
		}
	}

	return result, f.err
}

func (f *fakeStore) FindAllIDs(context.Context) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(f.raffles))
	for id := range f.raffles {
		ids = append(ids, id)
	}

	return ids, f.err
}

func (f *fakeStore) UpdateStatus(_ context.Context, id uuid.UUID, status domain.RaffleStatus) (domain.Raffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.raffles[id]
	if !ok {
		return domain.Raffle{}, repository.ErrRaffleNotFound
	}
	if r.raffle.Status != domain.RaffleActive {
		return domain.Raffle{}, fmt.Errorf("r.dao.UpdateStatus -> %w", repository.ErrRaffleStatusUnchanged)
	}
	r.raffle.Status = status

	return r.raffle, nil
}

func (f *fakeStore) Count(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.raffles)), f.err
}

func (f *fakeStore) SumRaised(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total int64
	for _, r := range f.raffles {
		total += r.raffle.RaisedAmount
	}

	return total, f.err
}

func (f *fakeStore) CountCompleted(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, t := range f.tickets {
		if t.PaymentStatus == domain.PaymentCompleted {
			count++
		}
	}

	return count, f.err
}

func (f *fakeStore) LastTicketNumber(_ context.Context, id uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.peekCalls++
	if f.err != nil {
		return 0, f.err
	}
	r, ok := f.raffles[id]
	if !ok {
		return 0, repository.ErrRaffleNotFound
	}

	last := r.last
	for _, t := range f.tickets {
		if t.RaffleID == id && t.TicketNumber > last {
			last = t.TicketNumber
		}
	}

	return last, nil
}

func (f *fakeStore) PurchaseTickets(_ context.Context, raffleID uuid.UUID, buyer domain.ParticipantInfo, quantity int,
	check func(domain.Raffle) error) ([]domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.purchaseCalls++
	if len(f.purchaseErrs) > 0 {
		err := f.purchaseErrs[0]
		f.purchaseErrs = f.purchaseErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if f.err != nil {
		return nil, f.err
	}

	r, ok := f.raffles[raffleID]
	if !ok {
		return nil, fmt.Errorf("r.dao.PurchaseTickets -> %w", repository.ErrRaffleNotFound)
	}
	if check != nil {
		if err := check(r.raffle); err != nil {
			return nil, fmt.Errorf("r.dao.PurchaseTickets -> %w", err)
		}
	}

	for _, t := range f.tickets {
		if t.RaffleID == raffleID && t.TicketNumber > r.last {
			r.last = t.TicketNumber
		}
	}

	now := time.Now()
	sold := make([]domain.Ticket, 0, quantity)
	for i := 1; i <= quantity; i++ {
		sold = append(sold, domain.Ticket{
			ID:               uuid.New(),
			RaffleID:         raffleID,
			ParticipantEmail: buyer.Email,
			ParticipantName:  buyer.Name,
			ParticipantPhone: buyer.Phone,
			TicketNumber:     r.last + i,
			PaymentStatus:    domain.PaymentCompleted,
			PaymentAmount:    r.raffle.TicketPrice,
			PurchaseDate:     now,
			CreatedAt:        now,
		})
	}
	r.last += quantity
	r.raffle.TicketsSold += quantity
	r.raffle.RaisedAmount += int64(quantity) * r.raffle.TicketPrice
	f.tickets = append(f.tickets, sold...)

	return sold, nil
}

func (f *fakeStore) Reconcile(_ context.Context, raffleID uuid.UUID) (domain.ReconcileReport, []int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return domain.ReconcileReport{}, nil, f.err
	}
	r, ok := f.raffles[raffleID]
	if !ok {
		return domain.ReconcileReport{}, nil, repository.ErrRaffleNotFound
	}

	report := domain.ReconcileReport{
		RaffleID:          raffleID,
		TicketsSoldBefore: r.raffle.TicketsSold,
		RaisedBefore:      r.raffle.RaisedAmount,

		LastTicketNumberBefore: r.last,
	}

	sold := 0
	var numbers []int
	for _, t := range f.tickets {
		if t.RaffleID != raffleID {
			continue
		}
		numbers = append(numbers, t.TicketNumber)
		if t.PaymentStatus == domain.PaymentCompleted {
			sold++
		}
		if t.TicketNumber > r.last {
			r.last = t.TicketNumber
		}
	}
	sort.Ints(numbers)

	r.raffle.TicketsSold = sold
	r.raffle.RaisedAmount = int64(sold) * r.raffle.TicketPrice
	report.TicketsSoldAfter = r.raffle.TicketsSold
	report.RaisedAfter = r.raffle.RaisedAmount
	report.LastTicketNumber = r.last

	return report, numbers, nil
}

func (f *fakeStore) FindByRaffleID(_ context.Context, raffleID uuid.UUID) ([]domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.Ticket
	for _, t := range f.tickets {
		if t.RaffleID == raffleID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TicketNumber < result[j].TicketNumber })

	return result, f.err
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) ([]domain.TicketWithRaffle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []domain.TicketWithRaffle
	for _, t := range f.tickets {
		if domain.ParticipantKey(t.ParticipantEmail) == domain.ParticipantKey(email) {
			r := f.raffles[t.RaffleID].raffle
			result = append(result, domain.TicketWithRaffle{Ticket: t, RaffleTitle: r.Title, RaffleEndDate: r.EndDate})
		}
	}

	return result, f.err
}

func (f *fakeStore) UpdatePaymentStatus(_ context.Context, ticketID uuid.UUID, status domain.PaymentStatus,
	apply func(domain.Ticket, domain.Raffle) (int, error)) (domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tickets {
		if t.ID != ticketID {
			continue
		}

		r := f.raffles[t.RaffleID]
		delta, err := apply(t, r.raffle)
		if err != nil {
			return domain.Ticket{}, fmt.Errorf("r.dao.UpdatePaymentStatus -> %w", err)
		}

		f.tickets[i].PaymentStatus = status
		r.raffle.TicketsSold += delta
		r.raffle.RaisedAmount += int64(delta) * r.raffle.TicketPrice

		return f.tickets[i], nil
	}

	return domain.Ticket{}, fmt.Errorf("r.dao.UpdatePaymentStatus -> %w", repository.ErrTicketNotFound)
}

type fakeCategories struct {
	names []string
	err   error
}

func (f *fakeCategories) FindAll(context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, len(f.names))
	for i, n := range f.names {
		categories[i] = domain.Category{ID: uuid.New(), Name: n}
	}

	return categories, f.err
}

func (f *fakeCategories) Exists(_ context.Context, name string) (bool, error) {
	for _, n := range f.names {
		if n == name {
			return true, f.err
		}
	}

	return false, f.err
}
