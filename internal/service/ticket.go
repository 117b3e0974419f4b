package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

const minPhoneLength = 10

// Limits bound a single purchase. They can be swapped while the service runs.
type Limits struct {
	MaxTicketsPerPurchase int
	MaxAllocationAttempts int
}

type TicketRaffleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (domain.Raffle, error)
	FindAllIDs(ctx context.Context) ([]uuid.UUID, error)
	LastTicketNumber(ctx context.Context, id uuid.UUID) (int, error)
	PurchaseTickets(ctx context.Context, raffleID uuid.UUID, buyer domain.ParticipantInfo, quantity int, check func(domain.Raffle) error) ([]domain.Ticket, error)
	Reconcile(ctx context.Context, raffleID uuid.UUID) (domain.ReconcileReport, []int, error)
}

type TicketRepository interface {
	FindByRaffleID(ctx context.Context, raffleID uuid.UUID) ([]domain.Ticket, error)
	FindByEmail(ctx context.Context, email string) ([]domain.TicketWithRaffle, error)
	UpdatePaymentStatus(ctx context.Context, ticketID uuid.UUID, status domain.PaymentStatus, apply func(domain.Ticket, domain.Raffle) (int, error)) (domain.Ticket, error)
}

type TicketService struct {
	raffles TicketRaffleRepository
	tickets TicketRepository
	limits  atomic.Pointer[Limits]
	now     func() time.Time
}

func NewTicketService(raffles TicketRaffleRepository, tickets TicketRepository, limits Limits) *TicketService {
	s := &TicketService{
		raffles: raffles,
		tickets: tickets,
		now:     time.Now,
	}
	s.SetLimits(limits)

	return s
}

func (s *TicketService) SetLimits(limits Limits) {
	if limits.MaxAllocationAttempts < 1 {
		limits.MaxAllocationAttempts = 1
	}
	s.limits.Store(&limits)
}

func (s *TicketService) Limits() Limits {
	return *s.limits.Load()
}

func (s *TicketService) validateQuantity(quantity int) error {
	limit := s.Limits().MaxTicketsPerPurchase
	if quantity < 1 || quantity > limit {
		return invalidArgument(fmt.Errorf("quantity must be between 1 and %d, got %d", limit, quantity))
	}

	return nil
}

// AllocateTicketNumbers previews the count numbers the next purchase of the
// raffle would receive. Nothing is reserved.
func (s *TicketService) AllocateTicketNumbers(ctx context.Context, raffleID uuid.UUID, count int) ([]int, error) {
	if err := s.validateQuantity(count); err != nil {
		return nil, err
	}

	last, err := s.raffles.LastTicketNumber(ctx, raffleID)
	if err != nil {
		return nil, storageErr("s.raffles.LastTicketNumber", err)
	}

	return domain.NextTicketNumbers(last, count), nil
}

// PurchaseTickets sells quantity tickets of the raffle to buyer. The tickets
// come back ordered by number. A purchase that loses a race for its numbers
// is retried as a whole.
func (s *TicketService) PurchaseTickets(ctx context.Context, raffleID uuid.UUID, buyer domain.ParticipantInfo, quantity int) ([]domain.Ticket, error) {
	if err := s.validateQuantity(quantity); err != nil {
		return nil, err
	}

	buyer = normalizeBuyer(buyer)
	if err := validateBuyer(&buyer); err != nil {
		return nil, invalidArgument(err)
	}

	check := func(r domain.Raffle) error {
		if !r.IsOpen(s.now()) {
			return ErrRaffleClosed
		}
		return nil
	}

	attempts := s.Limits().MaxAllocationAttempts
	for attempt := 1; attempt <= attempts; attempt++ {
		tickets, err := s.raffles.PurchaseTickets(ctx, raffleID, buyer, quantity, check)
		if err == nil {
			return tickets, nil
		}

		if !errors.Is(err, repository.ErrTicketNumberTaken) {
			return nil, storageErr("s.raffles.PurchaseTickets", err)
		}

		zap.L().Warn("ticket number conflict, retrying purchase",
			zap.String("raffle_id", raffleID.String()),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
		)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, ErrAllocationConflict
}

func normalizeBuyer(b domain.ParticipantInfo) domain.ParticipantInfo {
	return domain.ParticipantInfo{
		Name:  strings.TrimSpace(b.Name),
		Email: strings.TrimSpace(b.Email),
		Phone: strings.TrimSpace(b.Phone),
	}
}

func validateBuyer(b *domain.ParticipantInfo) error {
	return validation.ValidateStruct(
		b,
		validation.Field(&b.Name, validation.Required),
		validation.Field(&b.Email, validation.Required, is.Email),
		validation.Field(&b.Phone, validation.Required, validation.Length(minPhoneLength, 0)),
	)
}

// ListParticipants groups the raffle's tickets by buyer.
func (s *TicketService) ListParticipants(ctx context.Context, raffleID uuid.UUID) ([]domain.Participant, error) {
	raffle, err := s.raffles.FindByID(ctx, raffleID)
	if err != nil {
		return nil, storageErr("s.raffles.FindByID", err)
	}

	tickets, err := s.tickets.FindByRaffleID(ctx, raffleID)
	if err != nil {
		return nil, storageErr("s.tickets.FindByRaffleID", err)
	}

	return domain.AggregateParticipants(tickets, raffle.TicketPrice), nil
}

func (s *TicketService) Dashboard(ctx context.Context, raffleID uuid.UUID, organizerID string) (domain.Dashboard, error) {
	raffle, err := s.raffles.FindByID(ctx, raffleID)
	if err != nil {
		return domain.Dashboard{}, storageErr("s.raffles.FindByID", err)
	}
	if !raffle.OwnedBy(organizerID) {
		return domain.Dashboard{}, ErrNotOrganizer
	}

	tickets, err := s.tickets.FindByRaffleID(ctx, raffleID)
	if err != nil {
		return domain.Dashboard{}, storageErr("s.tickets.FindByRaffleID", err)
	}

	return domain.Dashboard{
		Raffle:       raffle,
		Progress:     domain.ProgressOf(raffle, s.now()),
		Participants: domain.AggregateParticipants(tickets, raffle.TicketPrice),
		Chart:        domain.DailyTicketCounts(tickets),
	}, nil
}

func (s *TicketService) ListTicketsByEmail(ctx context.Context, email string) ([]domain.TicketWithRaffle, error) {
	email = strings.TrimSpace(email)
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return nil, invalidArgument(fmt.Errorf("email: %w", err))
	}

	tickets, err := s.tickets.FindByEmail(ctx, email)
	if err != nil {
		return nil, storageErr("s.tickets.FindByEmail", err)
	}

	return tickets, nil
}

// UpdateTicketPaymentStatus records a payment outcome for a ticket. Only the
// organizer of the ticket's raffle may do it. The raffle aggregates follow
// the ticket in and out of the completed state.
func (s *TicketService) UpdateTicketPaymentStatus(ctx context.Context, ticketID uuid.UUID, organizerID string, status domain.PaymentStatus) (domain.Ticket, error) {
	if !status.Valid() {
		return domain.Ticket{}, invalidArgument(fmt.Errorf("unknown payment status %q", status))
	}

	updated, err := s.tickets.UpdatePaymentStatus(ctx, ticketID, status, func(t domain.Ticket, r domain.Raffle) (int, error) {
		if !r.OwnedBy(organizerID) {
			return 0, ErrNotOrganizer
		}
		if !t.PaymentStatus.CanTransitionTo(status) {
			return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, t.PaymentStatus, status)
		}
		return t.PaymentStatus.SoldDelta(status), nil
	})
	if err != nil {
		return domain.Ticket{}, storageErr("s.tickets.UpdatePaymentStatus", err)
	}

	return updated, nil
}

// ReconcileRaffle rebuilds the raffle aggregates from its completed tickets.
func (s *TicketService) ReconcileRaffle(ctx context.Context, raffleID uuid.UUID) (domain.ReconcileReport, error) {
	report, numbers, err := s.raffles.Reconcile(ctx, raffleID)
	if err != nil {
		return domain.ReconcileReport{}, storageErr("s.raffles.Reconcile", err)
	}

	report.Gaps = domain.TicketNumberGaps(numbers)

	if report.Changed() {
		zap.L().Warn("raffle ledger drifted and was corrected",
			zap.String("raffle_id", raffleID.String()),
			zap.Int("tickets_sold_before", report.TicketsSoldBefore),
			zap.Int("tickets_sold_after", report.TicketsSoldAfter),
			zap.Int64("raised_before", report.RaisedBefore),
			zap.Int64("raised_after", report.RaisedAfter),
			zap.Int("last_ticket_number_before", report.LastTicketNumberBefore),
			zap.Int("last_ticket_number_after", report.LastTicketNumber),
		)
	}

	return report, nil
}

// ReconcileAll reconciles every raffle and returns how many were corrected.
// A failing raffle is logged and skipped.
func (s *TicketService) ReconcileAll(ctx context.Context) (int, error) {
	ids, err := s.raffles.FindAllIDs(ctx)
	if err != nil {
		return 0, storageErr("s.raffles.FindAllIDs", err)
	}

	corrected := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return corrected, ctx.Err()
		}

		report, err := s.ReconcileRaffle(ctx, id)
		if err != nil {
			zap.L().Error("reconcile raffle", zap.String("raffle_id", id.String()), zap.Error(err))
			continue
		}
		if report.Changed() {
			corrected++
		}
	}

	return corrected, nil
}
