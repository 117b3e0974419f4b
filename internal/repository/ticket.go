package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
)

var (
	ErrTicketNotFound = dao.ErrTicketNotFound
)

type TicketDAO interface {
	FindByRaffleID(ctx context.Context, raffleID uuid.UUID) ([]dao.Ticket, error)
	FindByEmail(ctx context.Context, email string) ([]dao.TicketWithRaffle, error)
	CountCompleted(ctx context.Context) (int64, error)
	UpdatePaymentStatus(ctx context.Context, ticketID uuid.UUID, status string, apply func(dao.Ticket, dao.Raffle) (int, error)) (dao.Ticket, error)
}

type TicketRepository struct {
	dao   TicketDAO
	rRepo *RaffleRepository
}

func NewTicketRepository(dao TicketDAO, rRepo *RaffleRepository) *TicketRepository {
	return &TicketRepository{
		dao:   dao,
		rRepo: rRepo,
	}
}

func (r *TicketRepository) FindByRaffleID(ctx context.Context, raffleID uuid.UUID) ([]domain.Ticket, error) {
	found, err := r.dao.FindByRaffleID(ctx, raffleID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByRaffleID -> %w", err)
	}

	return ticketsDaoToDomain(found), nil
}

func (r *TicketRepository) FindByEmail(ctx context.Context, email string) ([]domain.TicketWithRaffle, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	tickets := make([]domain.TicketWithRaffle, len(found))
	for i, t := range found {
		tickets[i] = domain.TicketWithRaffle{
			Ticket:        ticketDaoToDomain(t.Ticket),
			RaffleTitle:   t.RaffleTitle,
			RaffleEndDate: t.RaffleEndDate,
		}
	}

	return tickets, nil
}

func (r *TicketRepository) CountCompleted(ctx context.Context) (int64, error) {
	count, err := r.dao.CountCompleted(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountCompleted -> %w", err)
	}

	return count, nil
}

func (r *TicketRepository) UpdatePaymentStatus(ctx context.Context, ticketID uuid.UUID, status domain.PaymentStatus,
	apply func(domain.Ticket, domain.Raffle) (int, error)) (domain.Ticket, error) {
	updated, err := r.dao.UpdatePaymentStatus(ctx, ticketID, string(status), func(t dao.Ticket, raffle dao.Raffle) (int, error) {
		return apply(ticketDaoToDomain(t), r.rRepo.daoToDomain(raffle))
	})
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("r.dao.UpdatePaymentStatus -> %w", err)
	}

	return ticketDaoToDomain(updated), nil
}

func ticketDaoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:               t.ID,
		RaffleID:         t.RaffleID,
		ParticipantEmail: t.ParticipantEmail,
		ParticipantName:  t.ParticipantName,
		ParticipantPhone: t.ParticipantPhone,
		TicketNumber:     t.TicketNumber,
		PaymentStatus:    domain.PaymentStatus(t.PaymentStatus),
		PaymentAmount:    t.PaymentAmount,
		PurchaseDate:     t.PurchaseDate,
		CreatedAt:        t.CreatedAt,
	}
}

func ticketsDaoToDomain(tickets []dao.Ticket) []domain.Ticket {
	result := make([]domain.Ticket, len(tickets))
	for i, t := range tickets {
		result[i] = ticketDaoToDomain(t)
	}

	return result
}
