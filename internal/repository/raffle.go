package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository/dao"
)

var (
	ErrRaffleNotFound        = dao.ErrRaffleNotFound
	ErrRaffleClosed          = dao.ErrRaffleClosed
	ErrTicketNumberTaken     = dao.ErrTicketNumberTaken
	ErrRaffleStatusUnchanged = dao.ErrRaffleStatusUnchanged
)

type RaffleDAO interface {
	Insert(ctx context.Context, raffle dao.Raffle) (dao.Raffle, error)
	FindByID(ctx context.Context, id uuid.UUID) (dao.Raffle, error)
	FindActive(ctx context.Context, q dao.RaffleQuery) ([]dao.Raffle, error)
	FindByOrganizerID(ctx context.Context, organizerID string) ([]dao.Raffle, error)
	FindAllIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (dao.Raffle, error)
	PeekLastTicketNumber(ctx context.Context, id uuid.UUID) (int, error)
	PurchaseTickets(ctx context.Context, raffleID uuid.UUID, buyer dao.Ticket, quantity int, check func(dao.Raffle) error) ([]dao.Ticket, error)
	Reconcile(ctx context.Context, raffleID uuid.UUID) (dao.ReconcileResult, error)
	Count(ctx context.Context) (int64, error)
	SumRaised(ctx context.Context) (int64, error)
}

type RaffleRepository struct {
	dao RaffleDAO
}

func NewRaffleRepository(dao RaffleDAO) *RaffleRepository {
	return &RaffleRepository{
		dao: dao,
	}
}

func (r *RaffleRepository) Create(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(raffle))
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RaffleRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Raffle, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *RaffleRepository) FindActive(ctx context.Context, filter domain.RaffleFilter, now time.Time) ([]domain.Raffle, error) {
	found, err := r.dao.FindActive(ctx, dao.RaffleQuery{
		Category: filter.Category,
		Search:   filter.Search,
		OrderBy:  orderByFor(filter.Sort),
		ActiveAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *RaffleRepository) FindByOrganizerID(ctx context.Context, organizerID string) ([]domain.Raffle, error) {
	found, err := r.dao.FindByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOrganizerID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *RaffleRepository) FindAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := r.dao.FindAllIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllIDs -> %w", err)
	}

	return ids, nil
}

func (r *RaffleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RaffleStatus) (domain.Raffle, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return domain.Raffle{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *RaffleRepository) LastTicketNumber(ctx context.Context, id uuid.UUID) (int, error) {
	last, err := r.dao.PeekLastTicketNumber(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("r.dao.PeekLastTicketNumber -> %w", err)
	}

	return last, nil
}

func (r *RaffleRepository) PurchaseTickets(ctx context.Context, raffleID uuid.UUID, buyer domain.ParticipantInfo, quantity int,
	check func(domain.Raffle) error) ([]domain.Ticket, error) {
	var daoCheck func(dao.Raffle) error
	if check != nil {
		daoCheck = func(raffle dao.Raffle) error {
			return check(r.daoToDomain(raffle))
		}
	}

	sold, err := r.dao.PurchaseTickets(ctx, raffleID, dao.Ticket{
		ParticipantEmail: buyer.Email,
		ParticipantName:  buyer.Name,
		ParticipantPhone: buyer.Phone,
	}, quantity, daoCheck)
	if err != nil {
		return nil, fmt.Errorf("r.dao.PurchaseTickets -> %w", err)
	}

	return ticketsDaoToDomain(sold), nil
}

// Reconcile returns the report without gaps, together with every ticket
// number stored for the raffle.
func (r *RaffleRepository) Reconcile(ctx context.Context, raffleID uuid.UUID) (domain.ReconcileReport, []int, error) {
	res, err := r.dao.Reconcile(ctx, raffleID)
	if err != nil {
		return domain.ReconcileReport{}, nil, fmt.Errorf("r.dao.Reconcile -> %w", err)
	}

	return domain.ReconcileReport{
		RaffleID:          raffleID,
		TicketsSoldBefore: res.Before.TicketsSold,
		TicketsSoldAfter:  res.After.TicketsSold,
		RaisedBefore:      res.Before.RaisedAmount,
		RaisedAfter:       res.After.RaisedAmount,

		LastTicketNumberBefore: res.Before.LastTicketNumber,
		LastTicketNumber:       res.After.LastTicketNumber,
	}, res.TicketNumbers, nil
}

func (r *RaffleRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *RaffleRepository) SumRaised(ctx context.Context) (int64, error) {
	total, err := r.dao.SumRaised(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumRaised -> %w", err)
	}

	return total, nil
}

func orderByFor(sort domain.RaffleSort) string {
	switch sort {
	case domain.SortEnding:
		return "end_date ASC"
	case domain.SortPopular:
		return "tickets_sold DESC"
	case domain.SortGoal:
		return "raised_amount * 1.0 / goal_amount DESC"
	default:
		return "created_at DESC"
	}
}

func (r *RaffleRepository) domainToDao(raffle domain.Raffle) dao.Raffle {
	return dao.Raffle{
		ID:            raffle.ID,
		Title:         raffle.Title,
		Description:   raffle.Description,
		ImageURL:      raffle.ImageURL,
		GoalAmount:    raffle.GoalAmount,
		RaisedAmount:  raffle.RaisedAmount,
		TicketPrice:   raffle.TicketPrice,
		TicketsTotal:  raffle.TicketsTotal,
		TicketsSold:   raffle.TicketsSold,
		Category:      raffle.Category,
		Status:        string(raffle.Status),
		OrganizerID:   raffle.OrganizerID,
		OrganizerName: raffle.OrganizerName,
		StartDate:     raffle.StartDate,
		EndDate:       raffle.EndDate,
		CreatedAt:     raffle.CreatedAt,
		UpdatedAt:     raffle.UpdatedAt,
	}
}

func (r *RaffleRepository) daoToDomain(raffle dao.Raffle) domain.Raffle {
	return domain.Raffle{
		ID:            raffle.ID,
		Title:         raffle.Title,
		Description:   raffle.Description,
		ImageURL:      raffle.ImageURL,
		GoalAmount:    raffle.GoalAmount,
		RaisedAmount:  raffle.RaisedAmount,
		TicketPrice:   raffle.TicketPrice,
		TicketsTotal:  raffle.TicketsTotal,
		TicketsSold:   raffle.TicketsSold,
		Category:      raffle.Category,
		Status:        domain.RaffleStatus(raffle.Status),
		OrganizerID:   raffle.OrganizerID,
		OrganizerName: raffle.OrganizerName,
		StartDate:     raffle.StartDate,
		EndDate:       raffle.EndDate,
		CreatedAt:     raffle.CreatedAt,
		UpdatedAt:     raffle.UpdatedAt,
	}
}

func (r *RaffleRepository) daosToDomain(raffles []dao.Raffle) []domain.Raffle {
	result := make([]domain.Raffle, len(raffles))
	for i, raffle := range raffles {
		result[i] = r.daoToDomain(raffle)
	}

	return result
}
