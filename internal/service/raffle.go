package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/repository"
)

const (
	minTitleLength       = 10
	minDescriptionLength = 50
	minGoalAmount        = 100_00
	minTicketPrice       = 1_00
)

var errUnknownCategory = errors.New("unknown category")

type RaffleRepository interface {
	Create(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Raffle, error)
	FindActive(ctx context.Context, filter domain.RaffleFilter, now time.Time) ([]domain.Raffle, error)
	FindByOrganizerID(ctx context.Context, organizerID string) ([]domain.Raffle, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RaffleStatus) (domain.Raffle, error)
	Count(ctx context.Context) (int64, error)
	SumRaised(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	Exists(ctx context.Context, name string) (bool, error)
}

type CompletedTicketCounter interface {
	CountCompleted(ctx context.Context) (int64, error)
}

type RaffleService struct {
	repo       RaffleRepository
	categories CategoryRepository
	tickets    CompletedTicketCounter
	now        func() time.Time
}

func NewRaffleService(repo RaffleRepository, categories CategoryRepository, tickets CompletedTicketCounter) *RaffleService {
	return &RaffleService{
		repo:       repo,
		categories: categories,
		tickets:    tickets,
		now:        time.Now,
	}
}

// CreateRaffle opens a new raffle for the organizer. Zero StartDate means now.
func (s *RaffleService) CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error) {
	now := s.now()
	if raffle.StartDate.IsZero() {
		raffle.StartDate = now
	}

	raffle.Title = strings.TrimSpace(raffle.Title)
	raffle.Description = strings.TrimSpace(raffle.Description)

	if err := validateNewRaffle(&raffle); err != nil {
		return domain.Raffle{}, invalidArgument(err)
	}

	ok, err := s.categories.Exists(ctx, raffle.Category)
	if err != nil {
		return domain.Raffle{}, storageErr("s.categories.Exists", err)
	}
	if !ok {
		return domain.Raffle{}, invalidArgument(fmt.Errorf("%w %q", errUnknownCategory, raffle.Category))
	}

	raffle.ID = uuid.Nil
	raffle.Status = domain.RaffleActive
	raffle.RaisedAmount = 0
	raffle.TicketsSold = 0
	raffle.TicketsTotal = domain.TicketsTotalFor(raffle.GoalAmount, raffle.TicketPrice)

	created, err := s.repo.Create(ctx, raffle)
	if err != nil {
		return domain.Raffle{}, storageErr("s.repo.Create", err)
	}

	return created, nil
}

func validateNewRaffle(r *domain.Raffle) error {
	err := validation.ValidateStruct(
		r,
		validation.Field(&r.Title, validation.Required, validation.Length(minTitleLength, 0)),
		validation.Field(&r.Description, validation.Required, validation.Length(minDescriptionLength, 0)),
		validation.Field(&r.GoalAmount, validation.Required, validation.Min(int64(minGoalAmount))),
		validation.Field(&r.TicketPrice, validation.Required, validation.Min(int64(minTicketPrice))),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.OrganizerID, validation.Required),
		validation.Field(&r.OrganizerName, validation.Required),
		validation.Field(&r.EndDate, validation.Required),
	)
	if err != nil {
		return err
	}

	if !r.EndDate.After(r.StartDate) {
		return errors.New("end_date: must be after start_date")
	}

	return nil
}

func (s *RaffleService) GetRaffle(ctx context.Context, id uuid.UUID) (domain.Raffle, error) {
	raffle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Raffle{}, storageErr("s.repo.FindByID", err)
	}

	return raffle, nil
}

// GetOwnedRaffle returns the raffle when organizerID runs it and
// ErrNotOrganizer otherwise.
func (s *RaffleService) GetOwnedRaffle(ctx context.Context, id uuid.UUID, organizerID string) (domain.Raffle, error) {
	raffle, err := s.GetRaffle(ctx, id)
	if err != nil {
		return domain.Raffle{}, err
	}

	if !raffle.OwnedBy(organizerID) {
		return domain.Raffle{}, ErrNotOrganizer
	}

	return raffle, nil
}

func (s *RaffleService) ListActiveRaffles(ctx context.Context, filter domain.RaffleFilter) ([]domain.Raffle, error) {
	switch filter.Sort {
	case "", domain.SortNewest, domain.SortEnding, domain.SortPopular, domain.SortGoal:
	default:
		return nil, invalidArgument(fmt.Errorf("unknown sort %q", filter.Sort))
	}

	raffles, err := s.repo.FindActive(ctx, filter, s.now())
	if err != nil {
		return nil, storageErr("s.repo.FindActive", err)
	}

	return raffles, nil
}

func (s *RaffleService) ListRafflesByOrganizer(ctx context.Context, organizerID string) ([]domain.Raffle, error) {
	raffles, err := s.repo.FindByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, storageErr("s.repo.FindByOrganizerID", err)
	}

	return raffles, nil
}

func (s *RaffleService) UpdateRaffleStatus(ctx context.Context, id uuid.UUID, organizerID string, status domain.RaffleStatus) (domain.Raffle, error) {
	raffle, err := s.GetOwnedRaffle(ctx, id, organizerID)
	if err != nil {
		return domain.Raffle{}, err
	}

	if !raffle.Status.CanTransitionTo(status) {
		return domain.Raffle{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, raffle.Status, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrRaffleStatusUnchanged) {
			return domain.Raffle{}, fmt.Errorf("%w: %w", ErrInvalidStatusTransition, err)
		}

		return domain.Raffle{}, storageErr("s.repo.UpdateStatus", err)
	}

	return updated, nil
}

func (s *RaffleService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, storageErr("s.categories.FindAll", err)
	}

	return categories, nil
}

func (s *RaffleService) PlatformStats(ctx context.Context) (domain.PlatformStats, error) {
	var stats domain.PlatformStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return storageErr("s.repo.Count", err)
		}
		stats.TotalRaffles = count
		return nil
	})
	g.Go(func() error {
		count, err := s.tickets.CountCompleted(ctx)
		if err != nil {
			return storageErr("s.tickets.CountCompleted", err)
		}
		stats.TotalTickets = count
		return nil
	})
	g.Go(func() error {
		total, err := s.repo.SumRaised(ctx)
		if err != nil {
			return storageErr("s.repo.SumRaised", err)
		}
		stats.TotalRaised = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.PlatformStats{}, err
	}

	return stats, nil
}
