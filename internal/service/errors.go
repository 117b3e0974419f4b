package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/raffle-api/internal/repository"
)

var (
	ErrRaffleNotFound = repository.ErrRaffleNotFound
	ErrTicketNotFound = repository.ErrTicketNotFound
	ErrRaffleClosed   = repository.ErrRaffleClosed

	ErrInvalidArgument         = errors.New("invalid argument")
	ErrAllocationConflict      = errors.New("ticket numbers could not be allocated, try again")
	ErrStorageUnavailable      = errors.New("storage unavailable")
	ErrNotOrganizer            = errors.New("only the raffle organizer can do this")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

var known = []error{
	ErrRaffleNotFound,
	ErrTicketNotFound,
	ErrRaffleClosed,
	ErrInvalidArgument,
	ErrAllocationConflict,
	ErrStorageUnavailable,
	ErrNotOrganizer,
	ErrInvalidStatusTransition,
	repository.ErrTicketNumberTaken,
}

func invalidArgument(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}

// storageErr wraps err with op. Anything that is neither a known sentinel nor
// a context error is reported as ErrStorageUnavailable.
func storageErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s -> %w", op, err)
	}

	for _, k := range known {
		if errors.Is(err, k) {
			return fmt.Errorf("%s -> %w", op, err)
		}
	}

	return fmt.Errorf("%s -> %w: %w", op, ErrStorageUnavailable, err)
}
