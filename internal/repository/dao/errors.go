package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRaffleNotFound        = errors.New("raffle not found")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrRaffleClosed          = errors.New("raffle is not accepting purchases")
	ErrTicketNumberTaken     = errors.New("ticket number already taken")
	ErrRaffleStatusUnchanged = errors.New("raffle status was changed concurrently")
)

const ticketNumberConstraint = "idx_tickets_raffle_number"

// translate maps driver errors onto the package sentinels. Errors it does not
// recognise are returned unchanged.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if pgErr.ConstraintName == ticketNumberConstraint {
			return ErrTicketNumberTaken
		}
	}

	return err
}
