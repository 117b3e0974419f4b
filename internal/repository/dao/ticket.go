package dao

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ticket struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	RaffleID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tickets_raffle_number,priority:1"`
	Raffle       Raffle    `gorm:"foreignKey:RaffleID;constraint:OnDelete:CASCADE"`
	TicketNumber int       `gorm:"not null;uniqueIndex:idx_tickets_raffle_number,priority:2"`

	ParticipantEmail string `gorm:"not null;index"`
	ParticipantName  string `gorm:"not null"`
	ParticipantPhone string

	PaymentStatus string `gorm:"not null;index"`
	PaymentAmount int64  `gorm:"not null"`

	PurchaseDate time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

func (t *Ticket) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	return nil
}

type TicketWithRaffle struct {
	Ticket
	RaffleTitle   string
	RaffleEndDate time.Time
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) FindByRaffleID(ctx context.Context, raffleID uuid.UUID) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Where("raffle_id = ?", raffleID).
		Order("ticket_number ASC").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

// FindByEmail matches the participant email case-insensitively.
func (d *TicketDAO) FindByEmail(ctx context.Context, email string) ([]TicketWithRaffle, error) {
	var tickets []TicketWithRaffle

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Select("tickets.*, raffles.title AS raffle_title, raffles.end_date AS raffle_end_date").
		Joins("JOIN raffles ON raffles.id = tickets.raffle_id").
		Where("LOWER(TRIM(tickets.participant_email)) = ?", strings.ToLower(strings.TrimSpace(email))).
		Order("tickets.created_at DESC").
		Order("tickets.ticket_number ASC").
		Scan(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) CountCompleted(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("payment_status = ?", PaymentStatusCompleted).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// UpdatePaymentStatus changes the payment status of a ticket and moves the
// raffle aggregates by the delta that apply returns. apply sees the ticket
// and its raffle while both rows are locked; an error from it aborts the
// update.
func (d *TicketDAO) UpdatePaymentStatus(ctx context.Context, ticketID uuid.UUID, status string,
	apply func(Ticket, Raffle) (int, error)) (Ticket, error) {
	var updated Ticket

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ticket Ticket
		if err := tx.First(&ticket, "id = ?", ticketID).Error; err != nil {
			return translate(err, ErrTicketNotFound)
		}

		// Lock order is raffle then ticket, the same as purchases.
		raffle, err := lockRaffle(tx, ticket.RaffleID)
		if err != nil {
			return err
		}

		var locked Ticket
		if err := tx.Clauses(lockForUpdate()).First(&locked, "id = ?", ticketID).Error; err != nil {
			return translate(err, ErrTicketNotFound)
		}

		delta, err := apply(locked, raffle)
		if err != nil {
			return err
		}

		if err := tx.Model(&locked).Update("payment_status", status).Error; err != nil {
			return err
		}
		locked.PaymentStatus = status

		if delta != 0 {
			if err := addToAggregates(tx, raffle.ID, delta, int64(delta)*raffle.TicketPrice); err != nil {
				return err
			}
		}

		updated = locked
		return nil
	})
	if err != nil {
		return Ticket{}, err
	}

	return updated, nil
}
