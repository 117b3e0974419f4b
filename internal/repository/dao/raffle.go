package dao

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	RaffleStatusActive = "active"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type Raffle struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Title        string `gorm:"not null"`
	Description  string `gorm:"not null"`
	ImageURL     string
	GoalAmount   int64  `gorm:"not null"`
	RaisedAmount int64  `gorm:"not null;default:0"`
	TicketPrice  int64  `gorm:"not null"`
	TicketsTotal int    `gorm:"not null"`
	TicketsSold  int    `gorm:"not null;default:0"`
	Category     string `gorm:"not null;index"`
	Status       string `gorm:"not null;index"`

	OrganizerID   string `gorm:"not null;index"`
	OrganizerName string `gorm:"not null"`

	// LastTicketNumber is the highest ticket number ever claimed for the raffle.
	LastTicketNumber int `gorm:"not null;default:0"`

	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (r *Raffle) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	return nil
}

type RaffleQuery struct {
	Category string
	Search   string
	OrderBy  string
	ActiveAt time.Time
}

// ReconcileResult holds a raffle as it was before and after its aggregates
// were recomputed, along with every ticket number the raffle holds.
type ReconcileResult struct {
	Before        Raffle
	After         Raffle
	TicketNumbers []int
}

type RaffleDAO struct {
	db *gorm.DB
}

func NewRaffleDAO(db *gorm.DB) *RaffleDAO {
	return &RaffleDAO{
		db: db,
	}
}

func (d *RaffleDAO) Insert(ctx context.Context, raffle Raffle) (Raffle, error) {
	result := d.db.WithContext(ctx).Create(&raffle)
	if result.Error != nil {
		return Raffle{}, translate(result.Error, nil)
	}

	return raffle, nil
}

func (d *RaffleDAO) FindByID(ctx context.Context, id uuid.UUID) (Raffle, error) {
	var raffle Raffle

	result := d.db.WithContext(ctx).First(&raffle, "id = ?", id)
	if result.Error != nil {
		return Raffle{}, translate(result.Error, ErrRaffleNotFound)
	}

	return raffle, nil
}

// FindActive returns raffles still selling at q.ActiveAt.
func (d *RaffleDAO) FindActive(ctx context.Context, q RaffleQuery) ([]Raffle, error) {
	var raffles []Raffle

	tx := d.db.WithContext(ctx).
		Where("status = ? AND end_date >= ?", RaffleStatusActive, q.ActiveAt)

	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		tx = tx.Where("title ILIKE ? OR description ILIKE ? OR organizer_name ILIKE ?", pattern, pattern, pattern)
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}

	result := tx.Order(orderBy).Order("id").Find(&raffles)
	if result.Error != nil {
		return nil, result.Error
	}

	return raffles, nil
}

func (d *RaffleDAO) FindByOrganizerID(ctx context.Context, organizerID string) ([]Raffle, error) {
	var raffles []Raffle

	result := d.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC").
		Find(&raffles)
	if result.Error != nil {
		return nil, result.Error
	}

	return raffles, nil
}

func (d *RaffleDAO) FindAllIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	result := d.db.WithContext(ctx).Model(&Raffle{}).Order("created_at").Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}

// UpdateStatus moves an active raffle to status. It fails with
// ErrRaffleStatusUnchanged when the raffle is no longer active.
func (d *RaffleDAO) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Raffle, error) {
	result := d.db.WithContext(ctx).
		Model(&Raffle{}).
		Where("id = ? AND status = ?", id, RaffleStatusActive).
		Update("status", status)
	if result.Error != nil {
		return Raffle{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Raffle{}, ErrRaffleStatusUnchanged
	}

	return d.FindByID(ctx, id)
}

// PeekLastTicketNumber returns the highest ticket number the raffle has
// claimed or stored, without claiming anything.
func (d *RaffleDAO) PeekLastTicketNumber(ctx context.Context, id uuid.UUID) (int, error) {
	var last []int

	result := d.db.WithContext(ctx).Raw(`
		SELECT GREATEST(r.last_ticket_number,
			COALESCE((SELECT MAX(t.ticket_number) FROM tickets t WHERE t.raffle_id = r.id), 0))
		FROM raffles r
		WHERE r.id = ?`, id).Scan(&last)
	if result.Error != nil {
		return 0, result.Error
	}
	if len(last) == 0 {
		return 0, ErrRaffleNotFound
	}

	return last[0], nil
}

// PurchaseTickets sells quantity tickets to buyer in a single transaction.
// The raffle row stays locked until commit, so purchases of one raffle run
// one at a time. check runs against the locked row before any number is
// claimed; a non-nil error aborts the purchase.
func (d *RaffleDAO) PurchaseTickets(ctx context.Context, raffleID uuid.UUID, buyer Ticket, quantity int, check func(Raffle) error) ([]Ticket, error) {
	var tickets []Ticket

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		raffle, err := lockRaffle(tx, raffleID)
		if err != nil {
			return err
		}

		if check != nil {
			if err := check(raffle); err != nil {
				return err
			}
		}

		last, err := claimTicketNumbers(tx, raffleID, quantity)
		if err != nil {
			return err
		}

		now := time.Now()
		tickets = make([]Ticket, 0, quantity)
		for n := last - quantity + 1; n <= last; n++ {
			tickets = append(tickets, Ticket{
				ID:               uuid.New(),
				RaffleID:         raffleID,
				ParticipantEmail: buyer.ParticipantEmail,
				ParticipantName:  buyer.ParticipantName,
				ParticipantPhone: buyer.ParticipantPhone,
				TicketNumber:     n,
				PaymentStatus:    PaymentStatusCompleted,
				PaymentAmount:    raffle.TicketPrice,
				PurchaseDate:     now,
			})
		}

		if err := tx.Omit(clause.Associations).CreateInBatches(&tickets, quantity).Error; err != nil {
			return translate(err, nil)
		}

		return addToAggregates(tx, raffleID, quantity, int64(quantity)*raffle.TicketPrice)
	})
	if err != nil {
		return nil, err
	}

	return tickets, nil
}

// Reconcile recomputes tickets_sold and raised_amount from the completed
// tickets of the raffle and moves the claim counter past every stored number.
func (d *RaffleDAO) Reconcile(ctx context.Context, raffleID uuid.UUID) (ReconcileResult, error) {
	var res ReconcileResult

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		before, err := lockRaffle(tx, raffleID)
		if err != nil {
			return err
		}

		var sold int64
		if err := tx.Model(&Ticket{}).
			Where("raffle_id = ? AND payment_status = ?", raffleID, PaymentStatusCompleted).
			Count(&sold).Error; err != nil {
			return err
		}

		var numbers []int
		if err := tx.Model(&Ticket{}).
			Where("raffle_id = ?", raffleID).
			Order("ticket_number").
			Pluck("ticket_number", &numbers).Error; err != nil {
			return err
		}

		after := before
		after.TicketsSold = int(sold)
		after.RaisedAmount = sold * before.TicketPrice
		if len(numbers) > 0 && numbers[len(numbers)-1] > after.LastTicketNumber {
			after.LastTicketNumber = numbers[len(numbers)-1]
		}

		if after.TicketsSold != before.TicketsSold ||
			after.RaisedAmount != before.RaisedAmount ||
			after.LastTicketNumber != before.LastTicketNumber {
			if err := tx.Model(&Raffle{}).Where("id = ?", raffleID).Updates(map[string]any{
				"tickets_sold":       after.TicketsSold,
				"raised_amount":      after.RaisedAmount,
				"last_ticket_number": after.LastTicketNumber,
			}).Error; err != nil {
				return err
			}
		}

		res = ReconcileResult{Before: before, After: after, TicketNumbers: numbers}
		return nil
	})
	if err != nil {
		return ReconcileResult{}, err
	}

	return res, nil
}

func (d *RaffleDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Raffle{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *RaffleDAO) SumRaised(ctx context.Context) (int64, error) {
	var total int64

	result := d.db.WithContext(ctx).Model(&Raffle{}).Select("COALESCE(SUM(raised_amount), 0)").Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

func lockForUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

func lockRaffle(tx *gorm.DB, id uuid.UUID) (Raffle, error) {
	var raffle Raffle

	err := tx.Clauses(lockForUpdate()).First(&raffle, "id = ?", id).Error
	if err != nil {
		return Raffle{}, translate(err, ErrRaffleNotFound)
	}

	return raffle, nil
}

// claimTicketNumbers reserves quantity numbers and returns the last of them.
// The counter never falls behind a number already stored for the raffle.
func claimTicketNumbers(tx *gorm.DB, raffleID uuid.UUID, quantity int) (int, error) {
	var last []int

	err := tx.Raw(`
		UPDATE raffles
		SET last_ticket_number = GREATEST(last_ticket_number,
			COALESCE((SELECT MAX(ticket_number) FROM tickets WHERE raffle_id = ?), 0)) + ?
		WHERE id = ?
		RETURNING last_ticket_number`, raffleID, quantity, raffleID).Scan(&last).Error
	if err != nil {
		return 0, err
	}
	if len(last) == 0 {
		return 0, ErrRaffleNotFound
	}

	return last[0], nil
}

func addToAggregates(tx *gorm.DB, raffleID uuid.UUID, sold int, raised int64) error {
	result := tx.Model(&Raffle{}).Where("id = ?", raffleID).Updates(map[string]any{
		"tickets_sold":  gorm.Expr("tickets_sold + ?", sold),
		"raised_amount": gorm.Expr("raised_amount + ?", raised),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRaffleNotFound
	}

	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
