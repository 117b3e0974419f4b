package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/service"
)

func purchaseBody(quantity int) map[string]any {
	return map[string]any{
		"name":     "Ann Lee",
		"email":    "ann@example.com",
		"phone":    "0612345678",
		"quantity": quantity,
	}
}

func TestTicketHandler_HandlePurchaseTickets(t *testing.T) {
	raffleID := uuid.New()
	path := "/api/v1/raffles/" + raffleID.String() + "/tickets"

	t.Run("created", func(t *testing.T) {
		tickets := &stubTicketService{tickets: []domain.Ticket{
			{RaffleID: raffleID, TicketNumber: 1, PaymentAmount: 500},
			{RaffleID: raffleID, TicketNumber: 2, PaymentAmount: 500},
			{RaffleID: raffleID, TicketNumber: 3, PaymentAmount: 500},
		}}
		router := newTestRouter(&stubRaffleService{}, tickets)

		rec := doRequest(t, router, http.MethodPost, path, purchaseBody(3), "")

		require.Equal(t, http.StatusCreated, rec.Code)
		got := decode[response.Purchase](t, rec)
		assert.Equal(t, []int{1, 2, 3}, got.TicketNumbers)
		assert.Equal(t, int64(1500), got.TotalAmount)
		assert.Equal(t, raffleID, got.RaffleID)
		assert.Equal(t, 3, tickets.quantity)
		assert.Equal(t, "ann@example.com", tickets.buyer.Email)
	})

	t.Run("bad request does not reach the service", func(t *testing.T) {
		tickets := &stubTicketService{}
		router := newTestRouter(&stubRaffleService{}, tickets)

		rec := doRequest(t, router, http.MethodPost, path, purchaseBody(0), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := purchaseBody(1)
		body["email"] = "not-an-email"
		rec = doRequest(t, router, http.MethodPost, path, body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doRequest(t, router, http.MethodPost, "/api/v1/raffles/not-a-uuid/tickets", purchaseBody(1), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		assert.Equal(t, 0, tickets.calls)
	})

	t.Run("service errors", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			code int
		}{
			{name: "invalid", err: fmt.Errorf("%w: quantity", service.ErrInvalidArgument), code: http.StatusBadRequest},
			{name: "not found", err: fmt.Errorf("s.raffles.PurchaseTickets -> %w", service.ErrRaffleNotFound), code: http.StatusNotFound},
			{name: "closed", err: fmt.Errorf("s.raffles.PurchaseTickets -> %w", service.ErrRaffleClosed), code: http.StatusConflict},
			{name: "conflict", err: service.ErrAllocationConflict, code: http.StatusServiceUnavailable},
			{name: "storage", err: fmt.Errorf("op -> %w", service.ErrStorageUnavailable), code: http.StatusServiceUnavailable},
			{name: "unexpected", err: fmt.Errorf("boom"), code: http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				router := newTestRouter(&stubRaffleService{}, &stubTicketService{err: tt.err})

				rec := doRequest(t, router, http.MethodPost, path, purchaseBody(1), "")

				assert.Equal(t, tt.code, rec.Code)
				got := decode[response.Err](t, rec)
				assert.NotEmpty(t, got.StatusText)
				assert.NotEmpty(t, got.RequestID)
			})
		}
	})

	t.Run("retryable errors carry retry-after", func(t *testing.T) {
		router := newTestRouter(&stubRaffleService{}, &stubTicketService{err: service.ErrAllocationConflict})

		rec := doRequest(t, router, http.MethodPost, path, purchaseBody(1), "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})
}

func TestTicketHandler_HandleAllocateTicketNumbers(t *testing.T) {
	raffleID := uuid.New()
	path := "/api/v1/raffles/" + raffleID.String() + "/ticket-numbers"

	tickets := &stubTicketService{numbers: []int{4, 5}}
	router := newTestRouter(&stubRaffleService{}, tickets)

	rec := doRequest(t, router, http.MethodGet, path+"?count=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[response.TicketNumbers](t, rec)
	assert.Equal(t, []int{4, 5}, got.TicketNumbers)
	assert.Equal(t, 2, tickets.count)

	rec = doRequest(t, router, http.MethodGet, path+"?count=two", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, tickets.calls)
}

func TestTicketHandler_OrganizerRoutes(t *testing.T) {
	raffleID := uuid.New()
	participantsPath := "/api/v1/raffles/" + raffleID.String() + "/participants"

	t.Run("requires a token", func(t *testing.T) {
		tickets := &stubTicketService{}
		router := newTestRouter(&stubRaffleService{}, tickets)

		rec := doRequest(t, router, http.MethodGet, participantsPath, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = doRequest(t, router, http.MethodGet, participantsPath, nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		assert.Equal(t, 0, tickets.calls)
	})

	t.Run("other organizers are refused", func(t *testing.T) {
		tickets := &stubTicketService{}
		router := newTestRouter(&stubRaffleService{ownerErr: service.ErrNotOrganizer}, tickets)

		rec := doRequest(t, router, http.MethodGet, participantsPath, nil, organizerToken(t, "org-2"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, 0, tickets.calls)
	})

	t.Run("participants for the owner", func(t *testing.T) {
		tickets := &stubTicketService{participants: []domain.Participant{
			{Name: "Ann", Email: "ann@example.com", TicketNumbers: []int{1, 2}, Amount: 1000},
		}}
		router := newTestRouter(&stubRaffleService{}, tickets)

		rec := doRequest(t, router, http.MethodGet, participantsPath, nil, organizerToken(t, "org-1"))

		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[[]domain.Participant](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, []int{1, 2}, got[0].TicketNumbers)
	})

	t.Run("reconcile", func(t *testing.T) {
		tickets := &stubTicketService{report: domain.ReconcileReport{RaffleID: raffleID, TicketsSoldAfter: 3, Gaps: []int{2}}}
		router := newTestRouter(&stubRaffleService{}, tickets)

		rec := doRequest(t, router, http.MethodPost, "/api/v1/raffles/"+raffleID.String()+"/reconcile", nil, organizerToken(t, "org-1"))

		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[domain.ReconcileReport](t, rec)
		assert.Equal(t, []int{2}, got.Gaps)
	})

	t.Run("dashboard", func(t *testing.T) {
		tickets := &stubTicketService{dashboard: domain.Dashboard{Chart: []domain.DailyCount{{Date: "2024-05-01", Tickets: 2, Cumulative: 2}}}}
		router := newTestRouter(&stubRaffleService{}, tickets)

		rec := doRequest(t, router, http.MethodGet, "/api/v1/raffles/"+raffleID.String()+"/dashboard", nil, organizerToken(t, "org-1"))

		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[domain.Dashboard](t, rec)
		assert.Len(t, got.Chart, 1)
	})
}

func TestTicketHandler_HandleUpdatePaymentStatus(t *testing.T) {
	ticketID := uuid.New()
	path := "/api/v1/tickets/" + ticketID.String() + "/payment-status"
	token := organizerToken(t, "org-1")

	t.Run("ok", func(t *testing.T) {
		tickets := &stubTicketService{ticket: domain.Ticket{ID: ticketID}}
		router := newTestRouter(&stubRaffleService{}, tickets)

		rec := doRequest(t, router, http.MethodPatch, path, map[string]string{"status": "completed"}, token)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decode[domain.Ticket](t, rec)
		assert.Equal(t, domain.PaymentCompleted, got.PaymentStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		tickets := &stubTicketService{}
		router := newTestRouter(&stubRaffleService{}, tickets)

		rec := doRequest(t, router, http.MethodPatch, path, map[string]string{"status": "refunded"}, token)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, tickets.calls)
	})

	t.Run("terminal status", func(t *testing.T) {
		router := newTestRouter(&stubRaffleService{}, &stubTicketService{err: service.ErrInvalidStatusTransition})

		rec := doRequest(t, router, http.MethodPatch, path, map[string]string{"status": "completed"}, token)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing ticket", func(t *testing.T) {
		router := newTestRouter(&stubRaffleService{}, &stubTicketService{err: service.ErrTicketNotFound})

		rec := doRequest(t, router, http.MethodPatch, path, map[string]string{"status": "completed"}, token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTicketHandler_HandleListTicketsByEmail(t *testing.T) {
	tickets := &stubTicketService{byEmail: []domain.TicketWithRaffle{{RaffleTitle: "Help Rex"}}}
	router := newTestRouter(&stubRaffleService{}, tickets)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/tickets?email=ann@example.com", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[[]domain.TicketWithRaffle](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "Help Rex", got[0].RaffleTitle)
}
