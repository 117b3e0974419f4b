package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/raffle-api/internal/api/middleware"
	"github.com/vietanh2810/raffle-api/internal/domain"
	"github.com/vietanh2810/raffle-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

type stubRaffleService struct {
	raffle     domain.Raffle
	raffles    []domain.Raffle
	categories []domain.Category
	stats      domain.PlatformStats
	err        error
	ownerErr   error

	created      domain.Raffle
	filter       domain.RaffleFilter
	statusCalled bool
}

func (s *stubRaffleService) CreateRaffle(_ context.Context, r domain.Raffle) (domain.Raffle, error) {
	s.created = r
	r.ID = uuid.New()
	r.Status = domain.RaffleActive
	return r, s.err
}

func (s *stubRaffleService) GetRaffle(context.Context, uuid.UUID) (domain.Raffle, error) {
	return s.raffle, s.err
}

func (s *stubRaffleService) GetOwnedRaffle(_ context.Context, _ uuid.UUID, _ string) (domain.Raffle, error) {
	return s.raffle, s.ownerErr
}

func (s *stubRaffleService) ListActiveRaffles(_ context.Context, filter domain.RaffleFilter) ([]domain.Raffle, error) {
	s.filter = filter
	return s.raffles, s.err
}

func (s *stubRaffleService) ListRafflesByOrganizer(context.Context, string) ([]domain.Raffle, error) {
	return s.raffles, s.err
}

func (s *stubRaffleService) UpdateRaffleStatus(_ context.Context, _ uuid.UUID, _ string, status domain.RaffleStatus) (domain.Raffle, error) {
	s.statusCalled = true
	r := s.raffle
	r.Status = status
	return r, s.err
}

func (s *stubRaffleService) ListCategories(context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubRaffleService) PlatformStats(context.Context) (domain.PlatformStats, error) {
	return s.stats, s.err
}

type stubTicketService struct {
	numbers      []int
	tickets      []domain.Ticket
	participants []domain.Participant
	dashboard    domain.Dashboard
	byEmail      []domain.TicketWithRaffle
	ticket       domain.Ticket
	report       domain.ReconcileReport
	err          error

	calls    int
	buyer    domain.ParticipantInfo
	quantity int
	count    int
}

func (s *stubTicketService) AllocateTicketNumbers(_ context.Context, _ uuid.UUID, count int) ([]int, error) {
	s.calls++
	s.count = count
	return s.numbers, s.err
}

func (s *stubTicketService) PurchaseTickets(_ context.Context, _ uuid.UUID, buyer domain.ParticipantInfo, quantity int) ([]domain.Ticket, error) {
	s.calls++
	s.buyer = buyer
	s.quantity = quantity
	return s.tickets, s.err
}

func (s *stubTicketService) ListParticipants(context.Context, uuid.UUID) ([]domain.Participant, error) {
	s.calls++
	return s.participants, s.err
}

func (s *stubTicketService) Dashboard(context.Context, uuid.UUID, string) (domain.Dashboard, error) {
	s.calls++
	return s.dashboard, s.err
}

func (s *stubTicketService) ListTicketsByEmail(context.Context, string) ([]domain.TicketWithRaffle, error) {
	s.calls++
	return s.byEmail, s.err
}

func (s *stubTicketService) UpdateTicketPaymentStatus(_ context.Context, _ uuid.UUID, _ string, status domain.PaymentStatus) (domain.Ticket, error) {
	s.calls++
	t := s.ticket
	t.PaymentStatus = status
	return t, s.err
}

func (s *stubTicketService) ReconcileRaffle(context.Context, uuid.UUID) (domain.ReconcileReport, error) {
	s.calls++
	return s.report, s.err
}

func newTestRouter(raffles *stubRaffleService, tickets *stubTicketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requestid.New())

	raffleHandler := NewRaffleHandler(raffles)
	ticketHandler := NewTicketHandler(tickets, raffles)

	public := router.Group("/api/v1")
	public.GET("/categories", raffleHandler.HandleListCategories)
	public.GET("/stats", raffleHandler.HandleGetStats)
	public.GET("/raffles", raffleHandler.HandleListRaffles)
	public.GET("/raffles/:raffleID", raffleHandler.HandleGetRaffle)
	public.GET("/raffles/:raffleID/ticket-numbers", ticketHandler.HandleAllocateTicketNumbers)
	public.POST("/raffles/:raffleID/tickets", ticketHandler.HandlePurchaseTickets)
	public.GET("/tickets", ticketHandler.HandleListTicketsByEmail)

	organizers := router.Group("/api/v1", middleware.NewAuthenticator(testSigningKey).VerifyJWT())
	organizers.POST("/raffles", raffleHandler.HandleCreateRaffle)
	organizers.GET("/me/raffles", raffleHandler.HandleListMyRaffles)
	organizers.PATCH("/raffles/:raffleID/status", raffleHandler.HandleUpdateRaffleStatus)
	organizers.GET("/raffles/:raffleID/dashboard", ticketHandler.HandleGetDashboard)
	organizers.GET("/raffles/:raffleID/participants", ticketHandler.HandleListParticipants)
	organizers.POST("/raffles/:raffleID/reconcile", ticketHandler.HandleReconcileRaffle)
	organizers.PATCH("/tickets/:ticketID/payment-status", ticketHandler.HandleUpdatePaymentStatus)

	return router
}

func organizerToken(t *testing.T, subject string) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), subject, subject+"@example.com", "Organizer "+subject, time.Hour)
	require.NoError(t, err)

	return token
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}
