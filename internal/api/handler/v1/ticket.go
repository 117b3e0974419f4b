package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/domain"
)

type TicketService interface {
	AllocateTicketNumbers(ctx context.Context, raffleID uuid.UUID, count int) ([]int, error)
	PurchaseTickets(ctx context.Context, raffleID uuid.UUID, buyer domain.ParticipantInfo, quantity int) ([]domain.Ticket, error)
	ListParticipants(ctx context.Context, raffleID uuid.UUID) ([]domain.Participant, error)
	Dashboard(ctx context.Context, raffleID uuid.UUID, organizerID string) (domain.Dashboard, error)
	ListTicketsByEmail(ctx context.Context, email string) ([]domain.TicketWithRaffle, error)
	UpdateTicketPaymentStatus(ctx context.Context, ticketID uuid.UUID, organizerID string, status domain.PaymentStatus) (domain.Ticket, error)
	ReconcileRaffle(ctx context.Context, raffleID uuid.UUID) (domain.ReconcileReport, error)
}

type RaffleOwnerService interface {
	GetOwnedRaffle(ctx context.Context, id uuid.UUID, organizerID string) (domain.Raffle, error)
}

type TicketHandler struct {
	svc     TicketService
	raffles RaffleOwnerService
}

func NewTicketHandler(svc TicketService, raffles RaffleOwnerService) *TicketHandler {
	return &TicketHandler{
		svc:     svc,
		raffles: raffles,
	}
}

// HandleAllocateTicketNumbers godoc
// @Summary      Preview ticket numbers
// @Description  Returns the numbers the next purchase of count tickets would receive. Nothing is reserved.
// @Tags         tickets
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Param        count     query     int     true  "How many numbers"
// @Success      200  {object}  response.TicketNumbers
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /raffles/{raffleID}/ticket-numbers [get]
func (h *TicketHandler) HandleAllocateTicketNumbers(ctx *gin.Context) {
	raffleID, ok := parseUUIDParam(ctx, "raffleID")
	if !ok {
		return
	}

	count, err := strconv.Atoi(ctx.DefaultQuery("count", "1"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid count: %w", err)))
		return
	}

	numbers, err := h.svc.AllocateTicketNumbers(ctx.Request.Context(), raffleID, count)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleAllocateTicketNumbers -> h.svc.AllocateTicketNumbers", err)
		return
	}

	ctx.JSON(http.StatusOK, response.TicketNumbers{RaffleID: raffleID, TicketNumbers: numbers})
}

// HandlePurchaseTickets godoc
// @Summary      Buy tickets
// @Description  Buys quantity tickets for the participant. The numbers are assigned by the server.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        raffleID  path      string                          true  "Raffle ID"
// @Param        input     body      request.PurchaseTicketsRequest  true  "Participant and quantity"
// @Success      201  {object}  response.Purchase
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      503  {object}  response.Err
// @Router       /raffles/{raffleID}/tickets [post]
func (h *TicketHandler) HandlePurchaseTickets(ctx *gin.Context) {
	raffleID, ok := parseUUIDParam(ctx, "raffleID")
	if !ok {
		return
	}

	var req request.PurchaseTicketsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tickets, err := h.svc.PurchaseTickets(ctx.Request.Context(), raffleID, req.Participant(), req.Quantity)
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePurchaseTickets -> h.svc.PurchaseTickets", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPurchase(raffleID, tickets))
}

// HandleListTicketsByEmail godoc
// @Summary      Tickets bought with an email
// @Tags         tickets
// @Produce      json
// @Param        email  query     string  true  "Participant email"
// @Success      200  {array}   domain.TicketWithRaffle
// @Failure      400  {object}  response.Err
// @Router       /tickets [get]
func (h *TicketHandler) HandleListTicketsByEmail(ctx *gin.Context) {
	tickets, err := h.svc.ListTicketsByEmail(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListTicketsByEmail -> h.svc.ListTicketsByEmail", err)
		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleListParticipants godoc
// @Summary      Participants of a raffle
// @Tags         tickets
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Success      200  {array}   domain.Participant
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /raffles/{raffleID}/participants [get]
// @Security     BearerAuth
func (h *TicketHandler) HandleListParticipants(ctx *gin.Context) {
	organizer, ok := organizerFromContext(ctx)
	if !ok {
		return
	}

	raffleID, ok := parseUUIDParam(ctx, "raffleID")
	if !ok {
		return
	}

	if _, err := h.raffles.GetOwnedRaffle(ctx.Request.Context(), raffleID, organizer.ID); err != nil {
		renderServiceErr(ctx, "v1.HandleListParticipants -> h.raffles.GetOwnedRaffle", err)
		return
	}

	participants, err := h.svc.ListParticipants(ctx.Request.Context(), raffleID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListParticipants -> h.svc.ListParticipants", err)
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleGetDashboard godoc
// @Summary      Raffle dashboard
// @Description  Progress, participants and daily sales of a raffle, for its organizer.
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Success      200  {object}  domain.Dashboard
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /raffles/{raffleID}/dashboard [get]
// @Security     BearerAuth
func (h *TicketHandler) HandleGetDashboard(ctx *gin.Context) {
	organizer, ok := organizerFromContext(ctx)
	if !ok {
		return
	}

	raffleID, ok := parseUUIDParam(ctx, "raffleID")
	if !ok {
		return
	}

	dashboard, err := h.svc.Dashboard(ctx.Request.Context(), raffleID, organizer.ID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetDashboard -> h.svc.Dashboard", err)
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}

// HandleReconcileRaffle godoc
// @Summary      Reconcile raffle totals
// @Description  Recomputes tickets sold and amount raised from the completed tickets.
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Success      200  {object}  domain.ReconcileReport
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /raffles/{raffleID}/reconcile [post]
// @Security     BearerAuth
func (h *TicketHandler) HandleReconcileRaffle(ctx *gin.Context) {
	organizer, ok := organizerFromContext(ctx)
	if !ok {
		return
	}

	raffleID, ok := parseUUIDParam(ctx, "raffleID")
	if !ok {
		return
	}

	if _, err := h.raffles.GetOwnedRaffle(ctx.Request.Context(), raffleID, organizer.ID); err != nil {
		renderServiceErr(ctx, "v1.HandleReconcileRaffle -> h.raffles.GetOwnedRaffle", err)
		return
	}

	report, err := h.svc.ReconcileRaffle(ctx.Request.Context(), raffleID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleReconcileRaffle -> h.svc.ReconcileRaffle", err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleUpdatePaymentStatus godoc
// @Summary      Record a payment outcome
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        ticketID  path      string                              true  "Ticket ID"
// @Param        input     body      request.UpdatePaymentStatusRequest  true  "pending, completed or failed"
// @Success      200  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /tickets/{ticketID}/payment-status [patch]
// @Security     BearerAuth
func (h *TicketHandler) HandleUpdatePaymentStatus(ctx *gin.Context) {
	organizer, ok := organizerFromContext(ctx)
	if !ok {
		return
	}

	ticketID, ok := parseUUIDParam(ctx, "ticketID")
	if !ok {
		return
	}

	var req request.UpdatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.UpdateTicketPaymentStatus(ctx.Request.Context(), ticketID, organizer.ID, domain.PaymentStatus(req.Status))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdatePaymentStatus -> h.svc.UpdateTicketPaymentStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, ticket)
}
