package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/domain"
)

type RaffleService interface {
	CreateRaffle(ctx context.Context, raffle domain.Raffle) (domain.Raffle, error)
	GetRaffle(ctx context.Context, id uuid.UUID) (domain.Raffle, error)
	GetOwnedRaffle(ctx context.Context, id uuid.UUID, organizerID string) (domain.Raffle, error)
	ListActiveRaffles(ctx context.Context, filter domain.RaffleFilter) ([]domain.Raffle, error)
	ListRafflesByOrganizer(ctx context.Context, organizerID string) ([]domain.Raffle, error)
	UpdateRaffleStatus(ctx context.Context, id uuid.UUID, organizerID string, status domain.RaffleStatus) (domain.Raffle, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	PlatformStats(ctx context.Context) (domain.PlatformStats, error)
}

type RaffleHandler struct {
	svc RaffleService
	now func() time.Time
}

func NewRaffleHandler(svc RaffleService) *RaffleHandler {
	return &RaffleHandler{
		svc: svc,
		now: time.Now,
	}
}

func (h *RaffleHandler) withProgress(raffles []domain.Raffle) []response.Raffle {
	now := h.now()
	result := make([]response.Raffle, len(raffles))
	for i, r := range raffles {
		result[i] = response.Raffle{Raffle: r, Progress: domain.ProgressOf(r, now)}
	}

	return result
}

// HandleListRaffles godoc
// @Summary      List active raffles
// @Description  Raffles still selling tickets, optionally filtered by category and free text.
// @Tags         raffles
// @Produce      json
// @Param        category  query     string  false  "Category name"
// @Param        q         query     string  false  "Search in title, description and organizer name"
// @Param        sort      query     string  false  "newest, ending, popular or goal"
// @Success      200  {array}   response.Raffle
// @Failure      400  {object}  response.Err
// @Failure      503  {object}  response.Err
// @Router       /raffles [get]
func (h *RaffleHandler) HandleListRaffles(ctx *gin.Context) {
	raffles, err := h.svc.ListActiveRaffles(ctx.Request.Context(), domain.RaffleFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("q"),
		Sort:     domain.RaffleSort(ctx.Query("sort")),
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListRaffles -> h.svc.ListActiveRaffles", err)
		return
	}

	ctx.JSON(http.StatusOK, h.withProgress(raffles))
}

// HandleGetRaffle godoc
// @Summary      Get a raffle
// @Tags         raffles
// @Produce      json
// @Param        raffleID  path      string  true  "Raffle ID"
// @Success      200  {object}  response.Raffle
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /raffles/{raffleID} [get]
func (h *RaffleHandler) HandleGetRaffle(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "raffleID")
	if !ok {
		return
	}

	raffle, err := h.svc.GetRaffle(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetRaffle -> h.svc.GetRaffle", err)
		return
	}

	ctx.JSON(http.StatusOK, response.Raffle{Raffle: raffle, Progress: domain.ProgressOf(raffle, h.now())})
}

// HandleCreateRaffle godoc
// @Summary      Create a raffle
// @Description  Opens a raffle owned by the authenticated organizer. Amounts are in cents.
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateRaffleRequest  true  "Raffle details"
// @Success      201  {object}  response.Raffle
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Router       /raffles [post]
// @Security     BearerAuth
func (h *RaffleHandler) HandleCreateRaffle(ctx *gin.Context) {
	organizer, ok := organizerFromContext(ctx)
	if !ok {
		return
	}

	var req request.CreateRaffleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	name := organizer.Name
	if name == "" {
		name = organizer.Email
	}

	created, err := h.svc.CreateRaffle(ctx.Request.Context(), req.ToDomain(organizer.ID, name))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateRaffle -> h.svc.CreateRaffle", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.Raffle{Raffle: created, Progress: domain.ProgressOf(created, h.now())})
}

// HandleListMyRaffles godoc
// @Summary      List the organizer's raffles
// @Tags         raffles
// @Produce      json
// @Success      200  {array}   response.Raffle
// @Failure      401  {object}  response.Err
// @Router       /me/raffles [get]
// @Security     BearerAuth
func (h *RaffleHandler) HandleListMyRaffles(ctx *gin.Context) {
	organizer, ok := organizerFromContext(ctx)
	if !ok {
		return
	}

	raffles, err := h.svc.ListRafflesByOrganizer(ctx.Request.Context(), organizer.ID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListMyRaffles -> h.svc.ListRafflesByOrganizer", err)
		return
	}

	ctx.JSON(http.StatusOK, h.withProgress(raffles))
}

// HandleUpdateRaffleStatus godoc
// @Summary      Close a raffle
// @Tags         raffles
// @Accept       json
// @Produce      json
// @Param        raffleID  path      string                             true  "Raffle ID"
// @Param        input     body      request.UpdateRaffleStatusRequest  true  "completed or cancelled"
// @Success      200  {object}  response.Raffle
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Router       /raffles/{raffleID}/status [patch]
// @Security     BearerAuth
func (h *RaffleHandler) HandleUpdateRaffleStatus(ctx *gin.Context) {
	organizer, ok := organizerFromContext(ctx)
	if !ok {
		return
	}

	id, ok := parseUUIDParam(ctx, "raffleID")
	if !ok {
		return
	}

	var req request.UpdateRaffleStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateRaffleStatus(ctx.Request.Context(), id, organizer.ID, domain.RaffleStatus(req.Status))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateRaffleStatus -> h.svc.UpdateRaffleStatus", err)
		return
	}

	ctx.JSON(http.StatusOK, response.Raffle{Raffle: updated, Progress: domain.ProgressOf(updated, h.now())})
}

// HandleListCategories godoc
// @Summary      List raffle categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   domain.Category
// @Router       /categories [get]
func (h *RaffleHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListCategories -> h.svc.ListCategories", err)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleGetStats godoc
// @Summary      Platform totals
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.PlatformStats
// @Router       /stats [get]
func (h *RaffleHandler) HandleGetStats(ctx *gin.Context) {
	stats, err := h.svc.PlatformStats(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetStats -> h.svc.PlatformStats", err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
