package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/api/middleware"
	"github.com/vietanh2810/raffle-api/internal/service"
)

const retryAfterSeconds = 1

// renderServiceErr turns a service error into the matching HTTP error. op
// names the failing call for the server log.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrRaffleNotFound):
		response.RenderErr(ctx, response.ErrNotFound("raffle", "id", ctx.Param("raffleID")))
	case errors.Is(err, service.ErrTicketNotFound):
		response.RenderErr(ctx, response.ErrNotFound("ticket", "id", ctx.Param("ticketID")))
	case errors.Is(err, service.ErrNotOrganizer):
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrNotOrganizer))
	case errors.Is(err, service.ErrRaffleClosed), errors.Is(err, service.ErrInvalidStatusTransition):
		response.RenderErr(ctx, response.ErrConflict(err))
	case errors.Is(err, service.ErrAllocationConflict), errors.Is(err, service.ErrStorageUnavailable):
		ctx.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		response.RenderErr(ctx, response.ErrServiceUnavailable(fmt.Errorf("%s -> %w", op, err)))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func parseUUIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid %s: %w", name, err)))
		return uuid.Nil, false
	}

	return id, true
}

func organizerFromContext(ctx *gin.Context) (middleware.Organizer, bool) {
	organizer, err := middleware.OrganizerFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err))
		return middleware.Organizer{}, false
	}

	return organizer, true
}
