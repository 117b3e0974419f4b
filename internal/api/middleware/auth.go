package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/raffle-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/raffle-api/internal/pkg/jwthelper"
)

const organizerKey = "organizer"

var (
	errMissingToken = errors.New("missing bearer token")
	errNoOrganizer  = errors.New("no authenticated organizer")
)

type Organizer struct {
	ID    string
	Email string
	Name  string
}

type Authenticator struct {
	key []byte
}

func NewAuthenticator(key string) *Authenticator {
	return &Authenticator{
		key: []byte(key),
	}
}

// VerifyJWT accepts requests carrying a valid HS256 bearer token and stores
// the caller as an Organizer in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.key, strings.TrimSpace(tokenString))
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(fmt.Errorf("jwthelper.ParseToken -> %w", err)))
			return
		}

		ctx.Set(organizerKey, Organizer{
			ID:    claims.Subject,
			Email: claims.Email,
			Name:  claims.Name,
		})
		ctx.Next()
	}
}

func OrganizerFromContext(ctx *gin.Context) (Organizer, error) {
	v, ok := ctx.Get(organizerKey)
	if !ok {
		return Organizer{}, errNoOrganizer
	}

	organizer, ok := v.(Organizer)
	if !ok || organizer.ID == "" {
		return Organizer{}, errNoOrganizer
	}

	return organizer, nil
}
