package middleware

import (
	"net/http"

	"olive-mill/internal/domain/actor"
	"olive-mill/internal/handler/httperr"
	"olive-mill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// The upstream gateway authenticates callers and forwards their identity in
// these headers.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"

	ctxActorKey = "actor"
)

var errNilActor = errs.New("actor id must not be the nil uuid")

func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderActorID))
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Wrap(err, "parse actor id"), "Actor identity required", nil)
			return
		}
		if id == uuid.Nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errNilActor, "Actor identity required", nil)
			return
		}

		role, err := actor.NewRole(c.GetHeader(HeaderActorRole))
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Actor role required", nil)
			return
		}

		c.Set(ctxActorKey, actor.Actor{ID: id, Role: role})
		c.Next()
	}
}

func GetActor(c *gin.Context) (actor.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return actor.Actor{}, false
	}
	act, ok := v.(actor.Actor)
	return act, ok
}
