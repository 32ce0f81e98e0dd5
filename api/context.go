package api

import (
	"context"
	"errors"

	"portfolio-backend/models"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser adds the authenticated user to the context.
func ctxWithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// ctxGetUser retrieves the authenticated user from the context. Only
// present on routes behind the protect middleware.
func ctxGetUser(ctx context.Context) (models.User, error) {
	value := ctx.Value(userKey)
	if value == nil {
		return models.User{}, errors.New("no user in context")
	}
	user, ok := value.(models.User)
	if !ok {
		return models.User{}, errors.New("context user has unexpected type")
	}
	return user, nil
}
