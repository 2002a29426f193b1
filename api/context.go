package api

import (
	"context"
)

type keyType string

const adminKey keyType = "admin"

// ctxWithAdmin attaches the authenticated admin username to the context
func ctxWithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminKey, username)
}

// ctxAdmin retrieves the authenticated admin username, if any
func ctxAdmin(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminKey).(string)
	return username, ok
}
