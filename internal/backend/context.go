package backend

import "context"

type contextKey string

const tokenKey = contextKey("backend_token")

// ContextWithToken returns a context whose backend calls are authenticated
// with token instead of the client's service token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the session token stored by ContextWithToken.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
