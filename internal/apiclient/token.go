package apiclient

import "context"

type ctxKey int

const tokenKey ctxKey = iota

// WithToken returns a context whose API calls carry the bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
