package graph

import "context"

type accessTokenKey struct{}

// WithAccessToken stores the inbound authorization header value. It is
// forwarded verbatim to the backend on protected fields.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

func AccessToken(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}
