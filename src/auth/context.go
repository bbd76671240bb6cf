package auth

import "context"

type contextKey string

// ClientKey marks a request that passed API-key authentication.
const ClientKey contextKey = "client"

// Client identifies the authenticated API consumer.
type Client struct {
	Name string
}

func GetClientFromContext(ctx context.Context) (*Client, bool) {
	client, ok := ctx.Value(ClientKey).(*Client)
	return client, ok
}
