package sioclient

import "github.com/rs/zerolog"

// Option configures a Client at construction.
type Option = func(*Client)

// WithLogger attaches a structured logger to the client. The default
// logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}
