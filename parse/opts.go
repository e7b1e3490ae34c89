package parse

import "github.com/signadot/toml-format/go-toml/token"

type ParseOption func(*parseOpts)

type parseOpts struct {
	limits token.Limits
}

func defaultOpts() *parseOpts {
	return &parseOpts{limits: token.DefaultLimits()}
}

// WithLimits overrides the default size limits.
func WithLimits(l token.Limits) ParseOption {
	return func(o *parseOpts) {
		o.limits = l
	}
}
