package softvg

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx, err := softvg.New(softvg.WithFlattenTolerance(0.1))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	antialias bool
	tolerance float64
}

func defaultOptions() contextOptions {
	return contextOptions{
		antialias: true,
		tolerance: 0, // 0 selects the built-in default
	}
}

// WithAntialias enables or disables edge anti-aliasing. Enabled by default;
// disabling yields hard 0-or-full coverage, useful for pixel-exact masks.
func WithAntialias(enabled bool) ContextOption {
	return func(o *contextOptions) {
		o.antialias = enabled
	}
}

// WithFlattenTolerance sets the maximum deviation, in device units, between
// a curve and its polyline approximation. Values at or below zero select
// the default of 0.25.
func WithFlattenTolerance(tol float64) ContextOption {
	return func(o *contextOptions) {
		o.tolerance = tol
	}
}
