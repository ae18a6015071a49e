package options

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Subtype selects how an Analog uplink labels its analog and pulse readings.
type Subtype string

const (
	SubtypeEFS Subtype = "EFS" // electric fence sensor
	SubtypeWLM Subtype = "WLM" // water level monitor
	SubtypeRG  Subtype = "RG"  // rain gauge

	DefaultSubtype = SubtypeWLM
)

var ErrUnknownSubtype = errors.New("unknown analog device subtype")

type contextKey struct{}

// WithAnalogSubtype stores the subtype inside the context.
func WithAnalogSubtype(ctx context.Context, s Subtype) context.Context {
	if s == "" {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, s)
}

// AnalogSubtype retrieves the subtype from context, falling back to WLM.
func AnalogSubtype(ctx context.Context) Subtype {
	if ctx == nil {
		return DefaultSubtype
	}
	if v := ctx.Value(contextKey{}); v != nil {
		if s, ok := v.(Subtype); ok {
			return s
		}
	}
	return DefaultSubtype
}

// ParseSubtype validates a subtype name. An empty string selects the default.
func ParseSubtype(input string) (Subtype, error) {
	clean := strings.ToUpper(strings.TrimSpace(input))
	switch Subtype(clean) {
	case "":
		return DefaultSubtype, nil
	case SubtypeEFS, SubtypeWLM, SubtypeRG:
		return Subtype(clean), nil
	default:
		return "", fmt.Errorf("%w %q (want EFS, WLM or RG)", ErrUnknownSubtype, input)
	}
}
