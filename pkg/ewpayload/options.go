package ewpayload

import (
	"context"

	internalopts "github.com/jRubio4/EW-Payload-Plotter/internal/options"
)

// ErrUnknownSubtype is returned for an AnalogSubtype other than EFS, WLM or RG.
var ErrUnknownSubtype = internalopts.ErrUnknownSubtype

// DecodeOptions configures decoding.
type DecodeOptions struct {
	// AnalogSubtype is EFS, WLM or RG. It only affects Analog uplinks;
	// empty selects WLM.
	AnalogSubtype string
}

func (opts DecodeOptions) toInternal(ctx context.Context) (context.Context, error) {
	subtype, err := internalopts.ParseSubtype(opts.AnalogSubtype)
	if err != nil {
		return ctx, err
	}
	return internalopts.WithAnalogSubtype(ctx, subtype), nil
}
