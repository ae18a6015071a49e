package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/analog"
	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/peoplecounter"
	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/sdi12"
	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/waterrat"
	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
)

// Product identifies a device family and therefore an uplink layout.
type Product string

const (
	WaterRat      Product = "waterrat"
	Analog        Product = "analog"
	SDI12         Product = "sdi12"
	PeopleCounter Product = "peoplecounter"
)

var ErrUnknownProduct = errors.New("unknown product")

// Products lists every supported product in display order.
var Products = []Product{WaterRat, Analog, SDI12, PeopleCounter}

// Driver processes frames once selected.
type Driver interface {
	Name() string
	Process(context.Context, *frame.Frame) (*records.Record, error)
}

// ParseProduct resolves a product name, ignoring case, spaces, dashes and
// underscores.
func ParseProduct(input string) (Product, error) {
	clean := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(input)))
	p := Product(clean)
	if _, err := MinLength(p); err != nil {
		return "", fmt.Errorf("%w %q", ErrUnknownProduct, input)
	}
	return p, nil
}

// MinLength returns the shortest frame the product's driver accepts.
func MinLength(p Product) (int, error) {
	switch p {
	case WaterRat:
		return waterrat.MinLength, nil
	case Analog:
		return analog.MinLength, nil
	case SDI12:
		return sdi12.MinLength, nil
	case PeopleCounter:
		return peoplecounter.MinLength, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownProduct, string(p))
	}
}

// Lookup returns the driver for a product.
func Lookup(p Product) (Driver, error) {
	switch p {
	case WaterRat:
		return waterrat.Driver{}, nil
	case Analog:
		return analog.Driver{}, nil
	case SDI12:
		return sdi12.Driver{}, nil
	case PeopleCounter:
		return peoplecounter.Driver{}, nil
	default:
		return nil, fmt.Errorf("driver not found: %w %q", ErrUnknownProduct, string(p))
	}
}

// Decode checks the frame length against the product minimum and runs the
// product's driver. Byte content is not validated.
func Decode(ctx context.Context, p Product, raw []byte) (*frame.Frame, *records.Record, error) {
	drv, err := Lookup(p)
	if err != nil {
		return nil, nil, err
	}
	minLen, err := MinLength(p)
	if err != nil {
		return nil, nil, err
	}
	if len(raw) < minLen {
		return nil, nil, &frame.ShortFrameError{Product: string(p), Got: len(raw), Min: minLen}
	}
	f, err := frame.Parse(raw)
	if err != nil {
		return nil, nil, err
	}
	rec, err := drv.Process(ctx, &f)
	if err != nil {
		return &f, nil, fmt.Errorf("%s: %w", drv.Name(), err)
	}
	return &f, rec, nil
}
