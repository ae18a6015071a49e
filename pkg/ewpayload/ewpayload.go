package ewpayload

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/jRubio4/EW-Payload-Plotter/internal/driver"
	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
	"github.com/jRubio4/EW-Payload-Plotter/internal/records"
)

// Product identifies the device family that emitted an uplink.
type Product = driver.Product

const (
	WaterRat      = driver.WaterRat
	Analog        = driver.Analog
	SDI12         = driver.SDI12
	PeopleCounter = driver.PeopleCounter
)

// Errors returned by the decode entry points; test with errors.Is.
var (
	ErrMalformedHex   = frame.ErrMalformedHex
	ErrFrameTooShort  = frame.ErrFrameTooShort
	ErrUnknownProduct = driver.ErrUnknownProduct
)

// ShortFrameError carries the lengths behind ErrFrameTooShort.
type ShortFrameError = frame.ShortFrameError

// Products lists the supported products.
func Products() []Product {
	return append([]Product(nil), driver.Products...)
}

// ParseProduct resolves a product name such as "waterrat" or "SDI-12".
func ParseProduct(name string) (Product, error) {
	return driver.ParseProduct(name)
}

// MinLength returns the minimum frame length of a product in bytes.
func MinLength(p Product) (int, error) {
	return driver.MinLength(p)
}

// Result captures the outcome of Decode.
type Result struct {
	Product   Product
	RawHex    string
	ByteCount int
	Header    frame.Header
	Fields    *records.Record
	// Warnings lists recoverable decoding remarks, such as a truncated
	// SDI-12 measurement block.
	Warnings []string
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	data, err := json.MarshalIndent(r.summary(), "", "  ")
	if err != nil {
		return fmt.Sprintf("product: %s bytes:%d raw:%s (marshal error: %v)", r.Product, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// MarshalJSON renders the result with its fields in emission order.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.summary())
}

// MarshalYAML implements yaml.Marshaler.
func (r Result) MarshalYAML() (any, error) {
	return r.summary(), nil
}

type resultSummary struct {
	Product   Product         `json:"product" yaml:"product"`
	ByteCount int             `json:"byte_count" yaml:"byte_count"`
	RawHex    string          `json:"raw_hex" yaml:"raw_hex"`
	Fields    *records.Record `json:"fields" yaml:"fields"`
	Warnings  []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func (r Result) summary() resultSummary {
	return resultSummary{
		Product:   r.Product,
		ByteCount: r.ByteCount,
		RawHex:    r.RawHex,
		Fields:    r.Fields,
		Warnings:  r.Warnings,
	}
}

// Decode tokenizes a hex uplink and decodes it with the product's layout.
func Decode(ctx context.Context, raw string, p Product, opts DecodeOptions) (Result, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	return DecodeBytes(ctx, data, p, opts)
}

// DecodeBytes decodes an already tokenized uplink.
func DecodeBytes(ctx context.Context, data []byte, p Product, opts DecodeOptions) (Result, error) {
	ctx, err := opts.toInternal(ctx)
	if err != nil {
		return Result{}, err
	}
	f, rec, err := driver.Decode(ctx, p, data)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Product:   p,
		RawHex:    strings.ToUpper(fmt.Sprintf("%x", data)),
		ByteCount: len(data),
		Header:    f.Header,
		Fields:    rec,
		Warnings:  rec.Notes(),
	}, nil
}

func decodeHex(input string) ([]byte, error) {
	clean := stripWhitespace(input)
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		clean = clean[2:]
	}
	return frame.Tokenize(clean)
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
