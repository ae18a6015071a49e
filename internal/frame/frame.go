package frame

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jRubio4/EW-Payload-Plotter/internal/driver/codec"
)

var (
	ErrMalformedHex  = errors.New("malformed hex frame")
	ErrFrameTooShort = errors.New("frame too short")
)

// HeaderLength is the number of leading bytes shared by every product layout.
const HeaderLength = 15

// ShortFrameError reports a frame below the minimum length of its product.
type ShortFrameError struct {
	Product string
	Got     int
	Min     int
}

func (e *ShortFrameError) Error() string {
	return fmt.Sprintf("%s frame too short: %d bytes, need at least %d", e.Product, e.Got, e.Min)
}

func (e *ShortFrameError) Unwrap() error { return ErrFrameTooShort }

// Header holds the fields found at fixed offsets 0-14 of every uplink.
type Header struct {
	DeviceID       string
	FrameCount     uint8
	FirmwareID     string
	PayloadVersion uint8
}

// Frame is one tokenized uplink together with its decoded header.
type Frame struct {
	Raw    []byte
	Header Header
}

// Tokenize converts a hex string into bytes. Whitespace must already be
// stripped by the caller.
func Tokenize(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of hex digits (%d)", ErrMalformedHex, len(s))
	}
	out := make([]byte, len(s)/2)
	if _, err := hex.Decode(out, []byte(s)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return out, nil
}

// Parse extracts the common header from a raw uplink.
func Parse(raw []byte) (Frame, error) {
	h, err := ParseHeader(raw)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Raw: raw, Header: h}, nil
}

// ParseHeader decodes device identifier, frame counter, firmware tag and
// payload version.
func ParseHeader(raw []byte) (Header, error) {
	if len(raw) < HeaderLength {
		return Header{}, &ShortFrameError{Product: "header", Got: len(raw), Min: HeaderLength}
	}
	return Header{
		DeviceID:       codec.HexPadded(raw[0:8]),
		FrameCount:     raw[8],
		FirmwareID:     codec.HexCompact(raw[9:13]),
		PayloadVersion: raw[14],
	}, nil
}

