package driver

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/jRubio4/EW-Payload-Plotter/internal/frame"
)

func TestMinLengthBoundary(t *testing.T) {
	want := map[Product]int{WaterRat: 31, Analog: 35, SDI12: 23, PeopleCounter: 26}
	for _, p := range Products {
		minLen, err := MinLength(p)
		if err != nil {
			t.Fatalf("MinLength(%s): %v", p, err)
		}
		if minLen != want[p] {
			t.Fatalf("%s: min length %d, want %d", p, minLen, want[p])
		}

		_, _, err = Decode(context.Background(), p, make([]byte, minLen-1))
		if !errors.Is(err, frame.ErrFrameTooShort) {
			t.Fatalf("%s: %d bytes must be rejected, got %v", p, minLen-1, err)
		}
		var sfe *frame.ShortFrameError
		if !errors.As(err, &sfe) || sfe.Got != minLen-1 || sfe.Min != minLen || sfe.Product != string(p) {
			t.Fatalf("%s: unexpected error detail %+v", p, sfe)
		}

		if _, rec, err := Decode(context.Background(), p, make([]byte, minLen)); err != nil || rec.Len() == 0 {
			t.Fatalf("%s: %d bytes must decode, got %v", p, minLen, err)
		}
	}
}

func TestDecodeDeterministic(t *testing.T) {
	raw := make([]byte, 40)
	for i := range raw {
		raw[i] = byte(i * 37)
	}
	for _, p := range Products {
		_, a, err := Decode(context.Background(), p, raw)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		_, b, err := Decode(context.Background(), p, raw)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		ja, _ := json.Marshal(a)
		jb, _ := json.Marshal(b)
		if string(ja) != string(jb) || !reflect.DeepEqual(a.Names(), b.Names()) {
			t.Fatalf("%s: decode is not deterministic", p)
		}
	}
}

func TestParseProduct(t *testing.T) {
	cases := map[string]Product{
		"waterrat":       WaterRat,
		"Water-Rat":      WaterRat,
		"ANALOG":         Analog,
		"sdi-12":         SDI12,
		"SDI12":          SDI12,
		"people counter": PeopleCounter,
		"people_counter": PeopleCounter,
	}
	for in, want := range cases {
		got, err := ParseProduct(in)
		if err != nil || got != want {
			t.Fatalf("ParseProduct(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseProduct("thermostat"); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("thermostat"); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
	if _, _, err := Decode(context.Background(), "thermostat", make([]byte, 64)); !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestLookupNames(t *testing.T) {
	for _, p := range Products {
		drv, err := Lookup(p)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", p, err)
		}
		if drv.Name() != string(p) {
			t.Fatalf("driver name %s does not match product %s", drv.Name(), p)
		}
	}
}
