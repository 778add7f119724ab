package geojson

import (
	"encoding/json"
	"strings"
	"testing"

	"place-proximity/internal/domain"
)

var sample = domain.Coordinate{Lat: 51.5074, Lon: -0.1278}

func TestPositionRoundTrip(t *testing.T) {
	data, err := EncodePosition(sample)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodePosition(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != sample {
		t.Fatalf("round trip = %v, want %v", got, sample)
	}
}

func TestLatLngRoundTrip(t *testing.T) {
	data, err := EncodeLatLng(sample)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(data) != `{"lat":51.5074,"lng":-0.1278}` {
		t.Fatalf("wire form = %s", data)
	}

	got, err := DecodeLatLng(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != sample {
		t.Fatalf("round trip = %v, want %v", got, sample)
	}
}

func TestPointEncodesLongitudeFirst(t *testing.T) {
	data, err := EncodePoint(sample)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var p Point
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Type != "Point" {
		t.Fatalf("type = %q", p.Type)
	}
	if len(p.Coordinates) != 2 || p.Coordinates[0] != sample.Lon || p.Coordinates[1] != sample.Lat {
		t.Fatalf("coordinates = %v, want [lon lat]", p.Coordinates)
	}

	got, err := DecodePoint(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != sample {
		t.Fatalf("round trip = %v, want %v", got, sample)
	}
}

func TestDecodePointRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"wrong type", `{"type":"LineString","coordinates":[0,1]}`},
		{"short array", `{"type":"Point","coordinates":[5]}`},
		{"no type", `{"coordinates":[0,1]}`},
		{"garbage", `not json`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodePoint([]byte(tc.input)); err == nil {
				t.Fatalf("accepted %s", tc.input)
			}
		})
	}
}

func TestDecodePointIgnoresAltitude(t *testing.T) {
	got, err := DecodePoint([]byte(`{"type":"Point","coordinates":[2.3522,48.8566,35.0]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Lat != 48.8566 || got.Lon != 2.3522 {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeRequiresBothFields(t *testing.T) {
	if _, err := DecodePosition([]byte(`{"latitude":51.5}`)); err == nil {
		t.Fatalf("position without longitude accepted")
	}
	if _, err := DecodeLatLng([]byte(`{"lng":-0.1278}`)); err == nil {
		t.Fatalf("latlng without lat accepted")
	}
}

func TestDecodeAny(t *testing.T) {
	inputs := []string{
		`{"latitude":51.5074,"longitude":-0.1278}`,
		`{"lat":51.5074,"lng":-0.1278}`,
		`{"type":"Point","coordinates":[-0.1278,51.5074]}`,
	}
	for _, input := range inputs {
		got, err := DecodeAny([]byte(input))
		if err != nil {
			t.Fatalf("DecodeAny(%s): %v", input, err)
		}
		if got != sample {
			t.Fatalf("DecodeAny(%s) = %v, want %v", input, got, sample)
		}
	}

	if _, err := DecodeAny([]byte(`{"x":"y"}`)); err == nil || !strings.Contains(err.Error(), "unrecognized") {
		t.Fatalf("unrecognized shape err = %v", err)
	}
}
