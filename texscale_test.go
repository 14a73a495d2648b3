package texscale

import (
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"bilinear": Bilinear,
		"Bilinear": Bilinear,
		"nearest":  NearestNeighbor,
		" point ":  NearestNeighbor,
		"NEAREST":  NearestNeighbor,
		"linear":   Bilinear,
	}
	for s, want := range cases {
		got, err := ParseAlgorithm(s)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, want %v", s, got, want)
		}
	}

	_, err := ParseAlgorithm("bicubic")
	if !IsInvalidArgument(err) {
		t.Errorf("expected invalid argument for unknown name, got %v", err)
	}
}

func TestAlgorithmString(t *testing.T) {
	for _, a := range []Algorithm{Bilinear, NearestNeighbor} {
		back, err := ParseAlgorithm(a.String())
		if err != nil || back != a {
			t.Errorf("%v does not parse back: %v, %v", a, back, err)
		}
	}
	if Algorithm(7).String() != "unknown" {
		t.Errorf("unexpected name for invalid algorithm")
	}
	if DefaultAlgorithm != Bilinear {
		t.Errorf("default algorithm should be bilinear")
	}
}

func TestErrorPredicates(t *testing.T) {
	err := errors.New("plain")
	if IsInvalidArgument(err) || IsCorruptInput(err) || IsNotFound(err) {
		t.Errorf("plain error recognized as typed error")
	}
	if IsInvalidArgument(nil) || IsCorruptInput(nil) {
		t.Errorf("nil recognized as typed error")
	}
}

func TestSetLogLevel(t *testing.T) {
	// must accept any case and unknown names without panicking
	SetLogLevel("DEBUG")
	SetLogLevel("nonsense")
	SetLogLevel("warning")
}
