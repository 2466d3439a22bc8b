package billing

import (
	"errors"
	"testing"
)

var (
	hamlet  = Play{Name: "Hamlet", Type: PlayTypeTragedy}
	asLike  = Play{Name: "As You Like It", Type: PlayTypeComedy}
	henryV  = Play{Name: "Henry V", Type: "history"}
	othello = Play{Name: "Othello", Type: PlayTypeTragedy}
)

func TestAmountFor(t *testing.T) {
	cases := []struct {
		name     string
		play     Play
		audience int
		want     int64
	}{
		{"tragedy empty house", hamlet, 0, 40000},
		{"tragedy at limit", hamlet, 30, 40000},
		{"tragedy over limit", hamlet, 55, 65000},
		{"tragedy forty", othello, 40, 50000},
		{"comedy empty house", asLike, 0, 30000},
		{"comedy at limit", asLike, 20, 36000},
		{"comedy over limit", asLike, 35, 58000},
		{"comedy twenty one", asLike, 21, 46800},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AmountFor(tc.play, tc.audience)
			if err != nil {
				t.Fatalf("amount for: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestAmountFor_Formulas(t *testing.T) {
	for audience := 0; audience <= 200; audience++ {
		tragedy, err := AmountFor(hamlet, audience)
		if err != nil {
			t.Fatalf("tragedy amount: %v", err)
		}
		wantTragedy := int64(40000)
		if audience > 30 {
			wantTragedy += 1000 * int64(audience-30)
		}
		if tragedy != wantTragedy {
			t.Fatalf("tragedy audience=%d expected %d, got %d", audience, wantTragedy, tragedy)
		}

		comedy, err := AmountFor(asLike, audience)
		if err != nil {
			t.Fatalf("comedy amount: %v", err)
		}
		wantComedy := int64(30000 + 300*audience)
		if audience > 20 {
			wantComedy += 10000 + 500*int64(audience-20)
		}
		if comedy != wantComedy {
			t.Fatalf("comedy audience=%d expected %d, got %d", audience, wantComedy, comedy)
		}
	}
}

func TestVolumeCreditsFor(t *testing.T) {
	cases := []struct {
		play     Play
		audience int
		want     int
	}{
		{hamlet, 0, 0},
		{hamlet, 30, 0},
		{hamlet, 55, 25},
		{othello, 40, 10},
		{asLike, 4, 0},
		{asLike, 20, 4},
		{asLike, 35, 12},
	}
	for _, tc := range cases {
		got, err := VolumeCreditsFor(tc.play, tc.audience)
		if err != nil {
			t.Fatalf("volume credits: %v", err)
		}
		if got != tc.want {
			t.Fatalf("%s audience=%d expected %d, got %d", tc.play.Type, tc.audience, tc.want, got)
		}
	}
}

func TestVolumeCreditsFor_Monotonic(t *testing.T) {
	for _, play := range []Play{hamlet, asLike} {
		prev := -1
		for audience := 0; audience <= 300; audience++ {
			got, err := VolumeCreditsFor(play, audience)
			if err != nil {
				t.Fatalf("volume credits: %v", err)
			}
			if got < prev {
				t.Fatalf("%s credits decreased at audience=%d: %d < %d", play.Type, audience, got, prev)
			}
			prev = got
		}
	}
}

func TestUnknownPlayType(t *testing.T) {
	if _, err := AmountFor(henryV, 10); !errors.Is(err, ErrUnknownPlayType) {
		t.Fatalf("expected ErrUnknownPlayType, got %v", err)
	}
	_, err := VolumeCreditsFor(henryV, 10)
	var typeErr *UnknownPlayTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected UnknownPlayTypeError, got %v", err)
	}
	if typeErr.Type != "history" {
		t.Fatalf("expected type history, got %s", typeErr.Type)
	}
	if PlayType("history").Known() {
		t.Fatalf("history should not be a known type")
	}
	if !PlayTypeComedy.Known() || !PlayTypeTragedy.Known() {
		t.Fatalf("comedy and tragedy should be known")
	}
}
