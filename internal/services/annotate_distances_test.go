package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"place-proximity/internal/ports"
)

func TestAnnotateDistancesInline(t *testing.T) {
	items := londonFixture()

	got, err := AnnotateDistances(context.Background(), testOrigin, items, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("got %d annotations, want %d", len(got), len(items))
	}

	for i, a := range got {
		if a.Item.ID() != items[i].ID() {
			t.Fatalf("annotation %d is for %q, want %q", i, a.Item.ID(), items[i].ID())
		}

		c, ok := items[i].Coordinate()
		if !ok {
			if a.Distance != nil {
				t.Fatalf("unlocated item %q got a distance", a.Item.ID())
			}
			continue
		}
		if a.Distance == nil {
			t.Fatalf("located item %q missing its distance", a.Item.ID())
		}
		if want := testOrigin.DistanceTo(c); a.Distance.Meters != want {
			t.Fatalf("distance for %q = %v, want %v", a.Item.ID(), a.Distance.Meters, want)
		}
	}
}

func TestAnnotateDistancesFanoutMatchesSequential(t *testing.T) {
	// Enough items to cross the inline threshold and spread over several bands.
	items := make([]ports.LocatedItem, 0, 1000)
	for i := 0; i < 1000; i++ {
		lon := -10 + float64(i)*0.02
		items = append(items, testPlace(fmt.Sprintf("p%03d", i), 45, lon, "", ""))
	}

	fanned, err := AnnotateDistances(context.Background(), testOrigin, items, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, a := range fanned {
		c, _ := items[i].Coordinate()
		want := testOrigin.DistanceTo(c)
		if a.Item.ID() != items[i].ID() || a.Distance == nil || a.Distance.Meters != want {
			t.Fatalf("fanout diverged at %d: %+v", i, a)
		}
	}
}

func TestAnnotateDistancesCanceledContext(t *testing.T) {
	items := make([]ports.LocatedItem, 0, 200)
	for i := 0; i < 200; i++ {
		items = append(items, testPlace(fmt.Sprintf("p%03d", i), 45, float64(i)*0.01, "", ""))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := AnnotateDistances(ctx, testOrigin, items, 4); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestAnnotateDistancesEmptyInput(t *testing.T) {
	got, err := AnnotateDistances(context.Background(), testOrigin, nil, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d annotations for empty input", len(got))
	}
}

func TestNearnessLabelBands(t *testing.T) {
	cases := []struct {
		distance float64
		radius   float64
		want     string
	}{
		{0, 1000, "Very Close"},
		{200, 1000, "Very Close"},
		{400, 1000, "Close"},
		{700, 1000, "In Range"},
		{900, 1000, "Near The Edge"},
		{1000, 1000, "Far"},
		{5000, 1000, "Far"},
		{10, 0, "Far"},
	}
	for _, tc := range cases {
		if got := NearnessLabel(tc.distance, tc.radius); got != tc.want {
			t.Errorf("NearnessLabel(%v, %v) = %q, want %q", tc.distance, tc.radius, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(0, 1000); got != 100 {
		t.Fatalf("at origin = %v, want 100", got)
	}
	if got := Progress(250, 1000); got != 75 {
		t.Fatalf("quarter in = %v, want 75", got)
	}
	if got := Progress(1000, 1000); got != 0 {
		t.Fatalf("at edge = %v, want 0", got)
	}
	if got := Progress(100, 0); got != 0 {
		t.Fatalf("zero radius = %v, want 0", got)
	}
}
