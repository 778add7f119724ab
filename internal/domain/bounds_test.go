package domain

import "testing"

func TestBoundsAroundContainsRadius(t *testing.T) {
	center := london
	radius := 10000.0

	box := BoundsAround(center, radius)

	// Points on a ring just inside the radius must survive the prescreen.
	for bearing := 0.0; bearing < 360; bearing += 30 {
		p := center.OffsetBy(radius*0.99, bearing)
		if !box.Contains(p) {
			t.Errorf("point at bearing %v inside radius escaped the box", bearing)
		}
	}

	far := center.OffsetBy(radius*5, 45)
	if box.Contains(far) {
		t.Errorf("point far outside radius stayed in the box")
	}
}

func TestBoundsAroundCrossingAntimeridian(t *testing.T) {
	center := Coordinate{Lat: 0, Lon: 179.5}

	box := BoundsAround(center, 100000)
	if box.MinLon <= box.MaxLon {
		t.Fatalf("box should wrap: %+v", box)
	}

	if !box.Contains(Coordinate{Lat: 0, Lon: 179.9}) {
		t.Errorf("east side of the seam not contained")
	}
	if !box.Contains(Coordinate{Lat: 0, Lon: -179.8}) {
		t.Errorf("west side of the seam not contained")
	}
	if box.Contains(Coordinate{Lat: 0, Lon: 170}) {
		t.Errorf("longitude well outside the window contained")
	}
}

func TestBoundsAroundNearPole(t *testing.T) {
	box := BoundsAround(Coordinate{Lat: 89.9, Lon: 10}, 50000)

	if box.MinLon != -180 || box.MaxLon != 180 {
		t.Fatalf("near-pole box should span all longitudes: %+v", box)
	}
	if !box.Contains(Coordinate{Lat: 89.95, Lon: -170}) {
		t.Errorf("point near the pole on another meridian not contained")
	}
}

func TestBoundsOf(t *testing.T) {
	if _, ok := BoundsOf(nil); ok {
		t.Fatalf("empty input should report ok=false")
	}

	box, ok := BoundsOf([]Coordinate{
		{Lat: 48.8566, Lon: 2.3522},
		{Lat: 51.5074, Lon: -0.1278},
		{Lat: 50.1109, Lon: 8.6821},
	})
	if !ok {
		t.Fatalf("expected a box")
	}

	want := BoundingBox{MinLat: 48.8566, MaxLat: 51.5074, MinLon: -0.1278, MaxLon: 8.6821}
	if box != want {
		t.Fatalf("box = %+v, want %+v", box, want)
	}
}

func TestExtendWithPoint(t *testing.T) {
	box := BoundingBox{MinLat: 0, MaxLat: 1, MinLon: 0, MaxLon: 1}

	grown := box.ExtendWithPoint(Coordinate{Lat: -2, Lon: 3})
	want := BoundingBox{MinLat: -2, MaxLat: 1, MinLon: 0, MaxLon: 3}
	if grown != want {
		t.Fatalf("grown = %+v, want %+v", grown, want)
	}

	same := box.ExtendWithPoint(Coordinate{Lat: 0.5, Lon: 0.5})
	if same != box {
		t.Fatalf("interior point should not grow the box: %+v", same)
	}
}
