// Command nearby prints a proximity report for a file of place records:
// which places fall inside the search radius, grouped by locality, nearest
// first, with distances in the user's unit system.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"place-proximity/internal/adapters/geojson"
	"place-proximity/internal/adapters/origin"
	"place-proximity/internal/adapters/records"
	"place-proximity/internal/config"
	"place-proximity/internal/domain"
	"place-proximity/internal/platform/obs"
	"place-proximity/internal/ports"
	"place-proximity/internal/services"
)

// main is the application composition root. It wires the file-backed place
// source and the origin resolver behind ports and renders one nearby view.
func main() {
	config.Load()

	recordsPath := flag.String("records", config.Get("RECORDS_PATH", "data/places.json"), `JSON array of place records, "-" for stdin`)
	originFlag := flag.String("origin", "", `origin as "lat,lng" (default: DEFAULT_ORIGIN)`)
	radiusFlag := flag.Float64("radius", config.GetFloat("DEFAULT_RADIUS", 10), "search radius in the selected units")
	unitsFlag := flag.String("units", config.Get("UNITS", "metric"), "metric or imperial")
	groupFlag := flag.String("group", "city", "group results by city, region, or country")
	obscureFlag := flag.Float64("obscure", 0, "jitter printed coordinates by up to this many meters")
	workersFlag := flag.Int("workers", config.GetInt("ANNOTATE_WORKERS", 0), "distance workers (0 = default)")
	geojsonFlag := flag.Bool("geojson", false, "print the result center as GeoJSON")
	flag.Parse()

	ctx := obs.WithRequestID(context.Background(), uuid.NewString())

	units, ok := domain.ParseUnitSystem(*unitsFlag)
	if !ok {
		log.Fatalf("units %q: want metric or imperial", *unitsFlag)
	}

	scope, ok := parseScope(*groupFlag)
	if !ok {
		log.Fatalf("group %q: want city, region, or country", *groupFlag)
	}

	userOrigin, err := resolveOrigin(ctx, *originFlag)
	if err != nil {
		log.Fatal(err)
	}

	view, err := services.BuildNearbyView(ctx, services.NearbyViewRequest{
		Origin:       userOrigin,
		RadiusMeters: units.ToMeters(*radiusFlag),
		Scope:        scope,
		Workers:      *workersFlag,
	}, records.NewFilePlaceSource(*recordsPath))
	if err != nil {
		log.Fatal(err)
	}

	printView(view, units, *obscureFlag, *geojsonFlag)
}

// The -origin flag wins over the environment; both go through the same
// clamping as any other ingested coordinate.
func resolveOrigin(ctx context.Context, flagValue string) (*domain.Coordinate, error) {
	if flagValue != "" {
		c, ok := domain.ParseLatLng(flagValue)
		if !ok {
			return nil, fmt.Errorf("origin %q is not a lat,lng pair", flagValue)
		}
		c = c.Clamped()
		return &c, nil
	}
	return origin.EnvSource{}.Origin(ctx)
}

func parseScope(s string) (services.LocalityScope, bool) {
	switch s {
	case "city":
		return services.ScopeCity, true
	case "region":
		return services.ScopeRegion, true
	case "country":
		return services.ScopeCountry, true
	}
	return services.ScopeCity, false
}

func printView(view *services.NearbyView, units domain.UnitSystem, obscureMeters float64, asGeoJSON bool) {
	if view.Origin == nil {
		fmt.Println("No origin available: listing all places unfiltered.")
	} else {
		fmt.Printf("Places within %s of %s:\n", units.FormatDistance(view.RadiusMeters), view.Origin)
	}

	var rng *rand.Rand
	if obscureMeters > 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	total := 0
	for _, group := range view.Groups {
		fmt.Printf("\n%s\n", group.Name)
		for _, a := range group.Items {
			total++
			fmt.Printf("  - %s%s\n", displayName(a.Item), annotation(a, view, units, rng, obscureMeters))
		}
	}

	fmt.Printf("\n%d place(s)", total)
	if view.Origin != nil {
		fmt.Printf(" within %s", units.FormatDistance(view.RadiusMeters))
	}
	fmt.Println()

	if view.Center != nil {
		if asGeoJSON {
			data, err := geojson.EncodePoint(*view.Center)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("center: %s\n", data)
		} else {
			fmt.Printf("center: %s\n", view.Center)
		}
	}
	if view.Viewport != nil {
		fmt.Printf("viewport: %.4f,%.4f -> %.4f,%.4f\n",
			view.Viewport.MinLat, view.Viewport.MinLon, view.Viewport.MaxLat, view.Viewport.MaxLon)
	}
}

func displayName(it ports.LocatedItem) string {
	if p, ok := it.(domain.Place); ok && p.Name != "" {
		return p.Name
	}
	return it.ID()
}

func annotation(a services.Annotated, view *services.NearbyView, units domain.UnitSystem, rng *rand.Rand, obscureMeters float64) string {
	out := ""
	if a.Distance != nil {
		out += fmt.Sprintf("  %s", a.Distance.Label(units))
		if view.Origin != nil && view.RadiusMeters > 0 {
			out += fmt.Sprintf("  [%s]", services.NearnessLabel(a.Distance.Meters, view.RadiusMeters))
		}
	}
	if c, ok := a.Item.Coordinate(); ok {
		out += fmt.Sprintf("  (%s)", c.Obscured(obscureMeters, rng))
	}
	return out
}

func init() {
	// Keep report output clean; diagnostics go to stderr.
	log.SetOutput(os.Stderr)
}
