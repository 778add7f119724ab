// Command geocalc answers the pairwise geodesy questions: how far apart two
// points are, the initial bearing between them, their midpoint, and the
// destination reached by an offset from the first point.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"place-proximity/internal/adapters/geojson"
	"place-proximity/internal/config"
	"place-proximity/internal/domain"
)

func main() {
	log.SetOutput(os.Stderr)
	config.Load()

	fromFlag := flag.String("from", "", `first point as "lat,lng"`)
	toFlag := flag.String("to", "", `second point as "lat,lng"`)
	unitsFlag := flag.String("units", config.Get("UNITS", "metric"), "metric or imperial")
	offsetFlag := flag.String("offset", "", `also print the destination "<meters>@<bearing>" from -from`)
	geojsonFlag := flag.Bool("geojson", false, "print derived points as GeoJSON")
	flag.Parse()

	units, ok := domain.ParseUnitSystem(*unitsFlag)
	if !ok {
		usage("units %q: want metric or imperial", *unitsFlag)
	}

	from, ok := domain.ParseLatLng(*fromFlag)
	if !ok {
		usage("-from %q is not a lat,lng pair", *fromFlag)
	}
	from = from.Clamped()

	if *toFlag != "" {
		to, ok := domain.ParseLatLng(*toFlag)
		if !ok {
			usage("-to %q is not a lat,lng pair", *toFlag)
		}
		to = to.Clamped()

		fmt.Printf("distance: %s\n", units.FormatDistance(from.DistanceTo(to)))
		fmt.Printf("bearing:  %.1f°\n", from.BearingTo(to))
		fmt.Printf("midpoint: %s\n", render(from.MidpointTo(to), *geojsonFlag))
	}

	if *offsetFlag != "" {
		meters, bearing, ok := parseOffset(*offsetFlag)
		if !ok {
			usage(`-offset %q: want "<meters>@<bearing>"`, *offsetFlag)
		}
		fmt.Printf("offset:   %s\n", render(from.OffsetBy(meters, bearing), *geojsonFlag))
	}

	if *toFlag == "" && *offsetFlag == "" {
		usage("nothing to compute: pass -to, -offset, or both")
	}
}

// "2500@45" means 2500 meters at bearing 45 degrees.
func parseOffset(s string) (meters, bearing float64, ok bool) {
	dist, brg, found := strings.Cut(s, "@")
	if !found {
		return 0, 0, false
	}
	meters, err := strconv.ParseFloat(strings.TrimSpace(dist), 64)
	if err != nil {
		return 0, 0, false
	}
	bearing, err = strconv.ParseFloat(strings.TrimSpace(brg), 64)
	if err != nil {
		return 0, 0, false
	}
	return meters, bearing, true
}

func render(c domain.Coordinate, asGeoJSON bool) string {
	if !asGeoJSON {
		return c.String()
	}
	data, err := geojson.EncodePoint(c.RoundedDefault())
	if err != nil {
		log.Fatal(err)
	}
	return string(data)
}

func usage(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n\n", args...)
	flag.Usage()
	os.Exit(2)
}
