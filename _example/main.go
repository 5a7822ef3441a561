package main

import (
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"time"

	"github.com/probekit/obscube"
	"github.com/probekit/obscube/model"
)

func main() {
	size := 500_000

	metrics := &obscube.BasicMetricsCollector{}
	cube := obscube.WithCapacity(size,
		obscube.WithLogLevel(slog.LevelInfo),
		obscube.WithMetricsCollector(metrics),
	)

	rng := rand.New(rand.NewSource(4711))

	fmt.Println("--- Insert ---")
	fmt.Println("Size:", size)

	start := time.Now()
	for i := 0; i < size; i++ {
		var src model.SourceID
		src[4] = byte(rng.Intn(16))
		src[5] = byte(rng.Intn(250))

		cube.Insert(model.Observation{
			Signal:    int8(-30 - rng.Intn(70)),
			Source:    src,
			Timestamp: time.Now().Unix() + int64(i),
			Lat:       37.0 + rng.Float64(),
			Lon:       -123.0 + rng.Float64(),
		})
	}
	fmt.Println("Elapsed:", time.Since(start))
	fmt.Printf("Rate: %.0f records/s\n", float64(size)/time.Since(start).Seconds())

	fmt.Println("--- Query ---")

	start = time.Now()
	strong := cube.QuerySignalAtLeast(-50)
	fmt.Printf("Signal >= -50 dBm: %d hits in %v\n", len(strong), time.Since(start))

	start = time.Now()
	nearby := cube.QueryRadius(37.5, -122.5, 10_000)
	fmt.Printf("Within 10 km: %d hits in %v\n", len(nearby), time.Since(start))

	start = time.Now()
	hits, err := cube.QueryMulti(obscube.MultiQuery{
		Signal: &obscube.SignalRange{Min: -80, Max: -60},
		Geo:    obscube.GeoRadius(37.5, -122.5, 20_000),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Multi (signal ∩ geo): %d hits in %v\n", len(hits), time.Since(start))

	stats := metrics.GetStats()
	fmt.Printf("Avg insert: %dns, avg query: %dns\n", stats.InsertAvgNanos, stats.QueryAvgNanos)
}
