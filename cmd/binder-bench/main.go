package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	bindererrors "github.com/mirkobrombin/go-binder/v1/errors"
	"github.com/mirkobrombin/go-binder/v1/metrics"
	"github.com/mirkobrombin/go-binder/v1/presets"
)

var (
	concurrency = flag.Int("c", 50, "Number of concurrent workers")
	attempts    = flag.Int("n", 100000, "Total number of bind attempts")
	hold        = flag.Duration("hold", 0, "Time each handle is held before release")
	metricsAddr = flag.String("metrics", "", "Address to serve /metrics on (disabled when empty)")
	linger      = flag.Duration("linger", 0, "Keep serving metrics for this long after the run")
)

func validateFlags(concurrency, attempts int) error {
	if concurrency < 1 {
		return fmt.Errorf("-c must be at least 1, got %d", concurrency)
	}
	if attempts < concurrency {
		return fmt.Errorf("-n (%d) must be at least -c (%d)", attempts, concurrency)
	}
	return nil
}

func main() {
	flag.Parse()
	if err := validateFlags(*concurrency, *attempts); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	reg := metrics.NewRegistry()
	m := metrics.NewCollector(reg)
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			log.Printf("Serving metrics on %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, mux))
		}()
	}

	log.Printf("Starting contention run: %d attempts, %d workers, hold %v", *attempts, *concurrency, *hold)

	cell := presets.NewHotPath(uint64(0), "bench", m)

	var wins, contended, live, overlap atomic.Int64
	perWorker := *attempts / *concurrency

	start := time.Now()
	var g errgroup.Group
	for i := 0; i < *concurrency; i++ {
		g.Go(func() error {
			for j := 0; j < perWorker; j++ {
				h, err := cell.TryBind()
				if err != nil {
					if !bindererrors.AlreadyBound(err) {
						return err
					}
					contended.Add(1)
					continue
				}
				if live.Add(1) != 1 {
					overlap.Add(1)
				}
				*h.Get()++
				if *hold > 0 {
					time.Sleep(*hold)
				}
				live.Add(-1)
				h.Release()
				wins.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	elapsed := time.Since(start)

	total := wins.Load() + contended.Load()
	log.Printf("Finished in %v", elapsed)
	log.Printf("Throughput: %.2f attempts/s", float64(total)/elapsed.Seconds())
	log.Printf("Bound: %d, contended: %d (%.2f%%)", wins.Load(), contended.Load(), 100*float64(contended.Load())/float64(total))

	h := cell.Bind()
	final := h.Load()
	h.Release()
	if n := overlap.Load(); n > 0 {
		log.Fatalf("Single owner violated %d times", n)
	}
	if final != uint64(wins.Load()) {
		log.Fatalf("Lost updates: value %d, binds %d", final, wins.Load())
	}

	if *metricsAddr != "" && *linger > 0 {
		log.Printf("Lingering %v for scrapes", *linger)
		time.Sleep(*linger)
	}
}
