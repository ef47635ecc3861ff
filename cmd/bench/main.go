// Command bench runs a synthetic Zipf-distributed workload against any of
// the five eviction policies (optionally sharded), serves Prometheus
// metrics, and exposes an optional pprof endpoint. Grounded on the shardcache project's
// cmd/bench/main.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-polycache/polycache/arc"
	"github.com/go-polycache/polycache/cache"
	"github.com/go-polycache/polycache/lfu"
	"github.com/go-polycache/polycache/lru"
	"github.com/go-polycache/polycache/lruk"
	pmet "github.com/go-polycache/polycache/metrics/prom"
	"github.com/go-polycache/polycache/shard"
)

// buildCache assumes policyName has already been validated by main.
func buildCache(policyName string, capacity, shards int, metrics cache.Metrics) cache.Cache[string, string] {
	newInner := func(c int) cache.Cache[string, string] {
		switch policyName {
		case "lru":
			return lru.New[string, string](c, lru.Options[string, string]{Metrics: metrics})
		case "lru-k":
			return lruk.New[string, string](c, c*2, 2, lruk.Options[string, string]{Metrics: metrics})
		case "lfu":
			return lfu.New[string, string](c, lfu.Options[string, string]{Metrics: metrics})
		case "lfu-avg":
			return lfu.NewAvg[string, string](c, 16, lfu.Options[string, string]{Metrics: metrics})
		default: // "arc"
			return arc.New[string, string](c, arc.Options[string, string]{Metrics: metrics})
		}
	}

	if shards <= 0 {
		return newInner(capacity)
	}
	return shard.New[string, string](capacity, shard.Options{Shards: shards}, newInner)
}

func main() {
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		shards   = flag.Int("shards", 0, "number of shards (0=unsharded)")
		policy   = flag.String("policy", "lru", "eviction policy: lru | lru-k | lfu | lfu-avg | arc")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	switch *policy {
	case "lru", "lru-k", "lfu", "lfu-avg", "arc":
	default:
		log.Fatalf("unknown policy: %q (use lru, lru-k, lfu, lfu-avg, or arc)", *policy)
	}

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	metrics := pmet.New(nil, "polycache", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	c := buildCache(*policy, *capacity, *shards, metrics)

	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Put(k, "v"+strconv.Itoa(i))
	}

	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(workersN)
	for w := 0; w < workersN; w++ {
		go func(id int) {
			defer wg.Done()

			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					if _, ok := c.Get(keyByZipf()); ok {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					k := keyByZipf()
					c.Put(k, "v"+strconv.Itoa(localR.Int()))
				}
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	fmt.Printf("policy=%s cap=%d shards=%d workers=%d keys=%d dur=%v seed=%d\n",
		*policy, *capacity, *shards, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hitsN, missesN, hitRate)
}
