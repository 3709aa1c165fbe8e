package main

import (
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"time"

	mw "github.com/bookfi/catalog-api/internal/api/middlewares"
	"github.com/bookfi/catalog-api/internal/api/router"
	"github.com/bookfi/catalog-api/internal/catalog"
	"github.com/bookfi/catalog-api/internal/newsletter"
	"github.com/bookfi/catalog-api/internal/search"
	"github.com/bookfi/catalog-api/internal/validate"
	"github.com/bookfi/catalog-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":3000"
	}

	for _, warn := range validate.HardeningWarnings(os.Getenv("APP_ENV")) {
		log.Printf("[startup] warning: %s", warn)
	}

	// The whole catalog is embedded; bad data is a packaging bug, so fail fast.
	store, err := catalog.Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("[startup] catalog loaded: %d books, %d authors, %d collections",
		len(store.Books()), len(store.Authors()), len(store.Collections()))

	eng := search.NewEngine(store)

	// Redis is optional. With it we get durable newsletter subscribers and
	// rate limiting; without it the in-memory placeholder store is used and
	// the limiters are simply not installed.
	rdb := connectRedis()

	var subs newsletter.Store
	if rdb != nil {
		subs = newsletter.NewRedisStore(rdb)
	} else {
		subs = newsletter.NewMemoryStore()
	}

	queryWhitelist := []string{
		// browse / filter / sort
		"category", "audience", "price", "min_rating", "sort",
		// search
		"q", "limit", "type",
		// collections
		"featured",
	}

	chain := []utils.Middleware{
		mw.Cors,
		mw.RequestID,
		mw.Recovery,
		mw.ResponseTimeMiddleware,
	}
	if rdb != nil {
		// limiters sit after request-id so blocked requests still carry headers
		tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		sw := mw.NewRedisSlidingWindow(rdb, 3000, 60*time.Minute, mw.PerIPKey("sw"))
		chain = append(chain, tb.Middleware, sw.Middleware)
	}
	chain = append(chain,
		mw.HPP(queryWhitelist),
		mw.BodySizeLimit,
		mw.Compression,
		mw.SecurityHeaders,
	)

	secureMux := utils.ApplyMiddleware(router.Router(store, eng, subs), chain...)

	server := &http.Server{
		Addr:              addr,
		Handler:           secureMux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY")
	if cert != "" && key != "" {
		server.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		log.Printf("[startup] serving HTTPS on %s", addr)
		err = server.ListenAndServeTLS(cert, key)
	} else {
		log.Printf("[startup] serving HTTP on %s", addr)
		err = server.ListenAndServe()
	}
	if err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

// connectRedis builds a client from UPSTASH_REDIS_URL or REDIS_ADDR, or
// returns nil when neither is configured. Misconfiguration is fatal;
// absence is not.
func connectRedis() *redis.Client {
	var rdb *redis.Client

	if url := os.Getenv("UPSTASH_REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url) // e.g. rediss://default:<token>@host:port
		if err != nil {
			log.Fatalf("invalid UPSTASH_REDIS_URL: %v", err)
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     os.Getenv("REDIS_USER"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	} else {
		return nil
	}

	// Fail fast if Redis is configured but unreachable
	if err := validate.PingRedis(rdb, 3*time.Second); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	log.Println("[startup] connected to Redis")
	return rdb
}
