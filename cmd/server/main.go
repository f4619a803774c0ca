package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"toll-route-service/internal/adapters/cache"
	"toll-route-service/internal/adapters/geocode"
	"toll-route-service/internal/adapters/rates"
	"toll-route-service/internal/adapters/routing"
	"toll-route-service/internal/api"
	"toll-route-service/internal/config"
	"toll-route-service/internal/platform/db"
	"toll-route-service/internal/ports"
	"toll-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (HERE, rates endpoint, address cache backend)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	pricingPath := config.Get("PRICING_CONFIG", "")
	ratesURL := config.Get("RATES_URL", "")

	hereKey := os.Getenv("HERE_API_KEY")
	if strings.TrimSpace(hereKey) == "" {
		log.Fatal("HERE_API_KEY is required")
	}

	pricing, err := config.LoadPricing(pricingPath)
	if err != nil {
		log.Fatal(err)
	}

	addressCache, closeCache, err := openAddressCache()
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	provider, err := routing.NewHERERoutingProvider(hereKey)
	if err != nil {
		log.Fatal(err)
	}

	geocoder, err := geocode.NewHEREGeocoder(hereKey)
	if err != nil {
		log.Fatal(err)
	}
	cachedGeocoder := geocode.NewCachedGeocoder(geocoder, addressCache)

	resolver := services.NewGeocodeResolver(cachedGeocoder)
	exchange := services.NewExchangeRates(rates.NewHTTPRateSource(ratesURL))
	engine := services.NewTollEngine(exchange, services.NewVignetteTable(pricing), services.CompileContracts(pricing.Contracts))
	planner := services.NewRoutePlanner(provider, engine)
	viaSearch := services.NewViaSearch(provider)
	localitySearch := services.NewLocalitySearch(resolver)

	router := api.NewRouter(planner, engine, viaSearch, localitySearch)

	// Timeouts are tuned for candidate searches that fan out to the routing
	// provider (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openAddressCache selects the cache backend: local SQLite by default, shared
// Postgres or Redis when configured.
func openAddressCache() (ports.AddressCache, func(), error) {
	backend := config.Get("CACHE_BACKEND", "sqlite")

	switch backend {
	case "sqlite":
		dbPath := config.Get("DB_PATH", "data/app.db")
		conn, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
		}
		if err := conn.Ping(); err != nil {
			return nil, nil, fmt.Errorf("verify sqlite connection to %q: %w", dbPath, err)
		}
		if err := cache.InitSqliteSchema(conn); err != nil {
			return nil, nil, err
		}
		return cache.NewSqliteAddressCache(conn), func() { _ = conn.Close() }, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for CACHE_BACKEND=postgres")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewSQLAddressCache(conn), func() { _ = conn.Close() }, nil

	case "redis":
		addr := config.Get("REDIS_ADDR", "localhost:6379")
		client := redis.NewClient(&redis.Options{Addr: addr})
		return cache.NewRedisAddressCache(client), func() { _ = client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown CACHE_BACKEND %q", backend)
	}
}
