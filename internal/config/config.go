package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type LocalStore struct {
	Dir string
}

type Catalog struct {
	BaseURL string
	Timeout time.Duration
}

type Hero struct {
	Interval time.Duration
	Slots    int
}

type Feed struct {
	PopularLimit  int
	GenreRowLimit int
}

type Config struct {
	HTTP    HTTPServer
	Redis   RedisCache
	Store   LocalStore
	Catalog Catalog
	Hero    Hero
	Feed    Feed
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:    *newHTTP(),
		Redis:   *newRedis(),
		Store:   *newLocalStore(),
		Catalog: *newCatalog(),
		Hero:    *newHero(),
		Feed:    *newFeed(),
	}

	log.Printf("%s engine config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newLocalStore() *LocalStore {
	return &LocalStore{
		Dir: getenv("STORE_DIR", "./data/store"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		BaseURL: getenv("CATALOG_BASE_URL", "http://localhost:8000"),
		Timeout: getenvDuration("CATALOG_TIMEOUT", 15*time.Second),
	}
}

func newHero() *Hero {
	return &Hero{
		Interval: getenvDuration("HERO_INTERVAL", 6*time.Second),
		Slots:    getenvInt("HERO_SLOTS", 5),
	}
}

func newFeed() *Feed {
	return &Feed{
		PopularLimit:  getenvInt("FEED_POPULAR_LIMIT", 15),
		GenreRowLimit: getenvInt("FEED_GENRE_ROW_LIMIT", 10),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		fmt.Printf("%s %s malformed. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	return n
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		fmt.Printf("%s %s malformed. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return d
}
