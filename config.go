package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	DataDir    string

	MatchesFile string
	TeamsFile   string
	SeriesFile  string
	VenuesFile  string
}

// loadConfig reads the .env file (if any) and returns a populated Config.
func loadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		DataDir:    getEnv("DATA_DIR", "./data"),

		MatchesFile: getEnv("MATCHES_FILE", "cricbuzz_matches.csv"),
		TeamsFile:   getEnv("TEAMS_FILE", "teams.csv"),
		SeriesFile:  getEnv("SERIES_FILE", "series.csv"),
		VenuesFile:  getEnv("VENUES_FILE", "venues.csv"),
	}
}

func (c *Config) matchesPath() string { return filepath.Join(c.DataDir, c.MatchesFile) }
func (c *Config) teamsPath() string   { return filepath.Join(c.DataDir, c.TeamsFile) }
func (c *Config) seriesPath() string  { return filepath.Join(c.DataDir, c.SeriesFile) }
func (c *Config) venuesPath() string  { return filepath.Join(c.DataDir, c.VenuesFile) }

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
