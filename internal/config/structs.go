package config

import (
	"time"

	"github.com/suitesync/suitesync/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Sync      Sync
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Sync holds synchronization pipeline settings.
type Sync struct {
	Datasource            string // Glean datasource tag, defaults to "netsuite"
	RequestTimeoutSeconds int    // per-request timeout for both external APIs
	RunDeadlineMinutes    int    // overall deadline for one pipeline run
	Workers               int    // bounded worker pool size for record extraction
	PageRetries           int    // transport retry budget per page request
}

// RequestTimeout returns the per-request timeout as a duration.
func (s Sync) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// RunDeadline returns the overall run deadline as a duration.
func (s Sync) RunDeadline() time.Duration {
	return time.Duration(s.RunDeadlineMinutes) * time.Minute
}
