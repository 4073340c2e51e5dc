// Package main provides the entry point for the SuiteSync service.
// It runs a web server using the Fiber framework that stores NetSuite and
// Glean credentials and triggers full-replace synchronization runs: paginated
// SuiteQL extraction of nine record types, per-record access-control
// resolution, transformation into Glean documents, and one bulk upload per
// run. The application uses gorm for credential persistence.
package main
