// Package models contains database model definitions.
package models

// Credential represents one stored auth bundle for both external systems:
// the NetSuite token-based auth material and the Glean indexing token.
type Credential struct {
	ID uint64 `gorm:"primaryKey"`

	GleanAccount string
	GleanToken   string

	NetSuiteAccountID      string
	NetSuiteConsumerKey    string
	NetSuiteConsumerSecret string
	NetSuiteToken          string
	NetSuiteTokenSecret    string
}
