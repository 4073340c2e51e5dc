// Package glean implements the Glean bulk indexing client: document and user
// wire types and the batched upload endpoints.
package glean

import (
	"github.com/suitesync/suitesync/internal/permindex"
)

// Document is the normalized unit submitted to the index, combining record
// content with resolved access-control data.
type Document struct {
	ID               string           `json:"id"`
	Datasource       string           `json:"datasource"`
	ObjectType       string           `json:"objectType"`
	Title            string           `json:"title"`
	ViewURL          string           `json:"viewURL"`
	Permissions      Permissions      `json:"permissions"`
	CustomProperties []CustomProperty `json:"customProperties"`
}

// Permissions is the document access block.
type Permissions struct {
	AllowedUsers                  []permindex.Principal `json:"allowedUsers"`
	AllowAnonymousAccess          bool                  `json:"allowAnonymousAccess"`
	AllowAllDatasourceUsersAccess bool                  `json:"allowAllDatasourceUsersAccess"`
}

// CustomProperty is one (name, value) pair carried on a document.
type CustomProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// User is one datasource user submitted to the user index.
type User struct {
	Email    string `json:"email"`
	IsActive string `json:"isActive"`
}

// documentUpload is the bulk document envelope. Every run submits exactly
// one full-replace batch, so the batch always declares itself first and last
// page and forces a restart of any in-progress upload for the datasource.
type documentUpload struct {
	UploadID           string     `json:"uploadId"`
	IsFirstPage        bool       `json:"isFirstPage"`
	IsLastPage         bool       `json:"isLastPage"`
	ForceRestartUpload bool       `json:"forceRestartUpload"`
	Datasource         string     `json:"datasource"`
	Documents          []Document `json:"documents"`
}

// userUpload is the bulk user envelope. The flags are strings, which is what
// the user indexing endpoint accepts.
type userUpload struct {
	UploadID                      string `json:"uploadId"`
	IsFirstPage                   string `json:"isFirstPage"`
	IsLastPage                    string `json:"isLastPage"`
	ForceRestartUpload            string `json:"forceRestartUpload"`
	Datasource                    string `json:"datasource"`
	Users                         []User `json:"users"`
	DisableStaleDataDeletionCheck string `json:"disableStaleDataDeletionCheck"`
}
