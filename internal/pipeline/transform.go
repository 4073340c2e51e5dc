package pipeline

import (
	"fmt"

	"github.com/suitesync/suitesync/internal/glean"
	"github.com/suitesync/suitesync/internal/netsuite"
	"github.com/suitesync/suitesync/internal/permindex"
)

// recordURLPaths maps record type tags to NetSuite UI path fragments.
// Transaction-like types not listed here fall back to the generic
// accounting path.
var recordURLPaths = map[string]string{
	"item":    "common/item/item.nl",
	"vendor":  "common/entity/vendor.nl",
	"custjob": "common/entity/custjob.nl",
}

func recordURLPath(objectType string) string {
	if p, ok := recordURLPaths[objectType]; ok {
		return p
	}

	return fmt.Sprintf("accounting/transactions/%s.nl", objectType)
}

// transformRecord maps one deduplicated record into its indexed document.
// Missing optional fields resolve to documented defaults; the transform
// itself never fails and performs no I/O.
func transformRecord(
	row netsuite.Row,
	def netsuite.QueryDef,
	accountID string,
	datasource string,
	idx permindex.Index,
	allPrincipals []permindex.Principal,
) glean.Document {
	var allowed []permindex.Principal
	if def.GloballyVisible {
		allowed = allPrincipals
	} else {
		// A record whose subsidiary has no grant is indexed with zero
		// explicit grantees.
		allowed = idx.Lookup(def.ObjectType, row.String("subsidiary"))
	}

	if allowed == nil {
		allowed = []permindex.Principal{}
	}

	primary := "unknown"
	if row.Has(def.Fields[0]) {
		primary = row.String(def.Fields[0])
	}

	internalID := "unknown"
	if row.Has("internalid") {
		internalID = row.String("internalid")
	}

	title := "Untitled"
	if row.Has(def.Fields[0]) {
		title = row.String(def.Fields[0])
	}

	props := make([]glean.CustomProperty, 0, len(def.Fields))
	for _, field := range def.Fields {
		props = append(props, glean.CustomProperty{Name: field, Value: row.String(field)})
	}

	return glean.Document{
		ID:         fmt.Sprintf("DOCNS_%s_%s", primary, internalID),
		Datasource: datasource,
		ObjectType: def.ObjectType,
		Title:      title,
		ViewURL: fmt.Sprintf("https://%s.app.netsuite.com/app/%s?id=%s",
			accountID, recordURLPath(def.ObjectType), row.String("internalid")),
		Permissions: glean.Permissions{
			AllowedUsers:                  allowed,
			AllowAnonymousAccess:          false,
			AllowAllDatasourceUsersAccess: true,
		},
		CustomProperties: props,
	}
}
