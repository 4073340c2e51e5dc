// Package permindex builds the per-run access-control index from NetSuite
// role permission rows. The index is built once per run, before any document
// is transformed, and is read-only afterwards.
package permindex

import (
	"strings"

	"github.com/suitesync/suitesync/internal/netsuite"
)

// DatasourceUserID tags every principal with the datasource it belongs to.
const DatasourceUserID = "netsuite"

// Principal is an addressable identity granted visibility over a document.
// The JSON shape matches the Glean allowedUsers entry.
type Principal struct {
	Email            string `json:"email"`
	DatasourceUserID string `json:"datasourceUserId"`
}

// Index maps permission kind -> subsidiary id -> authorized principals.
type Index map[string]map[string][]Principal

// kindTranslations maps NetSuite permission names to record type tags.
// Unmapped names pass through unchanged.
var kindTranslations = map[string]string{
	"Bills":          "vendorbill",
	"Customers":      "custjob",
	"Estimate":       "estimate",
	"Invoice":        "custinvc",
	"Items":          "item",
	"Opportunity":    "opprtnty",
	"Purchase Order": "purchord",
	"Sales Order":    "salesord",
	"Vendors":        "vendor",
}

// TranslateKind maps a NetSuite permission name to its record type tag,
// defaulting to the raw name if unmapped.
func TranslateKind(name string) string {
	if tag, ok := kindTranslations[name]; ok {
		return tag
	}

	return name
}

// Build constructs the access index from permission grant rows. Rows missing
// the email, permission name or subsidiary restriction are unusable grants
// and are skipped. The role's subsidiary restriction is a comma separated
// list; the principal is inserted once per (kind, subsidiary) pair, and
// insertion is idempotent.
func Build(rows []netsuite.Row) Index {
	idx := make(Index)

	for _, row := range rows {
		email := row.String("email")
		kind := row.String("permission_name")
		subsidiaries := row.String("role_subsidiary_restriction")

		if email == "" || kind == "" || subsidiaries == "" {
			continue
		}

		kind = TranslateKind(kind)

		if idx[kind] == nil {
			idx[kind] = make(map[string][]Principal)
		}

		principal := Principal{Email: email, DatasourceUserID: DatasourceUserID}

		for _, sub := range strings.Split(subsidiaries, ",") {
			sub = strings.TrimSpace(sub)
			if sub == "" {
				continue
			}

			if !contains(idx[kind][sub], principal) {
				idx[kind][sub] = append(idx[kind][sub], principal)
			}
		}
	}

	return idx
}

// Lookup returns the principals authorized for the given kind and
// subsidiary, or nil when either is unknown. Records with no matching grant
// are indexed with zero explicit grantees rather than failing.
func (idx Index) Lookup(kind, subsidiary string) []Principal {
	return idx[kind][subsidiary]
}

// BuildAllPrincipals builds the flat global access list from active user
// rows, deduplicated by email. It serves record types that are visible to
// every active user regardless of subsidiary.
func BuildAllPrincipals(rows []netsuite.Row) []Principal {
	seen := make(map[string]struct{}, len(rows))
	out := make([]Principal, 0, len(rows))

	for _, row := range rows {
		email := row.String("email")
		if email == "" {
			continue
		}

		if _, ok := seen[email]; ok {
			continue
		}

		seen[email] = struct{}{}
		out = append(out, Principal{Email: email, DatasourceUserID: DatasourceUserID})
	}

	return out
}

func contains(principals []Principal, p Principal) bool {
	for _, existing := range principals {
		if existing == p {
			return true
		}
	}

	return false
}
