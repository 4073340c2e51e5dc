package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suitesync/suitesync/internal/netsuite"
	"github.com/suitesync/suitesync/internal/permindex"
)

func TestTransformRecord(t *testing.T) {
	def := netsuite.QueryDef{
		ObjectType: "custinvc",
		Fields:     []string{"invoicenumber", "duedate"},
	}

	idx := permindex.Build([]netsuite.Row{
		{"email": "a@x.com", "permission_name": "Invoice", "role_subsidiary_restriction": "1"},
	})

	row := netsuite.Row{
		"internalid":    "42",
		"invoicenumber": "INV-100",
		"duedate":       "2026-01-31",
		"subsidiary":    "1",
	}

	doc := transformRecord(row, def, "acme", "netsuite", idx, nil)

	assert.Equal(t, "DOCNS_INV-100_42", doc.ID)
	assert.Equal(t, "netsuite", doc.Datasource)
	assert.Equal(t, "custinvc", doc.ObjectType)
	assert.Equal(t, "INV-100", doc.Title)
	assert.Equal(t, "https://acme.app.netsuite.com/app/accounting/transactions/custinvc.nl?id=42", doc.ViewURL)
	assert.Equal(t, []permindex.Principal{{Email: "a@x.com", DatasourceUserID: "netsuite"}}, doc.Permissions.AllowedUsers)
	assert.False(t, doc.Permissions.AllowAnonymousAccess)
	assert.True(t, doc.Permissions.AllowAllDatasourceUsersAccess)
	assert.Equal(t, "INV-100", doc.CustomProperties[0].Value)
	assert.Equal(t, "duedate", doc.CustomProperties[1].Name)
}

func TestTransformRecordDefaults(t *testing.T) {
	def := netsuite.QueryDef{ObjectType: "salesord", Fields: []string{"nssonumber"}}

	doc := transformRecord(netsuite.Row{}, def, "acme", "netsuite", permindex.Index{}, nil)

	assert.Equal(t, "DOCNS_unknown_unknown", doc.ID)
	assert.Equal(t, "Untitled", doc.Title)
	assert.NotNil(t, doc.Permissions.AllowedUsers)
	assert.Empty(t, doc.Permissions.AllowedUsers)
	assert.Equal(t, "nssonumber", doc.CustomProperties[0].Name)
	assert.Equal(t, "", doc.CustomProperties[0].Value)
}

func TestTransformRecordGloballyVisible(t *testing.T) {
	def := netsuite.QueryDef{ObjectType: "item", Fields: []string{"nsitemname"}, GloballyVisible: true}
	all := []permindex.Principal{
		{Email: "a@x.com", DatasourceUserID: "netsuite"},
		{Email: "b@x.com", DatasourceUserID: "netsuite"},
	}

	row := netsuite.Row{"internalid": "7", "nsitemname": "Widget"}

	doc := transformRecord(row, def, "acme", "netsuite", permindex.Index{}, all)

	assert.Equal(t, all, doc.Permissions.AllowedUsers)
	assert.Equal(t, "https://acme.app.netsuite.com/app/common/item/item.nl?id=7", doc.ViewURL)
}

func TestRecordURLPath(t *testing.T) {
	tests := []struct {
		name       string
		objectType string
		want       string
	}{
		{name: "item", objectType: "item", want: "common/item/item.nl"},
		{name: "vendor", objectType: "vendor", want: "common/entity/vendor.nl"},
		{name: "custjob", objectType: "custjob", want: "common/entity/custjob.nl"},
		{name: "transaction fallback", objectType: "purchord", want: "accounting/transactions/purchord.nl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recordURLPath(tt.objectType))
		})
	}
}
