package permindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suitesync/suitesync/internal/netsuite"
)

func TestTranslateKind(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bills", in: "Bills", want: "vendorbill"},
		{name: "customers", in: "Customers", want: "custjob"},
		{name: "purchase order", in: "Purchase Order", want: "purchord"},
		{name: "unmapped passes through", in: "Time Tracking", want: "Time Tracking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateKind(tt.in))
		})
	}
}

func TestBuild(t *testing.T) {
	rows := []netsuite.Row{
		{"email": "a@x.com", "permission_name": "Bills", "role_subsidiary_restriction": "1,2"},
		{"email": "b@x.com", "permission_name": "Bills", "role_subsidiary_restriction": "2"},
	}

	idx := Build(rows)

	require.Contains(t, idx, "vendorbill")
	assert.Equal(t, []Principal{{Email: "a@x.com", DatasourceUserID: "netsuite"}}, idx.Lookup("vendorbill", "1"))
	assert.Equal(t, []Principal{
		{Email: "a@x.com", DatasourceUserID: "netsuite"},
		{Email: "b@x.com", DatasourceUserID: "netsuite"},
	}, idx.Lookup("vendorbill", "2"))
}

func TestBuildSkipsUnusableGrants(t *testing.T) {
	rows := []netsuite.Row{
		{"permission_name": "Bills", "role_subsidiary_restriction": "1"},
		{"email": "a@x.com", "role_subsidiary_restriction": "1"},
		{"email": "a@x.com", "permission_name": "Bills"},
		{"email": "a@x.com", "permission_name": "Bills", "role_subsidiary_restriction": " , "},
	}

	assert.Empty(t, Build(rows).Lookup("vendorbill", "1"))
}

func TestBuildIsIdempotentPerGrant(t *testing.T) {
	rows := []netsuite.Row{
		{"email": "a@x.com", "permission_name": "Invoice", "role_subsidiary_restriction": "3, 3"},
		{"email": "a@x.com", "permission_name": "Invoice", "role_subsidiary_restriction": "3"},
	}

	idx := Build(rows)

	assert.Len(t, idx.Lookup("custinvc", "3"), 1)
}

func TestBuildTrimsSubsidiaryWhitespace(t *testing.T) {
	rows := []netsuite.Row{
		{"email": "a@x.com", "permission_name": "Vendors", "role_subsidiary_restriction": " 1 , 2 "},
	}

	idx := Build(rows)

	assert.Len(t, idx.Lookup("vendor", "1"), 1)
	assert.Len(t, idx.Lookup("vendor", "2"), 1)
}

func TestLookupUnknown(t *testing.T) {
	idx := Build(nil)

	assert.Nil(t, idx.Lookup("vendorbill", "1"))
}

func TestBuildAllPrincipals(t *testing.T) {
	rows := []netsuite.Row{
		{"email": "a@x.com"},
		{"email": "b@x.com"},
		{"email": "a@x.com"},
		{"email": ""},
		{"name": "no email column"},
	}

	got := BuildAllPrincipals(rows)

	assert.Equal(t, []Principal{
		{Email: "a@x.com", DatasourceUserID: "netsuite"},
		{Email: "b@x.com", DatasourceUserID: "netsuite"},
	}, got)
}
