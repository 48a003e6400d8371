package ldap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequests(t *testing.T) map[string]Request {
	t.Helper()
	search, err := NewSearchRequest("dc=example,dc=com", "(objectClass=*)", ScopeWholeSubtree)
	require.NoError(t, err)
	entry := NewEntry("cn=jdoe,ou=people,dc=example,dc=com", map[string][]string{"cn": {"jdoe"}})
	return map[string]Request{
		"Add":      NewAddRequest(entry),
		"Delete":   NewDeleteRequest("cn=jdoe,ou=people,dc=example,dc=com"),
		"Modify":   NewModifyRequest(NewModifyEntry("cn=jdoe,ou=people,dc=example,dc=com")),
		"ModifyDN": NewModifyDNRequest("cn=jdoe,ou=people,dc=example,dc=com", "ou=staff,dc=example,dc=com", "cn=john"),
		"Search":   search,
		"Compare":  NewCompareRequest(entry),
		"Extended": NewExtendedRequest(ExtendedOperationWhoAmI),
	}
}

func TestRequestControls(t *testing.T) {
	for name, req := range newTestRequests(t) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, req.OperationName())
			require.NotNil(t, req.Controls())
			assert.Len(t, req.Controls(), 0)

			paging := NewControlPaging(100)
			manage := NewControlManageDsaIT(true)
			custom := NewControlString("1.2.3.4", false, "x")
			req.AddControl(paging)
			req.AddControl(manage, nil, custom)

			assert.Equal(t, []Control{paging, manage, custom}, req.Controls())
		})
	}
}

func TestRequestZeroValueControls(t *testing.T) {
	for name, req := range map[string]Request{
		"Add":      &AddRequest{},
		"Delete":   &DeleteRequest{},
		"Modify":   &ModifyRequest{},
		"ModifyDN": &ModifyDNRequest{},
		"Search":   &SearchRequest{},
		"Compare":  &CompareRequest{},
		"Extended": &ExtendedRequest{},
	} {
		t.Run(name, func(t *testing.T) {
			require.NotNil(t, req.Controls())
			req.AddControl(NewControlSubtreeDelete())
			assert.Len(t, req.Controls(), 1)
		})
	}
}

func TestRequestDN(t *testing.T) {
	for name, req := range newTestRequests(t) {
		r, ok := req.(DNRequest)
		if name == "Extended" {
			assert.False(t, ok, "extended requests have no target entry")
			continue
		}
		require.True(t, ok, name)
		switch name {
		case "Search":
			assert.Equal(t, "dc=example,dc=com", r.DN())
		default:
			assert.Equal(t, "cn=jdoe,ou=people,dc=example,dc=com", r.DN(), name)
		}
	}

	assert.Equal(t, "", (&AddRequest{}).DN())
	assert.Equal(t, "", (&ModifyRequest{}).DN())
	assert.Equal(t, "", (&CompareRequest{}).DN())
}

func TestDeleteRequest(t *testing.T) {
	// not a valid DN; the server is the one to reject it
	del := NewDeleteRequest("not a dn")
	assert.Equal(t, "not a dn", del.DistinguishedName)

	del.DistinguishedName = "cn=other,dc=example,dc=com"
	assert.Equal(t, "cn=other,dc=example,dc=com", del.DN())
}

func TestModifyDNRequest(t *testing.T) {
	mdn := NewModifyDNRequest("cn=jdoe,ou=people,dc=example,dc=com", "", "cn=john")
	assert.Equal(t, "cn=jdoe,ou=people,dc=example,dc=com", mdn.DistinguishedName)
	assert.Equal(t, "", mdn.NewSuperior)
	assert.Equal(t, "cn=john", mdn.NewRDN)
	assert.True(t, mdn.DeleteOldRDN)

	mdn.DeleteOldRDN = false
	assert.False(t, mdn.DeleteOldRDN)
}

func TestPayloadsAreShared(t *testing.T) {
	entry := NewEntry("cn=jdoe,dc=example,dc=com", nil)
	add := NewAddRequest(entry)
	cmp := NewCompareRequest(entry)
	entry.AddAttribute("mail", "jdoe@example.com")

	assert.Same(t, entry, add.Entry)
	assert.Same(t, entry, cmp.Entry)
	assert.Equal(t, "jdoe@example.com", add.Entry.GetAttributeValue("mail"))

	mods := NewModifyEntry("cn=jdoe,dc=example,dc=com")
	mod := NewModifyRequest(mods)
	mods.Replace("mail", []string{"john@example.com"})
	assert.Same(t, mods, mod.Entry)
	assert.Len(t, mod.Entry.Changes, 1)
}

func TestModifyEntry(t *testing.T) {
	mods := NewModifyEntry("cn=jdoe,dc=example,dc=com")
	mods.Add("mail", []string{"a@example.com"})
	mods.Delete("telephoneNumber", nil)
	mods.Replace("sn", []string{"Doe"})
	mods.Increment("uidNumber", "1")

	require.Len(t, mods.Changes, 4)
	assert.Equal(t, []ModifyOperation{AddAttribute, DeleteAttribute, ReplaceAttribute, IncrementAttribute},
		[]ModifyOperation{mods.Changes[0].Operation, mods.Changes[1].Operation, mods.Changes[2].Operation, mods.Changes[3].Operation})
	assert.Equal(t, PartialAttribute{Type: "uidNumber", Vals: []string{"1"}}, mods.Changes[3].Modification)
	assert.Equal(t, "Replace", ReplaceAttribute.String())
	assert.Equal(t, "ModifyOperation(9)", ModifyOperation(9).String())
}

func TestCompareRequestAssertion(t *testing.T) {
	entry := &Entry{DN: "cn=jdoe,dc=example,dc=com"}
	cmp := NewCompareRequest(entry)
	_, ok := cmp.Assertion()
	assert.False(t, ok)

	entry.AddAttribute("sn", "Doe", "Smith")
	ava, ok := cmp.Assertion()
	require.True(t, ok)
	assert.Equal(t, AttributeValueAssertion{AttributeDesc: "sn", AssertionValue: "Doe"}, ava)
}

func TestEntryAttributes(t *testing.T) {
	entry := &Entry{DN: "cn=jdoe,dc=example,dc=com"}
	entry.AddAttribute("mail", "a@example.com")
	entry.AddAttribute("Mail", "b@example.com")
	entry.AddAttribute("cn", "jdoe")

	require.Len(t, entry.Attributes, 2)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, entry.GetAttributeValues("MAIL"))
	assert.Equal(t, "jdoe", entry.GetAttributeValue("cn"))
	assert.Equal(t, "", entry.GetAttributeValue("sn"))
	assert.Equal(t, []string{}, entry.GetAttributeValues("sn"))
	assert.Equal(t, "DN: cn=jdoe,dc=example,dc=com\nmail: [a@example.com b@example.com]\ncn: [jdoe]\n", entry.String())
}

func TestCompareRequestAssertionOrder(t *testing.T) {
	entry := &Entry{DN: "cn=jdoe,dc=example,dc=com"}
	entry.AddAttribute("mail", "jdoe@example.com")
	entry.AddAttribute("sn", "Doe")
	entry.AddAttribute("cn", "jdoe")

	ava, ok := NewCompareRequest(entry).Assertion()
	require.True(t, ok)
	assert.Equal(t, AttributeValueAssertion{AttributeDesc: "mail", AssertionValue: "jdoe@example.com"}, ava)
}
