package ldap

// ModifyDNRequest renames an entry and optionally moves it under a new
// parent.
//
//	ModifyDNRequest ::= [APPLICATION 12] SEQUENCE {
//	     entry           LDAPDN,
//	     newrdn          RelativeLDAPDN,
//	     deleteoldrdn    BOOLEAN,
//	     newSuperior     [0] LDAPDN OPTIONAL }
type ModifyDNRequest struct {
	requestControls

	DistinguishedName string
	// NewSuperior is the new parent; empty keeps the current one.
	NewSuperior  string
	NewRDN       string
	DeleteOldRDN bool
}

// NewModifyDNRequest returns a request with DeleteOldRDN set.
func NewModifyDNRequest(dn, newSuperior, newRDN string) *ModifyDNRequest {
	return &ModifyDNRequest{
		requestControls:   newRequestControls(),
		DistinguishedName: dn,
		NewSuperior:       newSuperior,
		NewRDN:            newRDN,
		DeleteOldRDN:      true,
	}
}

func (mdn *ModifyDNRequest) DN() string {
	return mdn.DistinguishedName
}

func (mdn *ModifyDNRequest) OperationName() string {
	return "ModifyDN"
}
