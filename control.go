package ldap

import (
	"fmt"

	ber "github.com/go-asn1-ber/asn1-ber"
)

const (
	ControlTypePaging         = "1.2.840.113556.1.4.319"
	ControlTypeManageDsaIT    = "2.16.840.1.113730.3.4.2"
	ControlTypeSubtreeDelete  = "1.2.840.113556.1.4.805"
	ControlTypeServerSideSort = "1.2.840.113556.1.4.473"
)

var ControlTypeMap = map[string]string{
	ControlTypePaging:         "Paging",
	ControlTypeManageDsaIT:    "Manage DSA IT",
	ControlTypeSubtreeDelete:  "Subtree Delete",
	ControlTypeServerSideSort: "Server Side Sort",
}

// Control is a protocol extension attached to a request. Requests only keep
// controls in order; Encode is what an executor puts on the wire.
type Control interface {
	GetControlType() string
	Encode() *ber.Packet
	String() string
}

func controlName(controlType string) string {
	if name, ok := ControlTypeMap[controlType]; ok {
		return name
	}
	return controlType
}

func newControlPacket(controlType string, criticality bool) *ber.Packet {
	packet := newSequence("Control",
		newString(controlType, "Control Type ("+controlName(controlType)+")"))
	if criticality {
		packet.AppendChild(newBool(criticality, "Criticality"))
	}
	return packet
}

// ControlString is a control with an arbitrary OID and an opaque value.
type ControlString struct {
	ControlType  string
	Criticality  bool
	ControlValue string
}

func NewControlString(controlType string, criticality bool, controlValue string) *ControlString {
	return &ControlString{
		ControlType:  controlType,
		Criticality:  criticality,
		ControlValue: controlValue,
	}
}

func (c *ControlString) GetControlType() string {
	return c.ControlType
}

func (c *ControlString) Encode() *ber.Packet {
	packet := newControlPacket(c.ControlType, c.Criticality)
	if c.ControlValue != "" {
		packet.AppendChild(newString(c.ControlValue, "Control Value"))
	}
	return packet
}

func (c *ControlString) String() string {
	return fmt.Sprintf("Control Type: %s (%q)  Criticality: %t  Control Value: %s", controlName(c.ControlType), c.ControlType, c.Criticality, c.ControlValue)
}

// ControlPaging is the simple paged results control (RFC 2696).
type ControlPaging struct {
	Criticality bool
	PagingSize  uint32
	Cookie      []byte
}

func NewControlPaging(pagingSize uint32) *ControlPaging {
	return &ControlPaging{PagingSize: pagingSize}
}

func (c *ControlPaging) GetControlType() string {
	return ControlTypePaging
}

func (c *ControlPaging) Encode() *ber.Packet {
	packet := newControlPacket(ControlTypePaging, c.Criticality)
	value := newOctets(nil, "Control Value (Paging)")
	value.AppendChild(newSequence("Search Control Value",
		newInteger(int64(c.PagingSize), "Paging Size"),
		newOctets(c.Cookie, "Cookie"),
	))
	packet.AppendChild(value)
	return packet
}

func (c *ControlPaging) String() string {
	return fmt.Sprintf(
		"Control Type: %s (%q)  Criticality: %t  PagingSize: %d  Cookie: %q",
		ControlTypeMap[ControlTypePaging],
		ControlTypePaging,
		c.Criticality,
		c.PagingSize,
		c.Cookie)
}

func (c *ControlPaging) SetCookie(cookie []byte) {
	c.Cookie = cookie
}

// ControlManageDsaIT asks the server to treat referral objects as ordinary
// entries (RFC 3296).
type ControlManageDsaIT struct {
	Criticality bool
}

func NewControlManageDsaIT(criticality bool) *ControlManageDsaIT {
	return &ControlManageDsaIT{Criticality: criticality}
}

func (c *ControlManageDsaIT) GetControlType() string {
	return ControlTypeManageDsaIT
}

func (c *ControlManageDsaIT) Encode() *ber.Packet {
	return newControlPacket(ControlTypeManageDsaIT, c.Criticality)
}

func (c *ControlManageDsaIT) String() string {
	return fmt.Sprintf("Control Type: %s (%q)  Criticality: %t", ControlTypeMap[ControlTypeManageDsaIT], ControlTypeManageDsaIT, c.Criticality)
}

// ControlSubtreeDelete lets a DeleteRequest remove an entry together with
// everything below it.
type ControlSubtreeDelete struct{}

func NewControlSubtreeDelete() *ControlSubtreeDelete {
	return &ControlSubtreeDelete{}
}

func (c *ControlSubtreeDelete) GetControlType() string {
	return ControlTypeSubtreeDelete
}

func (c *ControlSubtreeDelete) Encode() *ber.Packet {
	return newControlPacket(ControlTypeSubtreeDelete, false)
}

func (c *ControlSubtreeDelete) String() string {
	return fmt.Sprintf("Control Type: %s (%q)", ControlTypeMap[ControlTypeSubtreeDelete], ControlTypeSubtreeDelete)
}

// SortKey is one key of a server side sort control.
type SortKey struct {
	AttributeType string
	MatchingRule  string
	Reverse       bool
}

// ControlServerSideSort asks the server to sort search results (RFC 2891).
type ControlServerSideSort struct {
	Criticality bool
	SortKeys    []SortKey
}

func NewControlServerSideSort(keys ...SortKey) *ControlServerSideSort {
	return &ControlServerSideSort{SortKeys: keys}
}

func (c *ControlServerSideSort) GetControlType() string {
	return ControlTypeServerSideSort
}

func (c *ControlServerSideSort) Encode() *ber.Packet {
	packet := newControlPacket(ControlTypeServerSideSort, c.Criticality)
	keys := newSequence("SortKeyList")
	for _, key := range c.SortKeys {
		item := newSequence("SortKey", newString(key.AttributeType, "attributeType"))
		if key.MatchingRule != "" {
			item.AppendChild(ber.NewString(ber.ClassContext, ber.TypePrimitive, 0, key.MatchingRule, "orderingRule"))
		}
		if key.Reverse {
			item.AppendChild(ber.NewBoolean(ber.ClassContext, ber.TypePrimitive, 1, key.Reverse, "reverseOrder"))
		}
		keys.AppendChild(item)
	}
	value := newOctets(nil, "Control Value (Server Side Sort)")
	value.AppendChild(keys)
	packet.AppendChild(value)
	return packet
}

func (c *ControlServerSideSort) String() string {
	return fmt.Sprintf("Control Type: %s (%q)  Criticality: %t  SortKeys: %v", ControlTypeMap[ControlTypeServerSideSort], ControlTypeServerSideSort, c.Criticality, c.SortKeys)
}

// FindControl returns the first control of the given type, or nil.
func FindControl(controls []Control, controlType string) Control {
	for _, c := range controls {
		if c == nil {
			continue
		}
		if c.GetControlType() == controlType {
			return c
		}
	}
	return nil
}
