package ldap

import (
	"fmt"
	"strings"
)

// Entry is a directory entry: a DN and its attributes. Add and Compare
// requests carry one.
type Entry struct {
	DN         string
	Attributes []*EntryAttribute
}

// NewEntry returns an entry with the given DN and attributes built from the
// map. Map iteration order is not preserved; use AddAttribute when the order
// matters.
func NewEntry(dn string, attributes map[string][]string) *Entry {
	e := &Entry{DN: dn, Attributes: []*EntryAttribute{}}
	for name, values := range attributes {
		e.AddAttribute(name, values...)
	}
	return e
}

// AddAttribute appends values to the named attribute, creating it if needed.
func (e *Entry) AddAttribute(name string, values ...string) {
	for _, attr := range e.Attributes {
		if strings.EqualFold(attr.Name, name) {
			attr.Values = append(attr.Values, values...)
			return
		}
	}
	e.Attributes = append(e.Attributes, &EntryAttribute{Name: name, Values: append([]string{}, values...)})
}

func (e *Entry) GetAttributeValues(attribute string) []string {
	for _, attr := range e.Attributes {
		if strings.EqualFold(attr.Name, attribute) {
			return attr.Values
		}
	}
	return []string{}
}

func (e *Entry) GetAttributeValue(attribute string) string {
	values := e.GetAttributeValues(attribute)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (e *Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DN: %s\n", e.DN)
	for _, attr := range e.Attributes {
		fmt.Fprintf(&b, "%s: %s\n", attr.Name, attr.Values)
	}
	return b.String()
}

type EntryAttribute struct {
	Name   string
	Values []string
}

// PartialAttribute is an attribute description with zero or more values, as
// used by a modification.
type PartialAttribute struct {
	Type string
	Vals []string
}

type AttributeValueAssertion struct {
	AttributeDesc  string
	AssertionValue string
}
