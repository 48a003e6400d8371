package ldap

import "fmt"

type ModifyOperation int

const (
	AddAttribute       ModifyOperation = 0
	DeleteAttribute    ModifyOperation = 1
	ReplaceAttribute   ModifyOperation = 2
	IncrementAttribute ModifyOperation = 3
)

var ModifyOperationMap = map[ModifyOperation]string{
	AddAttribute:       "Add",
	DeleteAttribute:    "Delete",
	ReplaceAttribute:   "Replace",
	IncrementAttribute: "Increment",
}

func (op ModifyOperation) String() string {
	if name, ok := ModifyOperationMap[op]; ok {
		return name
	}
	return fmt.Sprintf("ModifyOperation(%d)", int(op))
}

// Change is a single modification applied to an entry.
type Change struct {
	Operation    ModifyOperation
	Modification PartialAttribute
}

// ModifyEntry names an entry and the ordered list of changes to apply to it.
type ModifyEntry struct {
	DN      string
	Changes []Change
}

func NewModifyEntry(dn string) *ModifyEntry {
	return &ModifyEntry{DN: dn, Changes: []Change{}}
}

func (m *ModifyEntry) appendChange(op ModifyOperation, attrType string, attrVals []string) {
	m.Changes = append(m.Changes, Change{
		Operation:    op,
		Modification: PartialAttribute{Type: attrType, Vals: attrVals},
	})
}

func (m *ModifyEntry) Add(attrType string, attrVals []string) {
	m.appendChange(AddAttribute, attrType, attrVals)
}

func (m *ModifyEntry) Delete(attrType string, attrVals []string) {
	m.appendChange(DeleteAttribute, attrType, attrVals)
}

func (m *ModifyEntry) Replace(attrType string, attrVals []string) {
	m.appendChange(ReplaceAttribute, attrType, attrVals)
}

// Increment adds value to every value of an integer attribute (RFC 4525).
func (m *ModifyEntry) Increment(attrType string, value string) {
	m.appendChange(IncrementAttribute, attrType, []string{value})
}

// ModifyRequest applies a ModifyEntry. The entry is shared with the caller,
// not copied.
type ModifyRequest struct {
	requestControls

	Entry *ModifyEntry
}

func NewModifyRequest(entry *ModifyEntry) *ModifyRequest {
	return &ModifyRequest{
		requestControls: newRequestControls(),
		Entry:           entry,
	}
}

func (mod *ModifyRequest) DN() string {
	if mod.Entry == nil {
		return ""
	}
	return mod.Entry.DN
}

func (mod *ModifyRequest) OperationName() string {
	return "Modify"
}
