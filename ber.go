package ldap

import ber "github.com/go-asn1-ber/asn1-ber"

func newSequence(msg string, children ...*ber.Packet) *ber.Packet {
	seq := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, msg)
	return addChildren(seq, children)
}

func addChildren(packet *ber.Packet, children []*ber.Packet) *ber.Packet {
	for _, child := range children {
		packet.AppendChild(child)
	}
	return packet
}

func newString(value, msg string) *ber.Packet {
	return ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, value, msg)
}

func newInteger(value interface{}, msg string) *ber.Packet {
	return ber.NewInteger(ber.ClassUniversal, ber.TypePrimitive, ber.TagInteger, value, msg)
}

func newBool(value bool, msg string) *ber.Packet {
	return ber.NewBoolean(ber.ClassUniversal, ber.TypePrimitive, ber.TagBoolean, value, msg)
}

// newOctets wraps raw bytes, or an already encoded value, in an OCTET STRING.
func newOctets(value []byte, msg string) *ber.Packet {
	p := ber.Encode(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, nil, msg)
	p.Value = value
	p.Data.Write(value)
	return p
}
