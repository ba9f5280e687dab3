package value

import (
	"encoding/json"
	"fmt"
	"net/netip"
)

// Kind identifies the concrete type stored in a Value. It doubles as the
// value-type tag lists declare for the values they accept.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindBytes represents a byte-string value.
	KindBytes
	// KindInt represents a signed integer value.
	KindInt
	// KindBool represents a boolean value.
	KindBool
	// KindIP represents an IP address value.
	KindIP
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindIP:
		return "ip"
	default:
		return "invalid"
	}
}

// Value is the tagged runtime value compiled predicates evaluate against.
//
// It is a small value type, cheap to copy. Compiled predicates are wired to
// a single kind at compile time, so accessors return an ok flag instead of
// an error; the compiler guarantees type-correct wiring.
type Value struct {
	kind Kind
	b    Bytes
	i    int64
	t    bool
	ip   netip.Addr
}

// BytesValue wraps a byte string.
func BytesValue(b Bytes) Value { return Value{kind: KindBytes, b: b} }

// IntValue wraps a signed integer.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// BoolValue wraps a boolean.
func BoolValue(t bool) Value { return Value{kind: KindBool, t: t} }

// IPValue wraps an IP address.
func IPValue(ip netip.Addr) Value { return Value{kind: KindIP, ip: ip} }

// Kind returns the kind tag.
func (v Value) Kind() Kind { return v.kind }

// AsBytes returns the byte string if the kind is KindBytes.
func (v Value) AsBytes() (Bytes, bool) {
	if v.kind != KindBytes {
		return Bytes{}, false
	}
	return v.b, true
}

// AsInt returns the integer if the kind is KindInt.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsBool returns the boolean if the kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.t, true
}

// AsIP returns the IP address if the kind is KindIP.
func (v Value) AsIP() (netip.Addr, bool) {
	if v.kind != KindIP {
		return netip.Addr{}, false
	}
	return v.ip, true
}

// Equal reports whether both values have the same kind and content.
// Byte strings compare by content only, never by representation.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBytes:
		return v.b.Equal(other.b)
	case KindInt:
		return v.i == other.i
	case KindBool:
		return v.t == other.t
	case KindIP:
		return v.ip == other.ip
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindBytes:
		return v.b.String()
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindBool:
		return fmt.Sprintf("%t", v.t)
	case KindIP:
		return v.ip.String()
	default:
		return "invalid"
	}
}

// valueJSON is the stable wire shape for Value.
//
// NOTE: This is also used for persistence; keep it stable.
type valueJSON struct {
	Kind Kind    `json:"k"`
	B    *Bytes  `json:"b,omitempty"`
	I    *int64  `json:"i,omitempty"`
	T    *bool   `json:"t,omitempty"`
	IP   *string `json:"ip,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	aux := valueJSON{Kind: v.kind}
	switch v.kind {
	case KindBytes:
		aux.B = &v.b
	case KindInt:
		aux.I = &v.i
	case KindBool:
		aux.T = &v.t
	case KindIP:
		s := v.ip.String()
		aux.IP = &s
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var aux valueJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch aux.Kind {
	case KindBytes:
		if aux.B == nil {
			*v = BytesValue(Bytes{})
			return nil
		}
		*v = BytesValue(*aux.B)
	case KindInt:
		if aux.I == nil {
			return fmt.Errorf("value: missing integer payload")
		}
		*v = IntValue(*aux.I)
	case KindBool:
		if aux.T == nil {
			return fmt.Errorf("value: missing boolean payload")
		}
		*v = BoolValue(*aux.T)
	case KindIP:
		if aux.IP == nil {
			return fmt.Errorf("value: missing ip payload")
		}
		ip, err := netip.ParseAddr(*aux.IP)
		if err != nil {
			return err
		}
		*v = IPValue(ip)
	default:
		return fmt.Errorf("value: unknown kind %d", aux.Kind)
	}
	return nil
}
