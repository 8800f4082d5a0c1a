package conv

import (
	"strings"

	"github.com/google/uuid"

	"github.com/signadot/dynpath/ir"
)

// AsUUID accepts strings in any form uuid.Parse does (dashed, braced,
// urn:uuid: prefixed or 32 hex digits) and 16 byte Bytes nodes.
func AsUUID(n *ir.Node) (uuid.UUID, bool) {
	if n == nil {
		return uuid.Nil, false
	}
	switch n.Type {
	case ir.StringType:
		u, err := uuid.Parse(strings.TrimSpace(n.String))
		if err != nil {
			return uuid.Nil, false
		}
		return u, true
	case ir.BytesType:
		u, err := uuid.FromBytes(n.Bytes)
		if err != nil {
			return uuid.Nil, false
		}
		return u, true
	}
	return uuid.Nil, false
}

func ToUUID(n *ir.Node, fallback uuid.UUID) uuid.UUID {
	u, ok := AsUUID(n)
	return or(u, ok, n, "uuid", fallback)
}

func UUID(n *ir.Node) uuid.UUID {
	return ToUUID(n, uuid.Nil)
}

// ToGUID is ToUUID rendered in canonical form, lower case hex with
// dashes.
func ToGUID(n *ir.Node, fallback string) string {
	u, ok := AsUUID(n)
	return or(u.String(), ok, n, "guid", fallback)
}

func GUID(n *ir.Node) string {
	return ToGUID(n, "")
}
