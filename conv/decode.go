package conv

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/dynpath/ir"
)

// Decode stores n in the value pointed to by p with the rules of
// encoding/json. Unlike the To functions it reports failure.
func Decode(n *ir.Node, p any) error {
	if n == nil {
		return fmt.Errorf("decode: %w", ir.ErrNotFound)
	}
	d, err := n.MarshalJSON()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(d, p); err != nil {
		return fmt.Errorf("decode %s: %w", n.KPath(), err)
	}
	return nil
}
