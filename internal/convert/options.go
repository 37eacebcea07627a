package convert

import (
	"sheet2tree/internal/header"
	"sheet2tree/internal/tree"
)

// Options controls a conversion.
type Options struct {
	// Policy decides how blank cells are written.
	Policy tree.EmptyPolicy

	// KeySeparator is placed between identity values when building the row
	// key. Empty concatenates them directly.
	KeySeparator string

	// Header configures header parsing (e.g. the legacy list marker).
	Header []header.Option
}

func (o Options) policy() tree.EmptyPolicy {
	if o.Policy == "" {
		return tree.DefaultPolicy
	}

	return o.Policy
}
