// Package cd provides short names for the layout types that appear in nearly
// every widget signature. It is meant to be dot-imported.
package cd

import "gioui.org/layout"

type (
	C = layout.Context
	D = layout.Dimensions
)
