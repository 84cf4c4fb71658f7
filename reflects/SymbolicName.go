package reflects

import (
	"fmt"
	"path/filepath"
)

// SymbolicName returns the type name prefixed with the package name, the way a developer refers to it.
func SymbolicName(e interface{}) string {
	t := BaseTypeOf(e)

	if t.PkgPath() == "" {
		return t.Name()
	}

	return fmt.Sprintf("%s.%s", filepath.Base(t.PkgPath()), t.Name())
}
