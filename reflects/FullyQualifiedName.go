package reflects

import (
	"strconv"
)

// FullyQualifiedName returns the type name prefixed with the quoted import path of its package.
// Unlike SymbolicName it stays unambiguous when two packages share a base name.
// Predeclared types have no package, their name stands alone.
func FullyQualifiedName(e interface{}) string {
	t := BaseTypeOf(e)

	if t.PkgPath() == `` {
		return t.Name()
	}

	return strconv.Quote(t.PkgPath()) + `.` + t.Name()
}
