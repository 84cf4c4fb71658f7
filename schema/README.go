/*
Package schema lets a program declare type metadata explicitly and consult it at runtime.

A Schema is an immutable, named list of fields, each field optionally guarded by value
constraints. Records made from a schema keep their values in an internal key-value store
that is only reachable through the accessor methods, so every write passes the schema's
constraints. Schemas are either built by hand with New, or derived from struct tags with
FromStruct. The package level registry binds schemas to Go types, one registration per
type, typically during program initialization.
*/
package schema
