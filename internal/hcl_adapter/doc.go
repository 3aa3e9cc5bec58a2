// Package hcl_adapter loads recipe tables with HCL's parsers. JSON tables go
// through HCL's JSON syntax and `.hcl` tables through the native syntax; both
// produce the same format-agnostic config.Table.
package hcl_adapter
