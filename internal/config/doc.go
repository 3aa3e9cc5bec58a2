// Package config defines the format-agnostic recipe table model and the
// Loader interface used to read it.
//
// The `config.Table` is the single input of the compiler. Concrete loaders,
// such as the HCL/JSON one, live in separate packages.
package config
