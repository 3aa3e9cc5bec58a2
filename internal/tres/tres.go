// Package tres writes Godot text resource documents (format 3).
package tres

import (
	"fmt"
	"strconv"
	"strings"
)

// Format is the text resource format version written in every header.
const Format = 3

// Value is an already encoded property value.
type Value string

// Null is the encoded null value.
const Null Value = "null"

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

// String encodes s as a quoted string literal.
func String(s string) Value {
	return Value(`"` + stringEscaper.Replace(s) + `"`)
}

// Int encodes an integer.
func Int(n int) Value {
	return Value(strconv.Itoa(n))
}

// Float encodes f in its shortest round-tripping form. Integral values carry
// no fractional part: the table's 5 and 5.0 both encode as 5.
func Float(f float64) Value {
	return Value(strconv.FormatFloat(f, 'f', -1, 64))
}

// Ref encodes a reference to the external resource with the given id.
func Ref(id int) Value {
	return Value(`ExtResource("` + strconv.Itoa(id) + `")`)
}

// OptionalRef encodes Ref(id) when ok, and Null otherwise.
func OptionalRef(id int, ok bool) Value {
	if !ok {
		return Null
	}
	return Ref(id)
}

// Array encodes an untyped array literal.
func Array(values ...Value) Value {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return Value("[" + strings.Join(parts, ", ") + "]")
}

// Ints encodes an array of integers.
func Ints(ns []int) Value {
	values := make([]Value, len(ns))
	for i, n := range ns {
		values[i] = Int(n)
	}
	return Array(values...)
}

// ExtResource declares one external resource of a document.
type ExtResource struct {
	Type string
	Path string
	ID   int
}

// Property is one `name = value` line of the [resource] section.
type Property struct {
	Name  string
	Value Value
}

// Document is a complete text resource.
type Document struct {
	Type         string
	ScriptClass  string
	LoadSteps    int
	ExtResources []ExtResource
	Properties   []Property
}

// Set appends a property.
func (d *Document) Set(name string, v Value) {
	d.Properties = append(d.Properties, Property{Name: name, Value: v})
}

// String renders the document. Output depends only on the document's fields.
func (d *Document) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[gd_resource type=%s", String(d.Type))
	if d.ScriptClass != "" {
		fmt.Fprintf(&b, " script_class=%s", String(d.ScriptClass))
	}
	fmt.Fprintf(&b, " load_steps=%d format=%d]\n\n", d.LoadSteps, Format)

	for _, ext := range d.ExtResources {
		fmt.Fprintf(&b, "[ext_resource type=%s path=%s id=%s]\n", String(ext.Type), String(ext.Path), String(strconv.Itoa(ext.ID)))
	}
	b.WriteString("\n[resource]\n")

	for _, p := range d.Properties {
		fmt.Fprintf(&b, "%s = %s\n", p.Name, p.Value)
	}
	return b.String()
}
