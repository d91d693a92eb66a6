// Package param renders parameterized header bodies, the kind used by
// the Content-Type and Content-Disposition headers: a primary value
// followed by semicolon-separated name=value parameters. Parameter
// values are escaped or, for filenames, expanded into RFC 2231
// continuation segments so the output is always 7-bit safe.
package param

import (
	"fmt"
	"mime"
	"sort"
	"strings"

	"github.com/zostay/go-mailfmt/header/field"
)

const (
	// Charset is the name of the charset parameter that may be present
	// in the Content-Type header.
	Charset = "charset"

	// Boundary is the name of the boundary parameter that may be present
	// in the Content-Type header.
	Boundary = "boundary"

	// Filename is the name of the filename parameter that may be present
	// in the Content-Disposition header.
	Filename = "filename"
)

// Value represents a parameterized header field body, such as is used in
// the Content-Type and Content-Disposition headers. A Value object is
// immutable: you cannot change it in place. However, a Modify() function
// is provided to perform transformation of a Value into a new Value.
type Value struct {
	v  string
	ps map[string]string
}

// Parse takes a header field body, parses it as a Value and returns it.
// If an error occurs in the process, it returns an error.
func Parse(v string) (*Value, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return nil, err
	}

	return &Value{mt, ps}, nil
}

// New creates a new parameterized header field body with no parameters.
func New(v string) *Value {
	return &Value{v, map[string]string{}}
}

// NewWithParams creates a new parameterized header field body with the
// given parameters.
func NewWithParams(v string, ps map[string]string) *Value {
	return &Value{v, ps}
}

// Modifier is a modification to apply to a Value when calling the
// Modify() function.
type Modifier func(*Value)

// Change is a Modifier that replaces the primary value of the Value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets a parameter with the given name on the
// Value.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[name] = value
	}
}

// Delete is a Modifier that removes the parameter with the given name
// from the Value.
func Delete(name string) Modifier {
	return func(pv *Value) {
		delete(pv.ps, name)
	}
}

// Modify clones a Value, applies the given modifications (if any) and
// returns the new Value. You can pass multiple changes to this function:
//
//	v, _ := param.Parse("attachment; filename=report.pdf")
//	nv := param.Modify(v, param.Change("inline"), param.Delete("filename"))
func Modify(pv *Value, changes ...Modifier) *Value {
	copy := pv.Clone()
	for _, change := range changes {
		change(copy)
	}
	return copy
}

// Value returns the primary value of the Value. This is the value before
// the first semicolon.
func (pv *Value) Value() string {
	return pv.v
}

// Parameters returns the parameters set on this Value as a map. Do not
// modify this map; make a copy first if you need to.
func (pv *Value) Parameters() map[string]string {
	return pv.ps
}

// Parameter returns the value of the parameter with the given name.
func (pv *Value) Parameter(k string) string {
	return pv.ps[k]
}

// Filename returns the value of the "filename" parameter. It is intended
// for use with the Content-Disposition header.
func (pv *Value) Filename() string {
	return pv.ps[Filename]
}

// Charset returns the value of the "charset" parameter. It is intended
// for use with the Content-Type header.
func (pv *Value) Charset() string {
	return pv.ps[Charset]
}

// Boundary returns the value of the "boundary" parameter. It is intended
// for use with the Content-Type header.
func (pv *Value) Boundary() string {
	return pv.ps[Boundary]
}

// String returns the serialized body: the primary value followed by each
// parameter as "; name=value", parameters in sorted name order so output
// is deterministic. Parameter values pass through EscapeArgument, except
// filename, which expands through the RFC 2231 continuation encoder into
// one or more segments written without quotes. The continuation encoding
// is already escape-safe and some receivers cannot parse a quoted
// segment.
func (pv *Value) String() string {
	pks := make([]string, 0, len(pv.ps))
	for k := range pv.ps {
		pks = append(pks, k)
	}
	sort.Strings(pks)

	parts := make([]string, 0, len(pv.ps)+1)
	parts = append(parts, pv.v)

	for _, k := range pks {
		if k == Filename {
			for _, p := range field.Continue(k, pv.ps[k], 0) {
				parts = append(parts, fmt.Sprintf("%s=%s", p.Name, p.Value))
			}
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", k, EscapeArgument(pv.ps[k])))
	}

	return strings.Join(parts, "; ")
}

// Bytes returns the serialized body as a slice of bytes.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	var copy Value
	copy.v = pv.v
	copy.ps = make(map[string]string, len(pv.ps))
	for k, v := range pv.ps {
		copy.ps[k] = v
	}
	return &copy
}
