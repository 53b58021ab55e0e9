/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package core defines the primitive PDF object types that the catalog
// resolver walks: dictionaries, arrays, names, strings, numbers and
// indirect references. It does not parse PDF byte streams or decode
// content streams -- that is the PDF Parser collaborator's job. The core
// only consumes the object graph the parser hands back, through the
// Resolver interface.
package core

import (
	"fmt"
	"strings"
)

// PdfObject is the interface every primitive PDF object value implements.
type PdfObject interface {
	// String returns a debug representation of the primitive.
	String() string
}

// PdfObjectBool represents the primitive PDF boolean object.
type PdfObjectBool bool

// PdfObjectInteger represents the primitive PDF integer numerical object.
type PdfObjectInteger int64

// PdfObjectFloat represents the primitive PDF floating point numerical object.
type PdfObjectFloat float64

// PdfObjectString represents the primitive PDF string object. PDF strings
// are raw bytes with no mandated encoding; callers that need text must
// decode them explicitly (see catalog.DecodeText).
type PdfObjectString struct {
	val string
}

// PdfObjectName represents the primitive PDF name object, e.g. /Outlines.
type PdfObjectName string

// PdfObjectArray represents the primitive PDF array object.
type PdfObjectArray struct {
	vec []PdfObject
}

// PdfObjectDictionary represents the primitive PDF dictionary object.
type PdfObjectDictionary struct {
	dict map[PdfObjectName]PdfObject
	keys []PdfObjectName
}

// PdfObjectNull represents the primitive PDF null object.
type PdfObjectNull struct{}

// PdfObjectReference represents an indirect reference to another object in
// the document's object graph (e.g. "12 0 R"). Resolve requires a Resolver,
// supplied by the PDF Parser collaborator.
type PdfObjectReference struct {
	ObjectNumber     int64
	GenerationNumber int64
}

// PdfIndirectObject wraps a direct PdfObject with the object number it was
// stored under. Catalog nodes (outline items, page dicts, annotation
// dicts) typically arrive as indirect objects.
type PdfIndirectObject struct {
	PdfObjectReference
	PdfObject
}

// Resolver resolves indirect references into the object they point to.
// It is implemented by the PDF Parser collaborator; the catalog resolver
// never constructs one, only consumes it.
type Resolver interface {
	Resolve(ref *PdfObjectReference) (PdfObject, error)
}

// MakeDict creates and returns an empty PdfObjectDictionary.
func MakeDict() *PdfObjectDictionary {
	return &PdfObjectDictionary{
		dict: map[PdfObjectName]PdfObject{},
		keys: []PdfObjectName{},
	}
}

// MakeName creates a PdfObjectName from a string.
func MakeName(s string) *PdfObjectName {
	name := PdfObjectName(s)
	return &name
}

// MakeInteger creates a PdfObjectInteger from an int64.
func MakeInteger(val int64) *PdfObjectInteger {
	num := PdfObjectInteger(val)
	return &num
}

// MakeFloat creates a PdfObjectFloat from a float64.
func MakeFloat(val float64) *PdfObjectFloat {
	num := PdfObjectFloat(val)
	return &num
}

// MakeBool creates a PdfObjectBool from a bool value.
func MakeBool(val bool) *PdfObjectBool {
	bval := PdfObjectBool(val)
	return &bval
}

// MakeArray creates a PdfObjectArray from a list of PdfObjects.
func MakeArray(objects ...PdfObject) *PdfObjectArray {
	return &PdfObjectArray{vec: append([]PdfObject{}, objects...)}
}

// MakeString creates a PdfObjectString from raw bytes (no encoding applied).
func MakeString(s string) *PdfObjectString {
	return &PdfObjectString{val: s}
}

// MakeStringFromBytes creates a PdfObjectString from a byte slice.
func MakeStringFromBytes(data []byte) *PdfObjectString {
	return MakeString(string(data))
}

// MakeNull creates a PdfObjectNull.
func MakeNull() *PdfObjectNull {
	return &PdfObjectNull{}
}

// MakeIndirectObject wraps obj as an indirect object under ref.
func MakeIndirectObject(ref PdfObjectReference, obj PdfObject) *PdfIndirectObject {
	return &PdfIndirectObject{PdfObjectReference: ref, PdfObject: obj}
}

// String returns "true" or "false".
func (b *PdfObjectBool) String() string {
	if *b {
		return "true"
	}
	return "false"
}

func (i *PdfObjectInteger) String() string { return fmt.Sprintf("%d", *i) }

func (f *PdfObjectFloat) String() string { return fmt.Sprintf("%f", *f) }

// String returns the raw byte content as a Go string (not decoded text).
func (s *PdfObjectString) String() string { return s.val }

// Str is an alias for String, kept to mirror the distinction between debug
// output and raw content used elsewhere in the object model.
func (s *PdfObjectString) Str() string { return s.val }

// Bytes returns the PdfObjectString content as a byte slice.
func (s *PdfObjectString) Bytes() []byte { return []byte(s.val) }

func (n *PdfObjectName) String() string { return string(*n) }

// Elements returns the array's PdfObject elements.
func (a *PdfObjectArray) Elements() []PdfObject {
	if a == nil {
		return nil
	}
	return a.vec
}

// Len returns the number of elements in the array.
func (a *PdfObjectArray) Len() int {
	if a == nil {
		return 0
	}
	return len(a.vec)
}

// Get returns the i-th element of the array or nil if out of bounds.
func (a *PdfObjectArray) Get(i int) PdfObject {
	if a == nil || i < 0 || i >= len(a.vec) {
		return nil
	}
	return a.vec[i]
}

// Append appends PdfObject(s) to the array.
func (a *PdfObjectArray) Append(objects ...PdfObject) {
	a.vec = append(a.vec, objects...)
}

// String returns a debug description of the array.
func (a *PdfObjectArray) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, o := range a.Elements() {
		b.WriteString(o.String())
		if i < a.Len()-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

// ToFloat64Slice returns the array elements as float64, erroring on any
// element that is not a number.
func (a *PdfObjectArray) ToFloat64Slice() ([]float64, error) {
	vals := make([]float64, 0, a.Len())
	for _, obj := range a.Elements() {
		v, err := GetNumberAsFloat(obj)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// Set sets the dictionary's key -> val mapping, overwriting if already set.
func (d *PdfObjectDictionary) Set(key PdfObjectName, val PdfObject) {
	if _, found := d.dict[key]; !found {
		d.keys = append(d.keys, key)
	}
	d.dict[key] = val
}

// Get returns the PdfObject for key, or nil if not set.
func (d *PdfObjectDictionary) Get(key PdfObjectName) PdfObject {
	if d == nil {
		return nil
	}
	return d.dict[key]
}

// Keys returns the dictionary's keys in insertion order.
func (d *PdfObjectDictionary) Keys() []PdfObjectName {
	if d == nil {
		return nil
	}
	return d.keys
}

// String returns a debug description of the dictionary.
func (d *PdfObjectDictionary) String() string {
	var b strings.Builder
	b.WriteString("Dict(")
	for _, k := range d.keys {
		b.WriteString(`"` + k.String() + `": `)
		b.WriteString(d.dict[k].String())
		b.WriteString(", ")
	}
	b.WriteString(")")
	return b.String()
}

// String returns a debug description of the reference.
func (ref *PdfObjectReference) String() string {
	return fmt.Sprintf("Ref(%d %d)", ref.ObjectNumber, ref.GenerationNumber)
}

// Resolve resolves the reference via r.
func (ref *PdfObjectReference) Resolve(r Resolver) (PdfObject, error) {
	if r == nil {
		return MakeNull(), nil
	}
	return r.Resolve(ref)
}

func (n *PdfObjectNull) String() string { return "null" }

func (ind *PdfIndirectObject) String() string {
	return fmt.Sprintf("IObject:%d", ind.ObjectNumber)
}

// GetNumberAsFloat returns obj's numeric value as a float64, or an error if
// obj isn't a PdfObjectInteger or PdfObjectFloat.
func GetNumberAsFloat(obj PdfObject) (float64, error) {
	switch t := obj.(type) {
	case *PdfObjectFloat:
		return float64(*t), nil
	case *PdfObjectInteger:
		return float64(*t), nil
	}
	return 0, fmt.Errorf("object of type %T is not a number", obj)
}

// GetNumberAsInt64 returns obj's numeric value as an int64, tolerating
// numbers stored as floats (some PDF generators do this for integers).
func GetNumberAsInt64(obj PdfObject) (int64, error) {
	switch t := obj.(type) {
	case *PdfObjectFloat:
		return int64(*t), nil
	case *PdfObjectInteger:
		return int64(*t), nil
	}
	return 0, fmt.Errorf("object of type %T is not a number", obj)
}

// GetDict type-asserts obj (resolving one level of indirection) to a
// *PdfObjectDictionary.
func GetDict(obj PdfObject) (*PdfObjectDictionary, bool) {
	if ind, ok := obj.(*PdfIndirectObject); ok {
		obj = ind.PdfObject
	}
	d, ok := obj.(*PdfObjectDictionary)
	return d, ok
}

// GetArray type-asserts obj (resolving one level of indirection) to a
// *PdfObjectArray.
func GetArray(obj PdfObject) (*PdfObjectArray, bool) {
	if ind, ok := obj.(*PdfIndirectObject); ok {
		obj = ind.PdfObject
	}
	arr, ok := obj.(*PdfObjectArray)
	return arr, ok
}

// GetName type-asserts obj to a *PdfObjectName.
func GetName(obj PdfObject) (*PdfObjectName, bool) {
	name, ok := obj.(*PdfObjectName)
	return name, ok
}

// GetString type-asserts obj to a *PdfObjectString.
func GetString(obj PdfObject) (*PdfObjectString, bool) {
	s, ok := obj.(*PdfObjectString)
	return s, ok
}
