// Package stringish declares the type constraint shared by the generic
// decoding and segmentation code in this module: anything that behaves
// like a string for indexing and slicing purposes, namely []byte or
// string. It mirrors (and is kept separate from) the published
// github.com/clipperhouse/stringish module so that internal packages
// have no external dependency for this one constraint.
package stringish

// Interface is satisfied by string and []byte (and named types derived
// from them). Code written against Interface can index, slice and take
// the length of s without caring which concrete type it is.
type Interface interface {
	~string | ~[]byte
}
