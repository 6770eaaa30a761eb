// Package uax29 is the root of a module providing Unicode word
// segmentation per UAX #29, §4.1.
//
// See the wordbreak package for the public API and usage.
//
// For more information on the UAX #29 spec: https://unicode.org/reports/tr29/#Word_Boundaries
package uax29
