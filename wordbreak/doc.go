// Package wordbreak implements Unicode word boundaries:
// https://unicode.org/reports/tr29/#Word_Boundaries
package wordbreak
