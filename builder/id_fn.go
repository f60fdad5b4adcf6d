// SPDX-License-Identifier: MIT
// Package: confgraph/builder
//
// id_fn.go - vertex ID schemes for graph constructors.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn generates a vertex identifier from its zero-based node index.
// It must be pure and injective over the node range.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixedIDFn returns prefix + decimal index, e.g. "node0", "node1".
// The returned function panics if idx < 0.
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// AlphanumericIDFn returns idx in base 36, e.g. 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn returns idx in lowercase hexadecimal, e.g. 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// ExcelColumnIDFn returns spreadsheet-style names: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithPrefixedIDs sets the ID scheme to PrefixedIDFn(prefix).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix))
}

// WithHexIDs sets the ID scheme to HexIDFn.
func WithHexIDs() BuilderOption {
	return WithIDScheme(HexIDFn)
}

// IDSchemeByName resolves a scheme name used in configuration files:
// "decimal" (or ""), "hex", "base36", "excel", or "prefix:<p>".
func IDSchemeByName(name string) (IDFn, bool) {
	switch name {
	case "", "decimal":
		return DefaultIDFn, true
	case "hex":
		return HexIDFn, true
	case "base36":
		return AlphanumericIDFn, true
	case "excel":
		return ExcelColumnIDFn, true
	}
	if p, ok := strings.CutPrefix(name, "prefix:"); ok && p != "" {
		return PrefixedIDFn(p), true
	}

	return nil, false
}
