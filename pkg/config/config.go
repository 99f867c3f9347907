package config

import (
	"fmt"
	"strconv"
	"strings"
)

// SortMethod selects how imports are ordered inside a group
type SortMethod string

const (
	Alphabetical    SortMethod = "alphabetical"
	LengthAsc       SortMethod = "length-asc"
	LengthDesc      SortMethod = "length-desc"
	LengthThenAlpha SortMethod = "length-then-alpha"

	DefaultSortMethod = LengthDesc
)

// SortMethods lists every accepted sort method in documentation order
var SortMethods = []SortMethod{Alphabetical, LengthAsc, LengthDesc, LengthThenAlpha}

// ParseSortMethod reports whether s names a known sort method
func ParseSortMethod(s string) (SortMethod, bool) {
	m := SortMethod(strings.TrimSpace(s))
	for _, known := range SortMethods {
		if m == known {
			return m, true
		}
	}
	return DefaultSortMethod, false
}

// DefaultLocalPrefixes are the module path prefixes treated as local when nothing else is configured
var DefaultLocalPrefixes = []string{"@/", "./", "../", "~/", "#/", "*/", "src/"}

// Configuration is read once per invocation and never mutated afterwards
type Configuration struct {
	LocalPrefixes        []string   // ordered set of prefixes marking a module path as local
	TreatRelativeAsLocal bool       // whether "./" and "../" paths are always local
	SortMethod           SortMethod // ordering policy applied inside each group
	KeepHeaderComments   bool       // re-emit the trivia before the first import instead of dropping it
}

// Default returns the documented default configuration
func Default() Configuration {
	return Configuration{
		LocalPrefixes:        append([]string(nil), DefaultLocalPrefixes...),
		TreatRelativeAsLocal: true,
		SortMethod:           DefaultSortMethod,
	}
}

// Clone returns a copy that shares no memory with c
func (c Configuration) Clone() Configuration {
	c.LocalPrefixes = append([]string(nil), c.LocalPrefixes...)
	return c
}

// Normalized replaces an unknown sort method with the default and removes duplicate prefixes
func (c Configuration) Normalized() Configuration {
	c = c.Clone()
	if m, ok := ParseSortMethod(string(c.SortMethod)); ok {
		c.SortMethod = m
	} else {
		c.SortMethod = DefaultSortMethod
	}
	c.LocalPrefixes = dedupe(c.LocalPrefixes)
	return c
}

func (c Configuration) String() string {
	return fmt.Sprintf("localPrefixes=%s treatRelativeAsLocal=%s sortMethod=%s keepHeaderComments=%s",
		strings.Join(c.LocalPrefixes, ","),
		strconv.FormatBool(c.TreatRelativeAsLocal),
		c.SortMethod,
		strconv.FormatBool(c.KeepHeaderComments))
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
