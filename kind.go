package bmpview

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterKind identifies one of the fixed image filters.
type FilterKind uint8

// Filter kinds. Identity is the unfiltered source image.
const (
	Identity FilterKind = iota
	Grayscale
	Sepia
	Reflect
	Blur
	EdgeDetect

	// KindCount is the number of filter kinds.
	KindCount
)

const unknownStr = "Unknown"

var kindNames = [KindCount]string{
	Identity:   "Identity",
	Grayscale:  "Grayscale",
	Sepia:      "Sepia",
	Reflect:    "Reflect",
	Blur:       "Blur",
	EdgeDetect: "EdgeDetect",
}

// titleSuffix is the lowercase label shown in the window title.
var titleSuffix = [KindCount]string{
	Grayscale:  "grayscale",
	Sepia:      "sepia",
	Reflect:    "reflect",
	Blur:       "blur",
	EdgeDetect: "edges",
}

// TitleBase is the window title shown for the unfiltered image.
const TitleBase = "bmp"

// Kinds returns all filter kinds in declaration order.
func Kinds() []FilterKind {
	ks := make([]FilterKind, KindCount)
	for i := range ks {
		ks[i] = FilterKind(i)
	}
	return ks
}

// Valid reports whether k names a known filter.
func (k FilterKind) Valid() bool {
	return k < KindCount
}

// String returns the name of the filter kind.
func (k FilterKind) String() string {
	if !k.Valid() {
		return unknownStr
	}
	return kindNames[k]
}

// Title returns the window title for the filter, e.g. "bmp - sepia".
func (k FilterKind) Title() string {
	if !k.Valid() || k == Identity {
		return TitleBase
	}
	return TitleBase + " - " + titleSuffix[k]
}

// aliases maps case-folded names to kinds. Both the type names and the
// short labels used in titles and help text are accepted.
var aliases = func() map[string]FilterKind {
	fold := cases.Fold()
	m := make(map[string]FilterKind)
	for _, k := range Kinds() {
		m[fold.String(kindNames[k])] = k
		if titleSuffix[k] != "" {
			m[fold.String(titleSuffix[k])] = k
		}
	}
	m[fold.String("none")] = Identity
	m[fold.String("original")] = Identity
	m[fold.String("edge")] = EdgeDetect
	return m
}()

// ParseKind returns the filter kind named s. Matching ignores case and
// surrounding whitespace.
func ParseKind(s string) (FilterKind, bool) {
	k, ok := aliases[cases.Fold().String(strings.TrimSpace(s))]
	return k, ok
}
