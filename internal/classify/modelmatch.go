package classify

import "strings"

// IsModelMatch reports whether two machine model strings refer to
// compatible machines. Models match when they are identical ignoring
// case, or when after normalization one is a prefix of the other
// followed by a space or a slash ("MP 3352" matches "MP 3352 SP" and
// "MP 3352/3852" but not "MP 335").
func IsModelMatch(a, b string) bool {
	na, nb := normalizeModel(a), normalizeModel(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	longer, shorter := na, nb
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}
	if !strings.HasPrefix(longer, shorter) {
		return false
	}

	switch longer[len(shorter)] {
	case ' ', '/':
		return true
	}
	return false
}

// normalizeModel uppercases and collapses internal whitespace so that
// "mp  3352" and "MP 3352" compare equal.
func normalizeModel(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
