// Package zhconv converts traditional Chinese characters in transcripts
// to their simplified forms. ASR models trained on mixed corpora emit
// traditional variants for Mandarin speech; dictation output should be
// uniformly simplified.
//
// Conversion is per-rune against an embedded table of the common
// traditional forms. Text that is already simplified, and any non-CJK
// text, passes through unchanged, so Convert is idempotent.
package zhconv

import "strings"

// Convert returns s with traditional Chinese characters replaced by
// their simplified equivalents.
func Convert(s string) string {
	var b strings.Builder
	changed := false

	for i, r := range s {
		mapped, ok := t2s[r]
		if !ok {
			if changed {
				b.WriteRune(r)
			}
			continue
		}
		if !changed {
			b.Grow(len(s))
			b.WriteString(s[:i])
			changed = true
		}
		b.WriteRune(mapped)
	}

	if !changed {
		return s
	}
	return b.String()
}

// HasTraditional reports whether s contains at least one character with a
// distinct simplified form.
func HasTraditional(s string) bool {
	for _, r := range s {
		if _, ok := t2s[r]; ok {
			return true
		}
	}
	return false
}
