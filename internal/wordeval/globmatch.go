package wordeval

import (
	"regexp"
	"strings"
)

// stripPrefix removes the shortest (greedy=false) or longest (greedy=true)
// leading run of s that matches the glob-derived ere, trying every prefix
// length in the appropriate order and taking the first full match against
// that candidate prefix anchored both ends. This sidesteps RE2's lack of
// POSIX leftmost-longest semantics by testing candidates directly rather
// than relying on quantifier greediness.
func stripPrefix(s, ere string, greedy bool) (string, error) {
	re, err := regexp.Compile("^(?:" + ere + ")$")
	if err != nil {
		return s, err
	}
	n := len(s)
	if greedy {
		for l := n; l >= 0; l-- {
			if re.MatchString(s[:l]) {
				return s[l:], nil
			}
		}
	} else {
		for l := 0; l <= n; l++ {
			if re.MatchString(s[:l]) {
				return s[l:], nil
			}
		}
	}
	return s, nil
}

// matchGlobSingleRune matches a single-character glob class (`?`, a
// `[...]`/`[!...]` bracket class, or a bare literal character) against one
// rune, for the case-folding ops' optional character-class argument.
func matchGlobSingleRune(pattern string, r rune) (bool, error) {
	if pattern == "?" {
		return true, nil
	}
	if strings.HasPrefix(pattern, "[") && strings.HasSuffix(pattern, "]") {
		inner := pattern[1 : len(pattern)-1]
		negate := false
		if strings.HasPrefix(inner, "!") || strings.HasPrefix(inner, "^") {
			negate = true
			inner = inner[1:]
		}
		match := matchCharClass(inner, r)
		if negate {
			match = !match
		}
		return match, nil
	}
	runes := []rune(pattern)
	if len(runes) == 0 {
		return false, nil
	}
	return runes[0] == r, nil
}

func matchCharClass(inner string, r rune) bool {
	runes := []rune(inner)
	for i := 0; i < len(runes); i++ {
		if i+2 < len(runes) && runes[i+1] == '-' {
			lo, hi := runes[i], runes[i+2]
			if r >= lo && r <= hi {
				return true
			}
			i += 2
			continue
		}
		if runes[i] == r {
			return true
		}
	}
	return false
}

// stripSuffix is stripPrefix's mirror image for trailing matches.
func stripSuffix(s, ere string, greedy bool) (string, error) {
	re, err := regexp.Compile("^(?:" + ere + ")$")
	if err != nil {
		return s, err
	}
	n := len(s)
	if greedy {
		for l := n; l >= 0; l-- {
			if re.MatchString(s[n-l:]) {
				return s[:n-l], nil
			}
		}
	} else {
		for l := 0; l <= n; l++ {
			if re.MatchString(s[n-l:]) {
				return s[:n-l], nil
			}
		}
	}
	return s, nil
}
