package textdiff

import "regexp"

var lineJunkRE = regexp.MustCompile(`^\s*(?:#\s*)?$`)

// IsLineJunk reports whether line looks unimportant to a line-level
// comparison: blank, or whitespace around at most a single "#".
//
//	IsLineJunk("\n")       == true
//	IsLineJunk("  #   \n") == true
//	IsLineJunk("hello\n")  == false
func IsLineJunk(line string) bool {
	return lineJunkRE.MatchString(line)
}

// IsCharacterJunk reports whether ch is a blank or a tab. Newline is
// deliberately not junk: treating it as junk strips the one character every
// line pair is guaranteed to share, which skews near-match scoring.
func IsCharacterJunk(ch rune) bool {
	return ch == ' ' || ch == '\t'
}
