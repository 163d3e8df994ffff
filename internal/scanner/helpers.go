package scanner

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isLetter matches TINY identifier characters: letters only, no digits or
// underscores.
func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
