package token

// reservedWords is the lookup table for the TINY keyword set. Order is
// fixed; lookup is a linear scan and the first exact match wins.
var reservedWords = []struct {
	Text string
	Type Type
}{
	{"if", IF},
	{"then", THEN},
	{"else", ELSE},
	{"end", END},
	{"repeat", REPEAT},
	{"until", UNTIL},
	{"read", READ},
	{"write", WRITE},
}

// LookupKeyword reclassifies an identifier lexeme. The match is
// case-sensitive; anything not in the table stays ID.
func LookupKeyword(lexeme string) Type {
	for _, w := range reservedWords {
		if w.Text == lexeme {
			return w.Type
		}
	}
	return ID
}
