package token

// Type discriminates the lexical category of a scanned unit.
type Type int

const (
	ENDFILE Type = iota + 1
	ERROR

	// reserved words
	IF
	THEN
	ELSE
	END
	REPEAT
	UNTIL
	READ
	WRITE

	// multicharacter tokens
	ID
	NUM

	// special symbols
	ASSIGN
	EQ
	LT
	PLUS
	MINUS
	TIMES
	OVER
	LPAREN
	RPAREN
	SEMI
)

var typeNames = map[Type]string{
	ENDFILE: "ENDFILE",
	ERROR:   "ERROR",

	IF:     "IF",
	THEN:   "THEN",
	ELSE:   "ELSE",
	END:    "END",
	REPEAT: "REPEAT",
	UNTIL:  "UNTIL",
	READ:   "READ",
	WRITE:  "WRITE",

	ID:  "ID",
	NUM: "NUM",

	ASSIGN: "ASSIGN",
	EQ:     "EQ",
	LT:     "LT",
	PLUS:   "PLUS",
	MINUS:  "MINUS",
	TIMES:  "TIMES",
	OVER:   "OVER",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
	SEMI:   "SEMI",
}

func init() {
	// make sure we panic if a name isn't declared
	for t := ENDFILE; t <= SEMI; t++ {
		if typeNames[t] == "" {
			panic("you have not updated typeNames")
		}
	}
}

func (t Type) String() string {
	return typeNames[t]
}

var symbols = map[Type]string{
	ASSIGN: ":=",
	EQ:     "=",
	LT:     "<",
	PLUS:   "+",
	MINUS:  "-",
	TIMES:  "*",
	OVER:   "/",
	LPAREN: "(",
	RPAREN: ")",
	SEMI:   ";",
}

// Symbol returns the source text of an operator or punctuation type.
// Types whose text lives in the token's lexeme return "".
func (t Type) Symbol() string {
	return symbols[t]
}

// Token is one classified lexical unit. Line is the 1-based source line on
// which classification finished.
type Token struct {
	Type   Type
	Lexeme string
	Line   int
}

// String renders the token the way the compiler listing prints it.
func (t Token) String() string {
	switch t.Type {
	case IF, THEN, ELSE, END, REPEAT, UNTIL, READ, WRITE:
		return "reserved word: " + t.Lexeme
	case ID:
		return "ID, name= " + t.Lexeme
	case NUM:
		return "NUM, val= " + t.Lexeme
	case ENDFILE:
		return "EOF"
	case ERROR:
		return "ERROR: " + t.Lexeme
	default:
		return t.Type.Symbol()
	}
}
