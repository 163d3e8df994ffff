package scanner

import (
	"fmt"
	"io"

	"github.com/tinylang/gotiny/internal/token"
)

// maxTokenLen bounds the stored lexeme. Longer tokens keep scanning past
// the bound but stop accumulating characters.
const maxTokenLen = 40

// DFA states of GetToken
type state int

const (
	start state = iota
	inAssign
	inComment
	inNum
	inID
	done
)

// Options configures a Scanner's listing side effects. Echo writes every
// physical source line to Listing as it is read; Trace writes one line per
// classified token. Listing defaults to io.Discard.
type Options struct {
	Echo    bool
	Trace   bool
	Listing io.Writer
}

// Scanner turns a character stream into TINY tokens, one GetToken call per
// token. Each Scanner owns its line buffer and line counter, so concurrent
// sources just use separate instances.
type Scanner struct {
	buf     *lineBuffer
	trace   bool
	listing io.Writer
}

func New(source io.Reader, opts Options) *Scanner {
	listing := opts.Listing
	if listing == nil {
		listing = io.Discard
	}
	return &Scanner{
		buf:     newLineBuffer(source, opts.Echo, listing),
		trace:   opts.Trace,
		listing: listing,
	}
}

// Line returns the number of physical lines consumed so far.
func (s *Scanner) Line() int {
	return s.buf.lineNum
}

// GetToken classifies and returns the next token, leaving the input
// positioned at the first character past it. Malformed input yields an
// ERROR token carrying the offending text; the scanner itself never fails.
// End of input reached inside a comment yields the ENDFILE token.
func (s *Scanner) GetToken() token.Token {
	var lexeme []byte
	var kind token.Type
	st := start

	for st != done {
		c := s.buf.next()
		save := true
		switch st {
		case start:
			switch {
			case isDigit(c):
				st = inNum
			case isLetter(c):
				st = inID
			case c == ':':
				st = inAssign
			case isSpace(c):
				save = false
			case c == '{':
				save = false
				st = inComment
			default:
				st = done
				switch c {
				case eof:
					save = false
					kind = token.ENDFILE
				case '+':
					save = false
					kind = token.PLUS
				case '-':
					save = false
					kind = token.MINUS
				case '*':
					save = false
					kind = token.TIMES
				case '/':
					save = false
					kind = token.OVER
				case ';':
					save = false
					kind = token.SEMI
				case '(':
					save = false
					kind = token.LPAREN
				case ')':
					save = false
					kind = token.RPAREN
				case '<':
					save = false
					kind = token.LT
				case '=':
					save = false
					kind = token.EQ
				default:
					kind = token.ERROR
				}
			}
		case inComment:
			save = false
			switch c {
			case '}':
				st = start
			case eof:
				st = done
				kind = token.ENDFILE
			}
		case inAssign:
			st = done
			if c == '=' {
				kind = token.ASSIGN
			} else {
				// backup in the input
				s.buf.unread()
				save = false
				kind = token.ERROR
			}
		case inNum:
			if !isDigit(c) {
				// backup in the input
				s.buf.unread()
				save = false
				st = done
				kind = token.NUM
			}
		case inID:
			if !isLetter(c) {
				// backup in the input
				s.buf.unread()
				save = false
				st = done
				kind = token.ID
			}
		}
		if save && len(lexeme) < maxTokenLen {
			lexeme = append(lexeme, byte(c))
		}
	}

	tok := token.Token{Type: kind, Lexeme: string(lexeme), Line: s.buf.lineNum}
	if tok.Type == token.ID {
		tok.Type = token.LookupKeyword(tok.Lexeme)
	}
	if s.trace {
		fmt.Fprintf(s.listing, "\t%d: %s\n", tok.Line, tok)
	}
	return tok
}

// ScanTokens drains the source, returning every token up to and including
// the terminating ENDFILE token.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		tok := s.GetToken()
		tokens = append(tokens, tok)
		if tok.Type == token.ENDFILE {
			return tokens
		}
	}
}
