package transpiler

import (
	"bytes"
	"fmt"
)

type TokenKind int

const (
	TokenWord = iota
	TokenNumber
	TokenString
	TokenChar
	TokenPunct
)

// Token is one lexical unit of the input. The pipeline stores and re-emits
// tokens without interpreting them against any grammar.
type Token struct {
	Kind TokenKind
	Text string
	Line int
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%q", t.Line, t.Text)
}

// Scanner splits source bytes into tokens. Feed may be called any number of
// times before scanning starts; TryNext consumes from the front of the
// buffer.
type Scanner struct {
	data bytes.Buffer
	line int
}

func NewScanner() *Scanner {
	return &Scanner{line: 1}
}

func (s *Scanner) Feed(data []byte) {
	s.data.Write(data)
}

func isWordStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWord(c byte) bool {
	return isWordStart(c) || isDigit(c)
}

// Number bodies keep letters and dots so hex literals and suffixes stay one
// token (0xFF, 1.5f, 10L).
func isNumber(c byte) bool {
	return isWord(c) || c == '.'
}

// TryNext returns the next token, or false once the buffer is exhausted.
// Comments and whitespace are consumed, never returned.
func (s *Scanner) TryNext() (tok Token, ok bool) {
	for {
		c, err := s.data.ReadByte()
		if err != nil {
			return
		}
		switch {
		case c == '\n':
			s.line++
		case c == ' ' || c == '\t' || c == '\r':
		case c == '/':
			if !s.skipComment() {
				return Token{Kind: TokenPunct, Text: "/", Line: s.line}, true
			}
		case isWordStart(c):
			return s.scanWhile(c, isWord, TokenWord), true
		case isDigit(c):
			return s.scanWhile(c, isNumber, TokenNumber), true
		case c == '"':
			return s.scanQuoted(c, TokenString), true
		case c == '\'':
			return s.scanQuoted(c, TokenChar), true
		default:
			return Token{Kind: TokenPunct, Text: string(c), Line: s.line}, true
		}
	}
}

func (s *Scanner) scanWhile(first byte, pred func(byte) bool, kind TokenKind) Token {
	buf := []byte{first}
	for {
		c, err := s.data.ReadByte()
		if err != nil {
			break
		}
		if !pred(c) {
			_ = s.data.UnreadByte()
			break
		}
		buf = append(buf, c)
	}
	return Token{Kind: kind, Text: string(buf), Line: s.line}
}

func (s *Scanner) scanQuoted(quote byte, kind TokenKind) Token {
	buf := []byte{quote}
	line := s.line
	for {
		c, err := s.data.ReadByte()
		if err != nil {
			// unterminated literal, keep what we have
			break
		}
		buf = append(buf, c)
		if c == '\\' {
			d, err := s.data.ReadByte()
			if err != nil {
				break
			}
			buf = append(buf, d)
			continue
		}
		if c == '\n' {
			s.line++
		}
		if c == quote {
			break
		}
	}
	return Token{Kind: kind, Text: string(buf), Line: line}
}

// skipComment is called after a '/' was read. It reports whether a comment
// was consumed; when false the '/' stands on its own.
func (s *Scanner) skipComment() bool {
	c, err := s.data.ReadByte()
	if err != nil {
		return false
	}
	switch c {
	case '/':
		for {
			c, err := s.data.ReadByte()
			if err != nil {
				return true
			}
			if c == '\n' {
				s.line++
				return true
			}
		}
	case '*':
		var prev byte
		for {
			c, err := s.data.ReadByte()
			if err != nil {
				return true
			}
			if c == '\n' {
				s.line++
			}
			if prev == '*' && c == '/' {
				return true
			}
			prev = c
		}
	default:
		_ = s.data.UnreadByte()
		return false
	}
}
