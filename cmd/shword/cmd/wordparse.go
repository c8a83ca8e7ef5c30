package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/wordast"
)

// parseWord builds a wordast.Word out of one CLI argument, supporting enough
// of bash's word grammar to exercise the evaluator end-to-end: literal text,
// single/double quoting, a leading tilde, and `$name`/`${name...}`
// substitutions with the test, suffix, and case-fold operators. It is a
// convenience scanner for this command, not the shell's own word parser.
func parseWord(src string) (*wordast.Word, error) {
	p := &wordParser{src: src}
	parts, err := p.parts(false)
	if err != nil {
		return nil, err
	}
	return &wordast.Word{Parts: parts}, nil
}

type wordParser struct {
	src string
	pos int
}

func (p *wordParser) eof() bool { return p.pos >= len(p.src) }
func (p *wordParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// parts scans until EOF (top level) or the closing quote (inDouble).
func (p *wordParser) parts(inDouble bool) ([]wordast.WordPart, error) {
	var parts []wordast.WordPart
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, &wordast.Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	first := true
	for !p.eof() {
		c := p.peek()
		switch {
		case inDouble && c == '"':
			p.pos++
			flush()
			return parts, nil
		case !inDouble && c == '\'':
			p.pos++
			start := p.pos
			for !p.eof() && p.peek() != '\'' {
				p.pos++
			}
			if p.eof() {
				return nil, fmt.Errorf("unterminated single quote")
			}
			parts = append(parts, &wordast.SingleQuoted{Text: p.src[start:p.pos]})
			p.pos++
		case !inDouble && c == '"':
			p.pos++
			flush()
			inner, err := p.parts(true)
			if err != nil {
				return nil, err
			}
			parts = append(parts, &wordast.DoubleQuoted{Parts: inner})
		case c == '$':
			flush()
			part, err := p.dollar()
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		case !inDouble && first && c == '~':
			p.pos++
			start := p.pos
			for !p.eof() && isNameByte(p.peek()) {
				p.pos++
			}
			parts = append(parts, &wordast.Tilde{User: p.src[start:p.pos]})
		default:
			lit.WriteByte(c)
			p.pos++
		}
		first = false
	}
	if inDouble {
		return nil, fmt.Errorf("unterminated double quote")
	}
	flush()
	return parts, nil
}

func isNameByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// dollar scans a `$...` substitution starting at the '$'.
func (p *wordParser) dollar() (wordast.WordPart, error) {
	p.pos++ // consume '$'
	if p.eof() {
		return &wordast.Literal{Text: "$"}, nil
	}
	if p.peek() == '{' {
		return p.braced()
	}
	if p.peek() >= '0' && p.peek() <= '9' {
		start := p.pos
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
		n, _ := strconv.Atoi(p.src[start:p.pos])
		return &wordast.SimpleVarSub{HasNum: true, Number: n}, nil
	}
	switch p.peek() {
	case '@':
		p.pos++
		return &wordast.SimpleVarSub{Special: ident.VSub_At}, nil
	case '*':
		p.pos++
		return &wordast.SimpleVarSub{Special: ident.VSub_Star}, nil
	case '#':
		p.pos++
		return &wordast.SimpleVarSub{Special: ident.VSub_Hash}, nil
	case '?':
		p.pos++
		return &wordast.SimpleVarSub{Special: ident.VSub_Question}, nil
	case '!':
		p.pos++
		return &wordast.SimpleVarSub{Special: ident.VSub_Bang}, nil
	case '$':
		p.pos++
		return &wordast.SimpleVarSub{Special: ident.VSub_Dollar}, nil
	}
	if isNameStart(p.peek()) {
		start := p.pos
		for !p.eof() && isNameByte(p.peek()) {
			p.pos++
		}
		return &wordast.SimpleVarSub{Name: p.src[start:p.pos]}, nil
	}
	return &wordast.Literal{Text: "$"}, nil
}

// braced scans `${...}` starting at the '{'.
func (p *wordParser) braced() (wordast.WordPart, error) {
	p.pos++ // consume '{'
	b := &wordast.BracedVarSub{}

	if p.peek() == '!' {
		p.pos++
		b.Indirect = true
	}
	if p.peek() == '#' {
		// ${#name}: length, unless it's immediately followed by '}' with no
		// name (not a valid form here, so treat '#' as length prefix).
		save := p.pos
		p.pos++
		if isNameStart(p.peek()) || p.peek() == '@' || p.peek() == '*' {
			b.Prefix = &wordast.PrefixOp{Length: true}
		} else {
			p.pos = save
		}
	}

	switch {
	case p.peek() == '@':
		p.pos++
		b.Special = ident.VSub_At
	case p.peek() == '*':
		p.pos++
		b.Special = ident.VSub_Star
	case p.peek() >= '0' && p.peek() <= '9':
		start := p.pos
		for !p.eof() && p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
		n, _ := strconv.Atoi(p.src[start:p.pos])
		b.HasNum = true
		b.Number = n
	default:
		start := p.pos
		for !p.eof() && isNameByte(p.peek()) {
			p.pos++
		}
		b.Name = p.src[start:p.pos]
	}

	if p.peek() == '[' {
		p.pos++
		switch p.peek() {
		case '@':
			p.pos++
			b.Bracket = &wordast.BracketOp{All: true}
		case '*':
			p.pos++
			b.Bracket = &wordast.BracketOp{Star: true}
		default:
			idx, err := p.restArith("]")
			if err != nil {
				return nil, err
			}
			b.Bracket = &wordast.BracketOp{Index: idx}
		}
		if p.peek() != ']' {
			return nil, fmt.Errorf("expected ']' in ${%s[...}", b.Name)
		}
		p.pos++
	}

	if p.eof() {
		return nil, fmt.Errorf("unterminated ${...}")
	}

	if p.peek() == '}' {
		p.pos++
		return b, nil
	}

	if b.Indirect && (p.peek() == '@' || p.peek() == '*') {
		b.PrefixList = true
		b.PrefixListJoined = p.peek() == '*'
		p.pos++
		if p.peek() != '}' {
			return nil, fmt.Errorf("expected '}' after ${!%s%c", b.Name, p.src[p.pos-1])
		}
		p.pos++
		return b, nil
	}

	op, err := p.suffixOp()
	if err != nil {
		return nil, err
	}
	b.Suffix = op
	if p.peek() != '}' {
		return nil, fmt.Errorf("expected '}' in ${%s...}", b.Name)
	}
	p.pos++
	return b, nil
}

// suffixOp scans one of the test/op1/slice suffix forms up to
// (not including) the closing '}'.
func (p *wordParser) suffixOp() (wordast.SuffixOp, error) {
	colon := false
	if p.peek() == ':' {
		colon = true
		p.pos++
	}

	switch p.peek() {
	case '-', '=', '?', '+':
		c := p.pos
		op := p.testOpId(p.src[c], colon)
		p.pos++
		arg, err := p.restAsWord()
		if err != nil {
			return nil, err
		}
		return &wordast.TestOp{Op: op, ColonForm: colon, Arg: arg}, nil
	}

	if colon {
		// ${v:begin} / ${v:begin:length}
		begin, err := p.restArith(":}")
		if err != nil {
			return nil, err
		}
		op := &wordast.SliceOp{Begin: begin}
		if p.peek() == ':' {
			p.pos++
			length, err := p.restArith("}")
			if err != nil {
				return nil, err
			}
			op.Length = length
			op.HasLength = true
		}
		return op, nil
	}

	switch p.peek() {
	case '#':
		p.pos++
		double := false
		if p.peek() == '#' {
			double = true
			p.pos++
		}
		arg, err := p.restAsWord()
		if err != nil {
			return nil, err
		}
		id := ident.VOp1_Pound
		if double {
			id = ident.VOp1_DPound
		}
		return &wordast.Op1{Op: id, Arg: arg}, nil
	case '%':
		p.pos++
		double := false
		if p.peek() == '%' {
			double = true
			p.pos++
		}
		arg, err := p.restAsWord()
		if err != nil {
			return nil, err
		}
		id := ident.VOp1_Percent
		if double {
			id = ident.VOp1_DPercent
		}
		return &wordast.Op1{Op: id, Arg: arg}, nil
	case '^':
		p.pos++
		double := false
		if p.peek() == '^' {
			double = true
			p.pos++
		}
		arg, err := p.restAsWord()
		if err != nil {
			return nil, err
		}
		id := ident.VOp1_Caret
		if double {
			id = ident.VOp1_DCaret
		}
		return &wordast.Op1{Op: id, Arg: arg}, nil
	case ',':
		p.pos++
		double := false
		if p.peek() == ',' {
			double = true
			p.pos++
		}
		arg, err := p.restAsWord()
		if err != nil {
			return nil, err
		}
		id := ident.VOp1_Comma
		if double {
			id = ident.VOp1_DComma
		}
		return &wordast.Op1{Op: id, Arg: arg}, nil
	case '/':
		p.pos++
		global := false
		anchor := byte(0)
		if p.peek() == '/' {
			global = true
			p.pos++
		} else if p.peek() == '#' {
			anchor = '#'
			p.pos++
		} else if p.peek() == '%' {
			anchor = '%'
			p.pos++
		}
		pat, err := p.untilByte('/')
		if err != nil {
			return nil, err
		}
		rep, err := p.restAsWord()
		if err != nil {
			return nil, err
		}
		return &wordast.PatSubOp{Global: global, Anchor: anchor, Pattern: pat, Replace: rep}, nil
	case '@':
		p.pos++
		if p.eof() {
			return nil, fmt.Errorf("expected nullary op letter after @")
		}
		letter := p.peek()
		p.pos++
		return &wordast.NullaryOp{Op: nullaryOpId(letter)}, nil
	}

	return nil, fmt.Errorf("unsupported suffix operator at %q", p.src[p.pos:])
}

func nullaryOpId(letter byte) ident.Id {
	switch letter {
	case 'Q':
		return ident.VOp0_Q
	case 'P':
		return ident.VOp0_P
	case 'A':
		return ident.VOp0_A
	case 'a':
		return ident.VOp0_a
	case 'K':
		return ident.VOp0_K
	default:
		return ident.VOp0_At
	}
}

func (p *wordParser) testOpId(c byte, colon bool) ident.Id {
	switch c {
	case '-':
		if colon {
			return ident.VTest_ColonHyphen
		}
		return ident.VTest_Hyphen
	case '=':
		if colon {
			return ident.VTest_ColonEquals
		}
		return ident.VTest_Equals
	case '?':
		if colon {
			return ident.VTest_ColonQMark
		}
		return ident.VTest_QMark
	default: // '+'
		if colon {
			return ident.VTest_ColonPlus
		}
		return ident.VTest_Plus
	}
}

// restAsWord parses the remainder up to (not including) the closing '}' as a
// nested word, recursively supporting quotes and substitutions.
func (p *wordParser) restAsWord() (*wordast.Word, error) {
	start := p.pos
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				goto done
			}
			depth--
		}
		p.pos++
	}
done:
	sub := &wordParser{src: p.src[start:p.pos]}
	parts, err := sub.parts(false)
	if err != nil {
		return nil, err
	}
	return &wordast.Word{Parts: parts}, nil
}

// untilByte scans a pattern word up to the next occurrence of delim or '}',
// whichever comes first; brace nesting is not tracked. A delim is consumed,
// a '}' is left for the caller.
func (p *wordParser) untilByte(delim byte) (*wordast.Word, error) {
	start := p.pos
	for !p.eof() && p.peek() != delim && p.peek() != '}' {
		p.pos++
	}
	sub := &wordParser{src: p.src[start:p.pos]}
	if !p.eof() && p.peek() == delim {
		p.pos++
	}
	parts, err := sub.parts(false)
	if err != nil {
		return nil, err
	}
	return &wordast.Word{Parts: parts}, nil
}

// restArith scans a small integer-arithmetic expression (literal int, bare
// name, or a leading '-' negation) up to one of the stop bytes.
func (p *wordParser) restArith(stop string) (wordast.ArithNode, error) {
	start := p.pos
	for !p.eof() && !strings.ContainsRune(stop, rune(p.peek())) {
		p.pos++
	}
	text := strings.TrimSpace(p.src[start:p.pos])
	if text == "" {
		return &wordast.IntLit{Val: 0}, nil
	}
	neg := false
	if strings.HasPrefix(text, "-") {
		neg = true
		text = text[1:]
	}
	var node wordast.ArithNode
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		node = &wordast.IntLit{Val: n}
	} else {
		node = &wordast.ArithVarRef{Name: text}
	}
	if neg {
		node = &wordast.ArithUnaryMinus{X: node}
	}
	return node, nil
}
