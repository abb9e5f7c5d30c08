package parser

import (
	"strings"

	"rpl/internal/control"
	"rpl/internal/diag"
	"rpl/internal/object"
)

// Parser reads Objects from RPL source text one at a time.
type Parser struct {
	src []rune
	pos int
}

// New creates a Parser over src.
func New(src string) *Parser { return &Parser{src: []rune(src)} }

// AtEOF reports whether the parser has consumed the whole source
// (ignoring trailing whitespace).
func (p *Parser) AtEOF() bool {
	p.skipSpace()
	return p.atEOF()
}

// ParseOne reads exactly one top-level object and returns it without
// consuming anything past it. Used for the size(parse(B)) and
// parse(render(O)) round-trip checks, which operate on a single object.
func (p *Parser) ParseOne() (object.Object, error) {
	p.skipSpace()
	if p.atEOF() {
		return nil, diag.SyntaxError(diag.SyntaxUnexpectedToken, "empty input")
	}
	return p.nextItem()
}

// ParseProgram reads every object remaining in the source as an
// implicit program body (spec §6: a REPL input line or a .48S replay
// line is a sequence of objects executed in order).
func (p *Parser) ParseProgram() (object.Program, error) {
	items, err := p.sequence(nil, 0)
	if err != nil {
		return object.Program{}, err
	}
	return object.Program{Body: items}, nil
}

// Parse is a convenience wrapper: parse src as a single object.
func Parse(src string) (object.Object, error) { return New(src).ParseOne() }

// ParseAll is a convenience wrapper: parse src as an implicit program.
func ParseAll(src string) (object.Program, error) { return New(src).ParseProgram() }

// sequence reads items until EOF, until stopBracket is seen (consumed
// and not included), or until a bare word in stop is seen (left
// unconsumed so the caller can match it explicitly).
func (p *Parser) sequence(stop map[string]bool, stopBracket rune) ([]object.Object, error) {
	var items []object.Object
	for {
		p.skipSpace()
		if p.atEOF() {
			if stopBracket != 0 {
				return nil, diag.SyntaxError(diag.SyntaxUnterminatedConstruct, "unterminated construct")
			}
			return items, nil
		}
		if stopBracket != 0 && p.peek() == stopBracket {
			p.pos++
			return items, nil
		}
		if isAlpha(p.peek()) {
			word := p.peekWord()
			if stop[strings.ToUpper(word)] {
				return items, nil
			}
		}
		item, err := p.nextItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// nextItem parses one leaf object or one full control construct at the
// current position. A nested control construct consumes its own
// matching closer recursively, so no depth tracking is needed here.
func (p *Parser) nextItem() (object.Object, error) {
	switch {
	case p.peek() == '"':
		return p.parseText()
	case p.peek() == '\'':
		return p.parseExpression()
	case p.peek() == '«':
		return p.parseProgram()
	case p.peek() == '{':
		return p.parseList()
	case p.peek() == '(':
		return p.parseComplex()
	case p.peek() == '#':
		return p.parseBasedInteger()
	case p.numberRun():
		return p.parseNumber()
	case isAlpha(p.peek()):
		word := p.readWord()
		if kw, ok := control.LookupKeyword(word); ok {
			return p.parseConstruct(kw)
		}
		if object.IsCommandName(strings.ToUpper(word)) {
			return object.Command{Name: strings.ToUpper(word)}, nil
		}
		return object.Symbol{Name: word}, nil
	case isOperatorChar(p.peek()):
		word := p.readWord()
		return object.Command{Name: word}, nil
	default:
		return nil, diag.SyntaxError(diag.SyntaxUnexpectedToken, "unexpected character %q", string(p.peek()))
	}
}

func (p *Parser) parseText() (object.Object, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for {
		if p.atEOF() {
			return nil, diag.SyntaxError(diag.SyntaxUnterminatedText, "unterminated text")
		}
		if p.peek() == '"' {
			if p.peekAt(1) == '"' {
				b.WriteRune('"')
				p.pos += 2
				continue
			}
			p.pos++
			return object.Text{S: b.String()}, nil
		}
		b.WriteRune(p.peek())
		p.pos++
	}
}

func (p *Parser) parseExpression() (object.Object, error) {
	p.pos++ // opening quote
	items, err := p.sequence(nil, '\'')
	if err != nil {
		return nil, err
	}
	return object.Expression{Items: items}, nil
}

func (p *Parser) parseProgram() (object.Object, error) {
	p.pos++ // «
	items, err := p.sequence(nil, '»')
	if err != nil {
		return nil, err
	}
	return object.Program{Body: items}, nil
}

func (p *Parser) parseList() (object.Object, error) {
	p.pos++ // {
	items, err := p.sequence(nil, '}')
	if err != nil {
		return nil, err
	}
	return object.List{Items: items}, nil
}

// expectKeyword consumes the next bare word and errors unless it
// matches kw.
func (p *Parser) expectKeyword(kw control.Keyword, name string) error {
	p.skipSpace()
	if !isAlpha(p.peek()) {
		return diag.SyntaxError(diag.SyntaxUnterminatedConstruct, "expected %s", name)
	}
	word := p.readWord()
	if !control.MatchKeyword(word, kw) {
		return diag.SyntaxError(diag.SyntaxUnterminatedConstruct, "expected %s, got %q", name, word)
	}
	return nil
}

// parseConstruct parses the remainder of a control construct whose
// opening keyword kw has already been consumed by the caller.
func (p *Parser) parseConstruct(kw control.Keyword) (object.Object, error) {
	switch kw {
	case control.KwIf:
		return p.parseIf()
	case control.KwDo:
		return p.parseDo()
	case control.KwWhile:
		return p.parseWhile()
	case control.KwStart:
		return p.parseStartOrFor(false)
	case control.KwFor:
		return p.parseStartOrFor(true)
	default:
		return nil, diag.SyntaxError(diag.SyntaxUnexpectedToken, "unexpected keyword")
	}
}

func (p *Parser) parseIf() (object.Object, error) {
	cond, err := p.sequence(map[string]bool{"THEN": true}, 0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(control.KwThen, "THEN"); err != nil {
		return nil, err
	}
	then, err := p.sequence(map[string]bool{"ELSE": true, "END": true}, 0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	result := object.IfThenElse{Cond: object.Program{Body: cond}, Then: object.Program{Body: then}}
	if isAlpha(p.peek()) && control.MatchKeyword(p.peekWord(), control.KwElse) {
		p.readWord()
		elseItems, err := p.sequence(map[string]bool{"END": true}, 0)
		if err != nil {
			return nil, err
		}
		result.Else = object.Program{Body: elseItems}
		result.HasElse = true
	}
	if err := p.expectKeyword(control.KwEnd, "END"); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Parser) parseDo() (object.Object, error) {
	body, err := p.sequence(map[string]bool{"UNTIL": true}, 0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(control.KwUntil, "UNTIL"); err != nil {
		return nil, err
	}
	cond, err := p.sequence(map[string]bool{"END": true}, 0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(control.KwEnd, "END"); err != nil {
		return nil, err
	}
	return object.DoUntil{Body: object.Program{Body: body}, Cond: object.Program{Body: cond}}, nil
}

func (p *Parser) parseWhile() (object.Object, error) {
	cond, err := p.sequence(map[string]bool{"REPEAT": true}, 0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(control.KwRepeat, "REPEAT"); err != nil {
		return nil, err
	}
	body, err := p.sequence(map[string]bool{"END": true}, 0)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(control.KwEnd, "END"); err != nil {
		return nil, err
	}
	return object.WhileRepeat{Cond: object.Program{Body: cond}, Body: object.Program{Body: body}}, nil
}

func (p *Parser) parseStartOrFor(hasName bool) (object.Object, error) {
	name := ""
	if hasName {
		p.skipSpace()
		if !isAlpha(p.peek()) {
			return nil, diag.SyntaxError(diag.SyntaxMissingVariableName, "expected loop variable name")
		}
		name = p.readWord()
	}
	body, err := p.sequence(map[string]bool{"NEXT": true, "STEP": true}, 0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !isAlpha(p.peek()) {
		return nil, diag.SyntaxError(diag.SyntaxUnterminatedConstruct, "expected NEXT or STEP")
	}
	word := p.readWord()
	hasStep := control.MatchKeyword(word, control.KwStep)
	if !hasStep && !control.MatchKeyword(word, control.KwNext) {
		return nil, diag.SyntaxError(diag.SyntaxUnexpectedToken, "expected NEXT or STEP, got %q", word)
	}
	if hasName {
		return object.ForLoop{Name: name, Body: object.Program{Body: body}, HasStep: hasStep}, nil
	}
	return object.StartLoop{Body: object.Program{Body: body}, HasStep: hasStep}, nil
}
