package parser

import (
	"fmt"

	"github.com/aledsdavies/hoonlint/pkgs/catalog"
	"github.com/aledsdavies/hoonlint/pkgs/cst"
	"github.com/aledsdavies/hoonlint/pkgs/lexer"
)

// Parser is a recursive-descent parser over a lexer.Lexer's token stream,
// building a cst.Tree the pkgs/lint checkers walk. It holds exactly one
// token of lookahead (cur); parsing a gap-separated repetition needs more
// than that, so parsePairList/parseJoggingList snapshot and restore the
// lexer and cur by value rather than carry a general k-token buffer.
type Parser struct {
	gram *Grammar
	lex  *lexer.Lexer
	tr   *cst.Tree
	cur  lexer.Token
}

// Parse reads src as a single Hoon and returns the tree it was built in
// along with a Ref to that Hoon's root node. Parsing stops at the first
// error; this frontend is a demonstration of the shape checkers, not a
// production compiler, so it does no error recovery.
func Parse(src []byte, gram *Grammar) (*cst.Tree, cst.Ref, error) {
	p := &Parser{gram: gram, lex: lexer.New(src), tr: cst.NewTree()}
	p.advance()

	root, err := p.parseHoon()
	if err != nil {
		return p.tr, cst.None, err
	}
	if p.cur.Kind == lexer.Gap {
		p.advance()
	}
	if p.cur.Kind != lexer.EOF {
		return p.tr, cst.None, &ParseError{Token: p.cur, Message: "expected end of input"}
	}
	return p.tr, root, nil
}

func (p *Parser) advance() {
	p.cur = p.lex.Next()
}

func (p *Parser) startsHoon(tok lexer.Token) bool {
	return tok.Kind == lexer.Ident || tok.Kind == lexer.Tag || tok.Kind == lexer.Rune
}

// expectGap consumes a mandatory gap without keeping it in the tree, for
// the positions (rune to first sub-hoon, last jog to "==", ...) where the
// gap carries no indentation information the checkers need.
func (p *Parser) expectGap() error {
	if p.cur.Kind != lexer.Gap {
		return &ParseError{Token: p.cur, Message: "expected a gap"}
	}
	p.advance()
	return nil
}

// expectGapSeparator consumes a mandatory gap and keeps it as a Separator
// node, for the positions GapIndents reads to find a child's own column.
func (p *Parser) expectGapSeparator() (cst.Ref, error) {
	if p.cur.Kind != lexer.Gap {
		return cst.None, &ParseError{Token: p.cur, Message: "expected a gap"}
	}
	tok := p.cur
	ref := p.tr.NewSeparator(p.gram.Gap, tok.Start, len(tok.Value))
	p.advance()
	return ref, nil
}

func (p *Parser) expectTisTis() (cst.Ref, error) {
	if p.cur.Kind != lexer.TisTis {
		return cst.None, &ParseError{Token: p.cur, Message: "expected =="}
	}
	tok := p.cur
	ref := p.tr.NewLexeme(p.gram.TisTis, tok.Start, len(tok.Value))
	p.advance()
	return ref, nil
}

// parseHoon parses one Hoon: a bare ident or tag lexeme, or a
// rune-introduced construct.
func (p *Parser) parseHoon() (cst.Ref, error) {
	switch p.cur.Kind {
	case lexer.Ident:
		tok := p.cur
		ref := p.tr.NewLexeme(p.gram.Ident, tok.Start, len(tok.Value))
		p.advance()
		return ref, nil
	case lexer.Tag:
		tok := p.cur
		ref := p.tr.NewLexeme(p.gram.Tag, tok.Start, len(tok.Value))
		p.advance()
		return ref, nil
	case lexer.Rune:
		return p.parseRuneHoon()
	default:
		return cst.None, &ParseError{Token: p.cur, Message: fmt.Sprintf("expected a hoon, found %s", p.cur.Kind)}
	}
}

func (p *Parser) parseRuneHoon() (cst.Ref, error) {
	tok := p.cur
	ruleID, ok := RuleForRune(tok.Value)
	if !ok {
		p.advance()
		return cst.None, &ParseError{Token: tok, Message: fmt.Sprintf("unknown rune %q", tok.Value)}
	}
	p.advance()

	switch ruleID {
	case RuleColhepCell, RuleTallCastmold:
		return p.finishGapPair(ruleID)
	case RuleLushepCell:
		return p.finishLushepCell(ruleID)
	case RuleTallSemsig:
		return p.finishTallSemsig(ruleID)
	case RuleTallWutbar, RuleTallWuthep:
		runeRef := p.tr.NewLexeme(p.gram.Rune, tok.Start, len(tok.Value))
		return p.finishSingleHeadJogging(ruleID, runeRef)
	case RuleTallWutlus:
		runeRef := p.tr.NewLexeme(p.gram.Rune, tok.Start, len(tok.Value))
		return p.finishJogging2(runeRef)
	case RuleTallWutpat:
		runeRef := p.tr.NewLexeme(p.gram.Rune, tok.Start, len(tok.Value))
		return p.finishPrefixJogging(runeRef)
	default:
		return cst.None, &ParseError{Token: tok, Message: "internal: unhandled rune rule"}
	}
}

// finishGapPair parses the ":-" and "^-" shapes: exactly two sub-hoons
// separated by one gap, with no rune child — GapIndents reads the gap
// separator to find the second sub-hoon's column. The gap between the
// rune and the first sub-hoon is discarded, same as the jogging shapes.
func (p *Parser) finishGapPair(ruleID catalog.RuleID) (cst.Ref, error) {
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	first, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	sep, err := p.expectGapSeparator()
	if err != nil {
		return cst.None, err
	}
	second, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	return p.tr.NewNode(ruleID, []cst.Ref{first, sep, second}), nil
}

// parsePairList parses one Hoon followed by zero or more gap-separated
// Hoons, returning the flat alternating [hoon, sep, hoon, sep, hoon, ...]
// list. Before committing to another element it peeks past the gap: if
// what follows doesn't start a Hoon, the gap is left unconsumed for
// whatever follows this construct and no Separator node is allocated for
// it, so a trailing gap never wastes an arena slot on a backtracked-away
// element.
func (p *Parser) parsePairList() ([]cst.Ref, error) {
	first, err := p.parseHoon()
	if err != nil {
		return nil, err
	}
	children := []cst.Ref{first}

	for p.cur.Kind == lexer.Gap {
		savedLex := *p.lex
		savedCur := p.cur
		gapTok := p.cur
		p.advance()

		if !p.startsHoon(p.cur) {
			*p.lex = savedLex
			p.cur = savedCur
			break
		}

		sep := p.tr.NewSeparator(p.gram.Gap, gapTok.Start, len(gapTok.Value))
		hoon, err := p.parseHoon()
		if err != nil {
			return nil, err
		}
		children = append(children, sep, hoon)
	}
	return children, nil
}

// finishLushepCell parses "+-": two or more sub-hoons, each pair
// separated by a gap GapIndents reads directly. The gap between the rune
// and the first sub-hoon is discarded, same as the jogging shapes.
func (p *Parser) finishLushepCell(ruleID catalog.RuleID) (cst.Ref, error) {
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	children, err := p.parsePairList()
	if err != nil {
		return cst.None, err
	}
	if len(children) < 3 {
		return cst.None, &ParseError{Token: p.cur, Message: "+- requires at least two sub-hoons"}
	}
	return p.tr.NewNode(ruleID, children), nil
}

// finishTallSemsig parses ";;": a cast mold, a gap, and a sequence of one
// or more gap-separated sub-hoons wrapped in their own sequence node. The
// gap between the rune and the mold is discarded, same as the jogging
// shapes.
func (p *Parser) finishTallSemsig(ruleID catalog.RuleID) (cst.Ref, error) {
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	mold, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	sep, err := p.expectGapSeparator()
	if err != nil {
		return cst.None, err
	}
	seqChildren, err := p.parsePairList()
	if err != nil {
		return cst.None, err
	}
	seq := p.tr.NewNode(RuleTallSemsigSequence, seqChildren)
	return p.tr.NewNode(ruleID, []cst.Ref{mold, sep, seq}), nil
}

// parseJog parses one [head gap body] jog, the element of a JoggingList.
func (p *Parser) parseJog() (cst.Ref, error) {
	head, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	sep, err := p.expectGapSeparator()
	if err != nil {
		return cst.None, err
	}
	body, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	return p.tr.NewNode(RuleJog, []cst.Ref{head, sep, body}), nil
}

// parseJoggingList parses one or more gap-separated jogs. The lookahead
// past each gap stops the list at "==" (the closing terminator) as well
// as at anything that can't start another jog's head.
func (p *Parser) parseJoggingList() (cst.Ref, error) {
	first, err := p.parseJog()
	if err != nil {
		return cst.None, err
	}
	children := []cst.Ref{first}

	for p.cur.Kind == lexer.Gap {
		savedLex := *p.lex
		savedCur := p.cur
		gapTok := p.cur
		p.advance()

		if p.cur.Kind == lexer.TisTis || !p.startsHoon(p.cur) {
			*p.lex = savedLex
			p.cur = savedCur
			break
		}

		sep := p.tr.NewSeparator(p.gram.Gap, gapTok.Start, len(gapTok.Value))
		jog, err := p.parseJog()
		if err != nil {
			return cst.None, err
		}
		children = append(children, sep, jog)
	}
	return p.tr.NewNode(RuleJoggingList, children), nil
}

// finishSingleHeadJogging parses "?|" and "?-": rune, one head sub-hoon,
// a jogging list, and the "==" terminator.
func (p *Parser) finishSingleHeadJogging(ruleID catalog.RuleID, runeRef cst.Ref) (cst.Ref, error) {
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	head, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	joggingList, err := p.parseJoggingList()
	if err != nil {
		return cst.None, err
	}
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	closing, err := p.expectTisTis()
	if err != nil {
		return cst.None, err
	}
	return p.tr.NewNode(ruleID, []cst.Ref{runeRef, head, joggingList, closing}), nil
}

// finishJogging2 parses "?+": rune, two head sub-hoons, a jogging list,
// and the "==" terminator.
func (p *Parser) finishJogging2(runeRef cst.Ref) (cst.Ref, error) {
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	first, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	second, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	joggingList, err := p.parseJoggingList()
	if err != nil {
		return cst.None, err
	}
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	closing, err := p.expectTisTis()
	if err != nil {
		return cst.None, err
	}
	return p.tr.NewNode(RuleTallWutlus, []cst.Ref{runeRef, first, second, joggingList, closing}), nil
}

// finishPrefixJogging parses "?@": rune, a jogging list, the "=="
// terminator, and a trailing tail Hoon.
func (p *Parser) finishPrefixJogging(runeRef cst.Ref) (cst.Ref, error) {
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	joggingList, err := p.parseJoggingList()
	if err != nil {
		return cst.None, err
	}
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	closing, err := p.expectTisTis()
	if err != nil {
		return cst.None, err
	}
	if err := p.expectGap(); err != nil {
		return cst.None, err
	}
	tail, err := p.parseHoon()
	if err != nil {
		return cst.None, err
	}
	return p.tr.NewNode(RuleTallWutpat, []cst.Ref{runeRef, joggingList, closing, tail}), nil
}
