// Package parser builds the closed set of AST node variants the evaluator
// core consumes (SPEC_FULL.md §4.8) from a token stream. Grounded on the
// teacher's recursive-descent parser shape (curToken/peekToken, an
// accumulated error list rather than a panic on the first syntax fault) but
// scaled down to this language's much smaller grammar, with a precedence
// table for binary operators instead of the teacher's cursor/builder
// machinery.
package parser

import (
	"fmt"
	"strconv"

	"github.com/otieno-dev/lugha/internal/ast"
	"github.com/otieno-dev/lugha/internal/lexer"
	"github.com/otieno-dev/lugha/internal/token"
)

// Error is a syntax fault: an unexpected token where the grammar required
// something else.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string { return fmt.Sprintf("%s at %s", e.Message, e.Pos) }

// precedence levels, lowest to highest, matching SPEC_FULL.md §4.8:
// || < && < equality < relational < + - < * / < ^ (right-assoc) < unary < call.
const (
	_ int = iota
	precLowest
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precPower
	precUnary
	precCall
)

var binaryPrecedence = map[token.Type]int{
	token.OR:    precOr,
	token.AND:   precAnd,
	token.EE:    precEquality,
	token.NE:    precEquality,
	token.LT:    precRelational,
	token.GT:    precRelational,
	token.LTE:   precRelational,
	token.GTE:   precRelational,
	token.PLUS:  precAdditive,
	token.MINUS: precAdditive,
	token.MUL:   precMultiplicative,
	token.DIV:   precMultiplicative,
	token.POW:   precPower,
}

// Parser consumes a Lexer's token stream and produces an ast.Node tree.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token

	errors []*Error
}

// New creates a Parser reading from lex. It primes cur/peek with the first
// two tokens.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.next()
	p.next()
	return p
}

// Errors returns every syntax error accumulated during Parse.
func (p *Parser) Errors() []*Error { return p.errors }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) addError(format string, args ...any) {
	p.errors = append(p.errors, &Error{Message: fmt.Sprintf(format, args...), Pos: p.cur.Pos})
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect advances past cur if it has type t, recording an error otherwise.
// Returns whether cur matched.
func (p *Parser) expect(t token.Type) bool {
	if p.curIs(t) {
		p.next()
		return true
	}
	p.addError("expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
	return false
}

// skipTerminators consumes any run of NEWLINE/SEMICOLON tokens, the
// statement separators between a program's top-level and block statements.
func (p *Parser) skipTerminators() {
	for p.curIs(token.NEWLINE) || p.curIs(token.SEMICOLON) {
		p.next()
	}
}

// Parse parses the entire token stream into a single StatementsNode. It
// never panics: syntax faults are recorded via Errors() and parsing
// continues on a best-effort basis so multiple faults can be reported from
// one pass, matching the lexer's accumulate-and-continue discipline.
func (p *Parser) Parse() *ast.StatementsNode {
	start := p.cur.Pos
	var stmts []ast.Node
	p.skipTerminators()
	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			// Avoid an infinite loop on an unparseable token.
			p.next()
		}
		p.skipTerminators()
	}
	return &ast.StatementsNode{Span: ast.NewSpan(start, p.cur.Pos), Statements: stmts}
}

func (p *Parser) parseStatement() ast.Node {
	switch p.cur.Type {
	case token.KAMA:
		return p.parseIf()
	case token.KWA:
		return p.parseFor()
	case token.WAKATI:
		return p.parseWhile()
	case token.SHUGHULI:
		return p.parseFuncDef()
	case token.RUDISHA:
		return p.parseReturn()
	default:
		if p.curIs(token.IDENT) && p.peekIs(token.ASSIGN) {
			return p.parseAssignment()
		}
		return p.parseExpression(precLowest)
	}
}

// parseReturn parses "rudisha <expr>" as a plain tail expression: the
// keyword is consumed and only the expression node is kept, since
// StatementsNode already evaluates to its last statement's value.
func (p *Parser) parseReturn() ast.Node {
	p.next() // consume 'rudisha'
	if p.curIs(token.NEWLINE) || p.curIs(token.SEMICOLON) || p.curIs(token.RBRACE) || p.curIs(token.EOF) {
		return &ast.VarAccessNode{Span: ast.NewSpan(p.cur.Pos, p.cur.Pos), Name: "tupu"}
	}
	return p.parseExpression(precLowest)
}

func (p *Parser) parseAssignment() ast.Node {
	start := p.cur.Pos
	name := p.cur.Literal
	p.next() // ident
	p.next() // '='
	value := p.parseExpression(precLowest)
	return &ast.VarAssignNode{Span: ast.NewSpan(start, p.cur.Pos), Name: name, Value: value}
}

// parseBlock parses "{ statements }".
func (p *Parser) parseBlock() ast.Node {
	start := p.cur.Pos
	if !p.expect(token.LBRACE) {
		return &ast.StatementsNode{Span: ast.NewSpan(start, start)}
	}
	p.skipTerminators()
	var stmts []ast.Node
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		} else {
			p.next()
		}
		p.skipTerminators()
	}
	end := p.cur.Pos
	p.expect(token.RBRACE)
	return &ast.StatementsNode{Span: ast.NewSpan(start, end), Statements: stmts}
}

func (p *Parser) parseIf() ast.Node {
	start := p.cur.Pos
	node := &ast.IfNode{Span: ast.NewSpan(start, start)}

	p.next() // 'kama'
	cond := p.parseExpression(precLowest)
	body := p.parseBlock()
	node.Cases = append(node.Cases, ast.IfCase{Condition: cond, Body: body})

	// A "vinginevyo" clause may start on a later line than the closing
	// brace before it; newlines are only consumed when one follows.
	skipNewlinesBeforeElse := func() {
		for p.curIs(token.NEWLINE) && (p.peekIs(token.NEWLINE) || p.peekIs(token.VINGINEVYO)) {
			p.next()
		}
	}

	skipNewlinesBeforeElse()
	for p.curIs(token.VINGINEVYO) {
		p.next() // 'vinginevyo'
		if p.curIs(token.KAMA) {
			p.next() // 'kama'
			elifCond := p.parseExpression(precLowest)
			elifBody := p.parseBlock()
			node.Cases = append(node.Cases, ast.IfCase{Condition: elifCond, Body: elifBody})
			skipNewlinesBeforeElse()
			continue
		}
		node.ElseCase = p.parseBlock()
		break
	}

	node.End = p.cur.Pos
	return node
}

// parseFor parses "kwa <ident> = <start> mpaka <end> [hatua <step>] { body }".
func (p *Parser) parseFor() ast.Node {
	start := p.cur.Pos
	p.next() // 'kwa'

	varName := p.cur.Literal
	p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	startNode := p.parseExpression(precLowest)
	p.expect(token.MPAKA)
	endNode := p.parseExpression(precLowest)

	var stepNode ast.Node
	if p.curIs(token.HATUA) {
		p.next()
		stepNode = p.parseExpression(precLowest)
	}

	body := p.parseBlock()
	return &ast.ForNode{
		Span: ast.NewSpan(start, p.cur.Pos), VarName: varName,
		StartNode: startNode, EndNode: endNode, StepNode: stepNode, BodyNode: body,
	}
}

func (p *Parser) parseWhile() ast.Node {
	start := p.cur.Pos
	p.next() // 'wakati'
	cond := p.parseExpression(precLowest)
	body := p.parseBlock()
	return &ast.WhileNode{Span: ast.NewSpan(start, p.cur.Pos), ConditionNode: cond, BodyNode: body}
}

// parseFuncDef parses "shughuli [name] ( params ) { body }".
func (p *Parser) parseFuncDef() ast.Node {
	start := p.cur.Pos
	p.next() // 'shughuli'

	name := ""
	if p.curIs(token.IDENT) {
		name = p.cur.Literal
		p.next()
	}

	p.expect(token.LPAREN)
	var params []string
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if p.curIs(token.IDENT) {
			params = append(params, p.cur.Literal)
			p.next()
		}
		if p.curIs(token.COMMA) {
			p.next()
		}
	}
	p.expect(token.RPAREN)

	body := p.parseBlock()
	return &ast.FuncDefNode{Span: ast.NewSpan(start, p.cur.Pos), Name: name, ParamNames: params, BodyNode: body}
}

// parseExpression implements precedence climbing: parse a unary/primary
// term, then fold in binary operators whose precedence is >= minPrec. ^
// (POW) is right-associative; every other operator is left-associative.
func (p *Parser) parseExpression(minPrec int) ast.Node {
	left := p.parseUnary()

	for {
		prec, ok := binaryPrecedence[p.cur.Type]
		if !ok || prec < minPrec {
			return left
		}
		op := p.cur.Type
		start := left.PosStart()
		p.next()

		nextMinPrec := prec + 1
		if op == token.POW {
			nextMinPrec = prec // right-associative: same precedence recurses
		}
		right := p.parseExpression(nextMinPrec)
		left = &ast.BinOpNode{Span: ast.NewSpan(start, right.PosEnd()), Left: left, Op: op, Right: right}
	}
}

func (p *Parser) parseUnary() ast.Node {
	if p.curIs(token.MINUS) || p.curIs(token.NOT) {
		start := p.cur.Pos
		op := p.cur.Type
		p.next()
		operand := p.parseExpression(precUnary)
		return &ast.UnaryOpNode{Span: ast.NewSpan(start, operand.PosEnd()), Op: op, Node: operand}
	}
	return p.parseCallOrPrimary()
}

// parseCallOrPrimary parses a primary expression, then any trailing "(args)"
// call suffixes (e.g. gen(10)(5)).
func (p *Parser) parseCallOrPrimary() ast.Node {
	node := p.parsePrimary()
	for p.curIs(token.LPAREN) {
		node = p.parseCallArgs(node)
	}
	return node
}

func (p *Parser) parseCallArgs(callee ast.Node) ast.Node {
	start := callee.PosStart()
	p.next() // '('
	var args []ast.Node
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		args = append(args, p.parseExpression(precLowest))
		if p.curIs(token.COMMA) {
			p.next()
		}
	}
	end := p.cur.Pos
	p.expect(token.RPAREN)
	return &ast.CallNode{Span: ast.NewSpan(start, end), Callee: callee, Args: args}
}

func (p *Parser) parsePrimary() ast.Node {
	switch p.cur.Type {
	case token.NUMBER:
		return p.parseNumber()
	case token.STRING:
		return p.parseString()
	case token.KWELI, token.UWONGO, token.TUPU:
		return p.parseSentinel()
	case token.IDENT:
		return p.parseIdent()
	case token.SHUGHULI:
		return p.parseFuncDef()
	case token.LPAREN:
		return p.parseGrouped()
	case token.LBRACKET:
		return p.parseList()
	default:
		pos := p.cur.Pos
		p.addError("unexpected token %s (%q)", p.cur.Type, p.cur.Literal)
		p.next()
		return &ast.VarAccessNode{Span: ast.NewSpan(pos, pos), Name: "tupu"}
	}
}

func (p *Parser) parseNumber() ast.Node {
	lit := p.cur
	n, err := strconv.ParseFloat(lit.Literal, 64)
	if err != nil {
		p.addError("invalid number literal %q", lit.Literal)
	}
	p.next()
	return &ast.NumberNode{Span: ast.NewSpan(lit.Pos, lit.Pos), Value: n}
}

func (p *Parser) parseString() ast.Node {
	lit := p.cur
	p.next()
	return &ast.StringNode{Span: ast.NewSpan(lit.Pos, lit.Pos), Value: lit.Literal}
}

// parseSentinel parses kweli/uwongo/tupu as a bare name lookup: the global
// SymbolTable is pre-populated with these bindings (spec.md §3), so the
// parser needn't invent dedicated literal AST nodes for them.
func (p *Parser) parseSentinel() ast.Node {
	lit := p.cur
	p.next()
	return &ast.VarAccessNode{Span: ast.NewSpan(lit.Pos, lit.Pos), Name: lit.Literal}
}

func (p *Parser) parseIdent() ast.Node {
	lit := p.cur
	p.next()
	return &ast.VarAccessNode{Span: ast.NewSpan(lit.Pos, lit.Pos), Name: lit.Literal}
}

func (p *Parser) parseGrouped() ast.Node {
	p.next() // '('
	expr := p.parseExpression(precLowest)
	p.expect(token.RPAREN)
	return expr
}

func (p *Parser) parseList() ast.Node {
	start := p.cur.Pos
	p.next() // '['
	var elements []ast.Node
	for !p.curIs(token.RBRACKET) && !p.curIs(token.EOF) {
		elements = append(elements, p.parseExpression(precLowest))
		if p.curIs(token.COMMA) {
			p.next()
		}
	}
	end := p.cur.Pos
	p.expect(token.RBRACKET)
	return &ast.ListNode{Span: ast.NewSpan(start, end), Elements: elements}
}
