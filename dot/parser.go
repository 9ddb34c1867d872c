package dot

import "fmt"

// Parse parses DOT source text and returns a Graph.
// Returns a *SyntaxError, *LexError, or *ValueError on failure.
func Parse(src []byte) (*Graph, error) {
	p := &parser{
		lex:   NewLexer(src),
		nodes: make(map[string]*Node),
	}
	return p.parseGraph()
}

type parser struct {
	lex          *Lexer
	nodeDefaults Attrs
	edgeDefaults Attrs
	nodes        map[string]*Node // dedup by ID
	nodeOrder    []string         // preserve first-seen order
	edges        []*Edge
	graphAttrs   Attrs
	subgraphs    []*Subgraph
	open         []*Subgraph // enclosing blocks, innermost last
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, unexpected(kind.String(), tok)
	}
	return tok, nil
}

func unexpected(expected string, tok Token) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Pos: tok.Pos},
		Expected:   expected,
		Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
	}
}

func (p *parser) consumeOptionalSemicolon() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	if tok.Kind == TokenSemicolon {
		_, _ = p.next()
	}
	return nil
}

// ensureNode registers a node if it does not already exist.
// Returns the existing or newly created node.
func (p *parser) ensureNode(id string, pos Position) *Node {
	if n, ok := p.nodes[id]; ok {
		return n
	}
	n := &Node{
		ID:    id,
		Attrs: copyAttrs(p.nodeDefaults),
		Pos:   pos,
	}
	p.nodes[id] = n
	p.nodeOrder = append(p.nodeOrder, id)
	for _, sg := range p.open {
		sg.Nodes = append(sg.Nodes, id)
	}
	return n
}

func (p *parser) parseGraph() (*Graph, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenIdentifier && tok.Literal == "strict" {
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: "strict modifier is not supported",
				Pos:     tok.Pos,
			},
			Expected: "'digraph'",
			Got:      "'strict'",
		}
	}

	if _, err := p.expect(TokenDigraph); err != nil {
		return nil, err
	}

	// Optional graph name
	var name string
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenIdentifier || tok.Kind == TokenString {
		nameTok, _ := p.next()
		name = nameTok.Literal
	}

	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	if err := p.parseStatements(); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}

	// Reject trailing content (one digraph per document)
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: "only one digraph per document is allowed",
				Pos:     tok.Pos,
			},
			Expected: "EOF",
			Got:      fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}

	nodes := make([]*Node, 0, len(p.nodeOrder))
	for _, id := range p.nodeOrder {
		nodes = append(nodes, p.nodes[id])
	}

	return &Graph{
		Name:       name,
		GraphAttrs: p.graphAttrs,
		Nodes:      nodes,
		Edges:      p.edges,
		Subgraphs:  p.subgraphs,
	}, nil
}

// parseStatements parses statements up to, but not including, the closing brace.
func (p *parser) parseStatements() error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Kind == TokenRBrace || tok.Kind == TokenEOF {
			return nil
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
}

func (p *parser) parseStatement() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}

	switch tok.Kind {
	case TokenSemicolon:
		_, _ = p.next()
		return nil

	case TokenGraph:
		return p.parseGraphDefaults()

	case TokenNode:
		return p.parseNodeDefaults()

	case TokenEdge:
		return p.parseEdgeDefaults()

	case TokenSubgraph, TokenLBrace:
		return p.parseSubgraph()

	case TokenIdentifier, TokenString, TokenInteger, TokenFloat:
		return p.parseIDStatement()

	default:
		return unexpected("statement", tok)
	}
}

// parseGraphDefaults handles 'graph [attrs]'.
func (p *parser) parseGraphDefaults() error {
	_, _ = p.next() // consume 'graph'

	attrs, err := p.parseAttrBlock()
	if err != nil {
		return err
	}
	p.declareGraphAttrs(attrs...)
	return p.consumeOptionalSemicolon()
}

// parseNodeDefaults handles 'node [attrs]'.
func (p *parser) parseNodeDefaults() error {
	_, _ = p.next() // consume 'node'

	attrs, err := p.parseAttrBlock()
	if err != nil {
		return err
	}
	p.nodeDefaults = mergeAttrs(p.nodeDefaults, attrs)
	return p.consumeOptionalSemicolon()
}

// parseEdgeDefaults handles 'edge [attrs]'.
func (p *parser) parseEdgeDefaults() error {
	_, _ = p.next() // consume 'edge'

	attrs, err := p.parseAttrBlock()
	if err != nil {
		return err
	}
	p.edgeDefaults = mergeAttrs(p.edgeDefaults, attrs)
	return p.consumeOptionalSemicolon()
}

// parseIDStatement handles an ID at the start of a statement.
// Disambiguates between a graph attribute, an edge chain and a node statement.
func (p *parser) parseIDStatement() error {
	tok, _ := p.next() // consume ID

	next, err := p.peek()
	if err != nil {
		return err
	}

	switch next.Kind {
	case TokenEquals:
		// key = value
		_, _ = p.next()
		val, err := p.parseValue()
		if err != nil {
			return err
		}
		p.declareGraphAttrs(Attr{Key: tok.Literal, Value: val, Pos: tok.Pos})
		return p.consumeOptionalSemicolon()
	case TokenArrow:
		// A -> B -> C [attrs]
		return p.parseEdgeChain(tok.Literal, tok.Pos)
	default:
		// A [attrs]
		return p.parseNodeBody(tok.Literal, tok.Pos)
	}
}

// declareGraphAttrs records attributes on the innermost open subgraph, or on
// the graph itself at top level.
func (p *parser) declareGraphAttrs(attrs ...Attr) {
	if len(p.open) > 0 {
		sg := p.open[len(p.open)-1]
		sg.Attrs = append(sg.Attrs, attrs...)
		return
	}
	p.graphAttrs = append(p.graphAttrs, attrs...)
}

// parseNodeBody parses the optional attribute block and semicolon of a node statement.
func (p *parser) parseNodeBody(id string, pos Position) error {
	explicit, err := p.parseOptionalAttrBlock()
	if err != nil {
		return err
	}

	n := p.ensureNode(id, pos)
	n.Attrs = mergeAttrs(n.Attrs, explicit)
	n.Declared = true

	return p.consumeOptionalSemicolon()
}

// parseEdgeChain parses '->' ID ('->' ID)* AttrBlock? ';'?
func (p *parser) parseEdgeChain(firstID string, pos Position) error {
	ids := []string{firstID}
	positions := []Position{pos}

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Kind != TokenArrow {
			break
		}
		_, _ = p.next() // consume ->

		target, err := p.expectNodeID()
		if err != nil {
			return err
		}
		ids = append(ids, target.Literal)
		positions = append(positions, target.Pos)
	}

	explicit, err := p.parseOptionalAttrBlock()
	if err != nil {
		return err
	}
	merged := mergeAttrs(p.edgeDefaults, explicit)

	for i, id := range ids {
		p.ensureNode(id, positions[i])
	}

	// One edge per consecutive pair
	for i := 0; i < len(ids)-1; i++ {
		edge := &Edge{
			From:  ids[i],
			To:    ids[i+1],
			Attrs: copyAttrs(merged),
			Pos:   positions[i],
		}
		p.edges = append(p.edges, edge)
		for _, sg := range p.open {
			sg.Edges = append(sg.Edges, edge)
		}
	}

	return p.consumeOptionalSemicolon()
}

// expectNodeID expects a token that can name a node.
func (p *parser) expectNodeID() (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case TokenIdentifier, TokenString, TokenInteger, TokenFloat:
		return tok, nil
	default:
		return Token{}, unexpected("node identifier", tok)
	}
}

// parseSubgraph parses 'subgraph Name? { ... }' or an anonymous '{ ... }'.
// Node and edge defaults set inside the block do not leak out of it.
func (p *parser) parseSubgraph() error {
	tok, _ := p.peek()
	sg := &Subgraph{Pos: tok.Pos}

	if tok.Kind == TokenSubgraph {
		_, _ = p.next()
		nameTok, err := p.peek()
		if err != nil {
			return err
		}
		if nameTok.Kind == TokenIdentifier || nameTok.Kind == TokenString {
			_, _ = p.next()
			sg.Name = nameTok.Literal
		}
	}

	if _, err := p.expect(TokenLBrace); err != nil {
		return err
	}

	savedNodeDefaults := copyAttrs(p.nodeDefaults)
	savedEdgeDefaults := copyAttrs(p.edgeDefaults)
	p.subgraphs = append(p.subgraphs, sg)
	p.open = append(p.open, sg)

	if err := p.parseStatements(); err != nil {
		return err
	}
	if _, err := p.expect(TokenRBrace); err != nil {
		return err
	}

	p.open = p.open[:len(p.open)-1]
	p.nodeDefaults = savedNodeDefaults
	p.edgeDefaults = savedEdgeDefaults

	return p.consumeOptionalSemicolon()
}

func (p *parser) parseOptionalAttrBlock() (Attrs, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenLBracket {
		return nil, nil
	}
	return p.parseAttrBlock()
}

func (p *parser) parseAttrBlock() (Attrs, error) {
	if _, err := p.expect(TokenLBracket); err != nil {
		return nil, err
	}

	var attrs Attrs
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenRBracket:
			_, _ = p.next()
			return attrs, nil
		case TokenComma, TokenSemicolon:
			// separators are optional; trailing ones are allowed
			_, _ = p.next()
			continue
		}

		attr, err := p.parseAttr()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
}

func (p *parser) parseAttr() (Attr, error) {
	keyTok, err := p.next()
	if err != nil {
		return Attr{}, err
	}
	switch keyTok.Kind {
	case TokenIdentifier, TokenString, TokenGraph, TokenNode, TokenEdge:
	default:
		return Attr{}, unexpected("attribute key", keyTok)
	}

	if _, err := p.expect(TokenEquals); err != nil {
		return Attr{}, err
	}

	val, err := p.parseValue()
	if err != nil {
		return Attr{}, err
	}

	return Attr{Key: keyTok.Literal, Value: val, Pos: keyTok.Pos}, nil
}

func (p *parser) parseValue() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return Value{}, err
	}
	return ParseValue(tok)
}

// mergeAttrs produces a final attribute list by starting with defaults and
// overlaying explicit attrs. Explicit attrs with the same key replace defaults.
func mergeAttrs(defaults, explicit Attrs) Attrs {
	if len(defaults) == 0 {
		return copyAttrs(explicit)
	}
	if len(explicit) == 0 {
		return copyAttrs(defaults)
	}

	overridden := make(map[string]bool, len(explicit))
	for _, a := range explicit {
		overridden[a.Key] = true
	}

	result := make(Attrs, 0, len(defaults)+len(explicit))
	for _, a := range defaults {
		if !overridden[a.Key] {
			result = append(result, a)
		}
	}
	return append(result, explicit...)
}

func copyAttrs(attrs Attrs) Attrs {
	if attrs == nil {
		return nil
	}
	cp := make(Attrs, len(attrs))
	copy(cp, attrs)
	return cp
}
