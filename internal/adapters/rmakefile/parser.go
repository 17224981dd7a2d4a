package rmakefile

import (
	"io"
	"strings"

	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser turns RMakefile tokens into a BuildFile. Assignments are applied to
// the Environment as they are read, so a later assignment wins.
type Parser struct {
	lexer   *Lexer
	env     *domain.Environment
	current string
}

// NewParser creates a Parser over r that assigns variables into env.
func NewParser(r io.Reader, env *domain.Environment) *Parser {
	return &Parser{lexer: NewLexer(r), env: env}
}

// Parse reads r to the end and returns the declared rules.
func Parse(path string, r io.Reader, env *domain.Environment) (*domain.BuildFile, error) {
	return NewParser(r, env).Parse(path)
}

// Parse consumes every token and returns the BuildFile for path.
func (p *Parser) Parse(path string) (*domain.BuildFile, error) {
	bf := domain.NewBuildFile(path)
	for {
		tok, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case TokenEOF:
			return bf, nil
		case TokenRule:
			err = p.rule(bf, tok)
		case TokenCommand:
			err = p.command(bf, tok)
		case TokenAssignment:
			err = p.assignment(tok)
		}
		if err != nil {
			return nil, err
		}
	}
}

// rule handles `clean:` and `total: 1.o 2.o`.
func (p *Parser) rule(bf *domain.BuildFile, tok Token) error {
	name, deps, _ := strings.Cut(tok.Data, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return zerr.With(zerr.Wrap(domain.ErrInvalidRule, "rule has no target name"), "line", tok.Line)
	}
	if err := bf.AddRule(name, strings.Fields(deps)); err != nil {
		return zerr.With(zerr.Wrap(err, "cannot declare rule"), "line", tok.Line)
	}
	p.current = name
	return nil
}

func (p *Parser) command(bf *domain.BuildFile, tok Token) error {
	if p.current == "" {
		return zerr.With(zerr.Wrap(domain.ErrCommandBeforeTarget, "command has no rule"), "line", tok.Line)
	}
	return bf.AddCommand(p.current, tok.Data)
}

func (p *Parser) assignment(tok Token) error {
	name, value, _ := strings.Cut(tok.Data, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return zerr.With(zerr.Wrap(domain.ErrInvalidAssignment, "assignment has no name"), "line", tok.Line)
	}
	p.env.Set(name, strings.TrimSpace(value))
	return nil
}
