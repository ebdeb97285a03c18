package load

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"
)

// TypeKind discriminates the forms of a type expression.
type TypeKind uint8

// Type expression forms.
const (
	TypeNamed TypeKind = iota
	TypePointer
	TypeSlice
	TypeArray
	TypeMap
)

// TypeRef is a parsed type expression, e.g. `github.com/org/cw1.QueryMsg`,
// `*pkg.T`, `[]T`, `map[K]V` or `Msg[T, U]`.
type TypeRef struct {
	Kind    TypeKind
	Package string     // import path, named only. Empty for builtins and local types.
	Name    string     // named only
	Args    []*TypeRef // type arguments, named only
	Elem    *TypeRef   // pointer, slice, array and map value
	Key     *TypeRef   // map key
	Length  int        // array length
}

// String returns the canonical form of the type expression.
func (t *TypeRef) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *TypeRef) write(b *strings.Builder) {
	switch t.Kind {
	case TypePointer:
		b.WriteByte('*')
		t.Elem.write(b)
	case TypeSlice:
		b.WriteString("[]")
		t.Elem.write(b)
	case TypeArray:
		fmt.Fprintf(b, "[%d]", t.Length)
		t.Elem.write(b)
	case TypeMap:
		b.WriteString("map[")
		t.Key.write(b)
		b.WriteByte(']')
		t.Elem.write(b)
	default:
		if t.Package != "" {
			b.WriteString(t.Package)
			b.WriteByte('.')
		}
		b.WriteString(t.Name)
		if len(t.Args) > 0 {
			b.WriteByte('[')
			for i, a := range t.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				a.write(b)
			}
			b.WriteByte(']')
		}
	}
}

// Named returns the named type at the core of t, looking through pointers.
// It returns nil for slices, arrays and maps.
func (t *TypeRef) Named() *TypeRef {
	for t != nil && t.Kind == TypePointer {
		t = t.Elem
	}
	if t == nil || t.Kind != TypeNamed {
		return nil
	}
	return t
}

// ParseTypeRef parses a type expression.
func ParseTypeRef(s string) (*TypeRef, error) {
	p := &typeParser{src: s}
	p.next()
	t, err := p.parseType()
	if err != nil {
		return nil, fmt.Errorf("parse type %q: %w", s, err)
	}
	if p.tok != tokEOF {
		return nil, fmt.Errorf("parse type %q: unexpected %s after type", s, p.describe())
	}
	return t, nil
}

// MustParseTypeRef is like ParseTypeRef but panics on failure.
func MustParseTypeRef(s string) *TypeRef {
	t, err := ParseTypeRef(s)
	if err != nil {
		panic(err)
	}
	return t
}

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokWord
	tokNumber
	tokStar
	tokLBrack
	tokRBrack
	tokComma
	tokIllegal
)

type typeParser struct {
	src string
	off int
	tok tokenKind
	lit string
}

func isWordByte(c byte) bool {
	return c == '_' || c == '.' || c == '/' || c == '-' || c == '~' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c >= 0x80
}

// next advances to the next token.
func (p *typeParser) next() {
	for p.off < len(p.src) && (p.src[p.off] == ' ' || p.src[p.off] == '\t') {
		p.off++
	}
	if p.off >= len(p.src) {
		p.tok, p.lit = tokEOF, ""
		return
	}
	start := p.off
	switch c := p.src[p.off]; c {
	case '*':
		p.tok = tokStar
		p.off++
	case '[':
		p.tok = tokLBrack
		p.off++
	case ']':
		p.tok = tokRBrack
		p.off++
	case ',':
		p.tok = tokComma
		p.off++
	default:
		if !isWordByte(c) {
			p.tok = tokIllegal
			p.off++
			break
		}
		for p.off < len(p.src) && isWordByte(p.src[p.off]) {
			p.off++
		}
		p.tok = tokWord
		if _, err := strconv.Atoi(p.src[start:p.off]); err == nil {
			p.tok = tokNumber
		}
	}
	p.lit = p.src[start:p.off]
}

func (p *typeParser) describe() string {
	if p.tok == tokEOF {
		return "end of input"
	}
	return strconv.Quote(p.lit)
}

func (p *typeParser) expect(k tokenKind, what string) error {
	if p.tok != k {
		return fmt.Errorf("expected %s, found %s", what, p.describe())
	}
	p.next()
	return nil
}

func (p *typeParser) parseType() (*TypeRef, error) {
	switch p.tok {
	case tokStar:
		p.next()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &TypeRef{Kind: TypePointer, Elem: elem}, nil
	case tokLBrack:
		p.next()
		t := &TypeRef{Kind: TypeSlice}
		if p.tok == tokNumber {
			n, _ := strconv.Atoi(p.lit)
			t.Kind, t.Length = TypeArray, n
			p.next()
		}
		if err := p.expect(tokRBrack, `"]"`); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		t.Elem = elem
		return t, nil
	case tokWord:
		if p.lit == "map" {
			p.next()
			if p.tok != tokLBrack {
				return nil, fmt.Errorf(`expected "[" after map, found %s`, p.describe())
			}
			p.next()
			key, err := p.parseType()
			if err != nil {
				return nil, err
			}
			if err := p.expect(tokRBrack, `"]"`); err != nil {
				return nil, err
			}
			elem, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &TypeRef{Kind: TypeMap, Key: key, Elem: elem}, nil
		}
		return p.parseNamed()
	default:
		return nil, fmt.Errorf("expected type, found %s", p.describe())
	}
}

func (p *typeParser) parseNamed() (*TypeRef, error) {
	word := p.lit
	t := &TypeRef{Kind: TypeNamed, Name: word}
	if i := strings.LastIndexByte(word, '.'); i >= 0 {
		t.Package, t.Name = word[:i], word[i+1:]
		if !validImportPath(t.Package) {
			return nil, fmt.Errorf("invalid import path %q", t.Package)
		}
	}
	if !token.IsIdentifier(t.Name) {
		return nil, fmt.Errorf("invalid type name %q", t.Name)
	}
	p.next()
	if p.tok != tokLBrack {
		return t, nil
	}
	p.next()
	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}
		t.Args = append(t.Args, arg)
		if p.tok != tokComma {
			break
		}
		p.next()
	}
	if err := p.expect(tokRBrack, `"]"`); err != nil {
		return nil, err
	}
	return t, nil
}

func validImportPath(path string) bool {
	if path == "" || strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return false
	}
	for _, elem := range strings.Split(path, "/") {
		if elem == "" || elem == "." || elem == ".." || strings.HasPrefix(elem, ".") {
			return false
		}
	}
	return true
}
