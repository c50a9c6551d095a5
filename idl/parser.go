// Copyright 2026 The dds-fmu Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package idl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// entryFile is the name of the top-level IDL document a resources
// directory is expected to provide (§4.1, §6).
const entryFile = "dds-fmu.idl"

// Load parses resources/config/idl/dds-fmu.idl and every file it
// transitively #includes (relative to the same directory) into a single
// [Registry]. It fails with every diagnostic concatenated into one error
// if the entry file is missing or parsing fails anywhere (§4.1).
func Load(resourcesDir string) (*Registry, error) {
	idlDir := filepath.Join(resourcesDir, "config", "idl")
	entryPath := filepath.Join(idlDir, entryFile)

	if _, err := os.Stat(entryPath); err != nil {
		return nil, fmt.Errorf("idl: entry file missing: %w", err)
	}

	reg := newRegistry()
	p := &parser{reg: reg, dir: idlDir, visited: map[string]bool{}}

	var diags []string
	if err := p.parseFile(entryPath); err != nil {
		diags = append(diags, err.Error())
	}
	if len(diags) > 0 {
		return nil, fmt.Errorf("idl: parse failed:\n%s", strings.Join(diags, "\n"))
	}
	return reg, nil
}

type parser struct {
	reg     *Registry
	dir     string // include search path
	visited map[string]bool

	toks  []token
	pos   int
	file  string
	scope []string // module nesting, for scoped names
}

func (p *parser) parseFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if p.visited[abs] {
		return nil
	}
	p.visited[abs] = true

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("idl: reading %s: %w", path, err)
	}

	lx := newLexer(filepath.Base(path), string(data))
	toks, err := lx.tokenize()
	if err != nil {
		return err
	}

	// Save and restore the parser's token cursor so included files can be
	// parsed with the same recursive-descent machinery as the entry file.
	savedToks, savedPos, savedFile := p.toks, p.pos, p.file
	p.toks, p.pos, p.file = toks, 0, filepath.Base(path)
	defer func() { p.toks, p.pos, p.file = savedToks, savedPos, savedFile }()

	for !p.atEOF() {
		if p.peekPunct("#include") {
			p.next()
			name := p.expect(tokString).text
			if err := p.parseFile(filepath.Join(p.dir, name)); err != nil {
				return err
			}
			continue
		}
		if err := p.parseDeclaration(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) cur() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) atEOF() bool { return p.cur().kind == tokEOF }

func (p *parser) next() token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) peekPunct(s string) bool {
	t := p.cur()
	return t.kind == tokPunct && t.text == s
}

func (p *parser) peekIdent(s string) bool {
	t := p.cur()
	return t.kind == tokIdent && t.text == s
}

func (p *parser) errf(format string, args ...any) error {
	return fmt.Errorf("idl: %s:%d: %s", p.file, p.cur().line, fmt.Sprintf(format, args...))
}

func (p *parser) expect(kind tokenKind) token {
	return p.next()
}

func (p *parser) expectPunct(s string) error {
	if !p.peekPunct(s) {
		return p.errf("expected %q, got %q", s, p.cur().text)
	}
	p.next()
	return nil
}

// scopedName joins the current module scope with a local declaration
// name using "::", matching the convention spec.md's examples use
// ("Outer::Inner").
func (p *parser) scopedName(local string) string {
	if len(p.scope) == 0 {
		return local
	}
	return strings.Join(p.scope, "::") + "::" + local
}

func (p *parser) parseDeclaration() error {
	switch {
	case p.peekIdent("module"):
		return p.parseModule()
	case p.peekIdent("struct"):
		_, err := p.parseNamedStruct()
		return err
	case p.peekIdent("enum"):
		_, err := p.parseNamedEnum()
		return err
	case p.peekIdent("union"):
		_, err := p.parseNamedUnion()
		return err
	case p.peekIdent("typedef"):
		return p.parseTypedef()
	case p.peekIdent("const"):
		return p.skipConst()
	default:
		return p.errf("unexpected token %q at top level", p.cur().text)
	}
}

func (p *parser) parseModule() error {
	p.next() // "module"
	name := p.next().text
	p.scope = append(p.scope, name)
	if err := p.expectPunct("{"); err != nil {
		return err
	}
	for !p.peekPunct("}") {
		if p.atEOF() {
			return p.errf("unterminated module %q", name)
		}
		if err := p.parseDeclaration(); err != nil {
			return err
		}
	}
	p.next() // "}"
	if p.peekPunct(";") {
		p.next()
	}
	p.scope = p.scope[:len(p.scope)-1]
	return nil
}

// skipConst discards a "const <type> NAME = <literal>;" declaration --
// constants do not participate in the FMI signal mapping.
func (p *parser) skipConst() error {
	for !p.peekPunct(";") && !p.atEOF() {
		p.next()
	}
	if p.peekPunct(";") {
		p.next()
	}
	return nil
}

func (p *parser) parseNamedStruct() (*Type, error) {
	p.next() // "struct"
	local := p.next().text
	name := p.scopedName(local)
	t := &Type{Kind: KindStruct, Name: name, Struct: &StructType{}}
	if err := p.reg.define(name, t); err != nil {
		return nil, p.errf("%v", err)
	}
	members, err := p.parseMemberBlock()
	if err != nil {
		return nil, err
	}
	t.Struct.Members = members
	if p.peekPunct(";") {
		p.next()
	}
	return t, nil
}

func (p *parser) parseMemberBlock() ([]Member, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var members []Member
	for !p.peekPunct("}") {
		if p.atEOF() {
			return nil, p.errf("unterminated member list")
		}
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	p.next() // "}"
	return members, nil
}

func (p *parser) parseMember() (Member, error) {
	var m Member
	for p.cur().kind == tokAnnotation {
		switch p.cur().text {
		case "@key":
			m.IsKey = true
		case "@optional":
			m.IsOptional = true
		}
		p.next()
	}
	ty, err := p.parseTypeSpec()
	if err != nil {
		return Member{}, err
	}
	m.Name = p.next().text
	dims, err := p.parseArrayDims()
	if err != nil {
		return Member{}, err
	}
	if len(dims) > 0 {
		ty = &Type{Kind: KindArray, Array: &ArrayType{Element: ty, Dims: dims}}
	}
	m.Type = ty
	if err := p.expectPunct(";"); err != nil {
		return Member{}, err
	}
	return m, nil
}

func (p *parser) parseArrayDims() ([]int, error) {
	var dims []int
	for p.peekPunct("[") {
		p.next()
		n := p.next()
		if n.kind != tokInt {
			return nil, p.errf("expected array bound, got %q", n.text)
		}
		dims = append(dims, int(n.val))
		if err := p.expectPunct("]"); err != nil {
			return nil, err
		}
	}
	return dims, nil
}

var primitiveKeywords = map[string]Kind{
	"boolean":  KindBool,
	"int8":     KindInt8,
	"int16":    KindInt16,
	"short":    KindInt16,
	"int32":    KindInt32,
	"long":     KindInt32,
	"int64":    KindInt64,
	"longlong": KindInt64,
	"uint8":    KindUint8,
	"octet":    KindUint8,
	"uint16":   KindUint16,
	"unsigned_short": KindUint16,
	"uint32":   KindUint32,
	"unsigned_long": KindUint32,
	"uint64":   KindUint64,
	"unsigned_longlong": KindUint64,
	"float":    KindFloat32,
	"float32":  KindFloat32,
	"double":   KindFloat64,
	"float64":  KindFloat64,
	"longdouble": KindFloat128,
	"float128": KindFloat128,
	"char":     KindChar8,
	"char8":    KindChar8,
	"char16":   KindChar16,
	"wchar":    KindWChar,
	"string":   KindString,
	"wstring":  KindWString,
	"bitset":   KindBitset,
}

// parseTypeSpec parses a type occurring where a type is expected: a
// primitive keyword, a bounded/unbounded string, a sequence, a map, a
// named reference (possibly scoped, "Outer::Inner"), or an anonymous
// inline struct/enum/union literal (§3 permits these; spec.md's own
// example nests an anonymous struct inside another as an array element).
func (p *parser) parseTypeSpec() (*Type, error) {
	switch {
	case p.peekIdent("struct"):
		return p.parseAnonStruct()
	case p.peekIdent("enum"):
		return p.parseAnonEnum()
	case p.peekIdent("union"):
		return p.parseAnonUnion()
	case p.peekIdent("sequence"):
		return p.parseSequence()
	case p.peekIdent("map"):
		return p.parseMap()
	case p.peekIdent("string"), p.peekIdent("wstring"):
		return p.parseStringLike()
	}

	t := p.cur()
	if t.kind != tokIdent {
		return nil, p.errf("expected a type, got %q", t.text)
	}
	p.next()
	if kind, ok := primitiveKeywords[t.text]; ok {
		return &Type{Kind: kind}, nil
	}
	// A name is looked up relative to the innermost enclosing module
	// first, then each outer module, then as written.
	for i := len(p.scope); i >= 0; i-- {
		name := t.text
		if i > 0 {
			name = strings.Join(p.scope[:i], "::") + "::" + t.text
		}
		if resolved, ok := p.reg.Lookup(name); ok {
			return resolved, nil
		}
	}
	return nil, p.errf("undefined type %q", t.text)
}

func (p *parser) parseStringLike() (*Type, error) {
	kw := p.next().text
	kind := KindString
	if kw == "wstring" {
		kind = KindWString
	}
	if p.peekPunct("<") {
		p.next()
		p.next() // bound literal, not tracked -- FMI strings are unbounded
		if err := p.expectPunct(">"); err != nil {
			return nil, err
		}
	}
	return &Type{Kind: kind}, nil
}

func (p *parser) parseSequence() (*Type, error) {
	p.next() // "sequence"
	if err := p.expectPunct("<"); err != nil {
		return nil, err
	}
	if _, err := p.parseTypeSpec(); err != nil {
		return nil, err
	}
	if p.peekPunct(",") {
		p.next()
		p.next() // bound literal
	}
	if err := p.expectPunct(">"); err != nil {
		return nil, err
	}
	return &Type{Kind: KindSequence}, nil
}

func (p *parser) parseMap() (*Type, error) {
	p.next() // "map"
	if err := p.expectPunct("<"); err != nil {
		return nil, err
	}
	if _, err := p.parseTypeSpec(); err != nil {
		return nil, err
	}
	if err := p.expectPunct(","); err != nil {
		return nil, err
	}
	if _, err := p.parseTypeSpec(); err != nil {
		return nil, err
	}
	if p.peekPunct(",") {
		p.next()
		p.next() // bound literal
	}
	if err := p.expectPunct(">"); err != nil {
		return nil, err
	}
	return &Type{Kind: KindMap}, nil
}

func (p *parser) parseAnonStruct() (*Type, error) {
	p.next() // "struct"
	members, err := p.parseMemberBlock()
	if err != nil {
		return nil, err
	}
	return &Type{Kind: KindStruct, Struct: &StructType{Members: members}}, nil
}

func (p *parser) parseEnumBody() ([]Enumerator, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var enumerators []Enumerator
	var next uint32
	for !p.peekPunct("}") {
		if p.atEOF() {
			return nil, p.errf("unterminated enum body")
		}
		name := p.next().text
		val := next
		if p.peekPunct("=") {
			p.next()
			lit := p.next()
			val = uint32(lit.val)
		}
		enumerators = append(enumerators, Enumerator{Name: name, Value: val})
		next = val + 1
		if p.peekPunct(",") {
			p.next()
		}
	}
	p.next() // "}"
	return enumerators, nil
}

func (p *parser) parseAnonEnum() (*Type, error) {
	p.next() // "enum"
	enumerators, err := p.parseEnumBody()
	if err != nil {
		return nil, err
	}
	return &Type{Kind: KindEnum, Enum: &EnumType{Enumerators: enumerators}}, nil
}

func (p *parser) parseNamedEnum() (*Type, error) {
	p.next() // "enum"
	local := p.next().text
	name := p.scopedName(local)
	enumerators, err := p.parseEnumBody()
	if err != nil {
		return nil, err
	}
	t := &Type{Kind: KindEnum, Name: name, Enum: &EnumType{Enumerators: enumerators}}
	if err := p.reg.define(name, t); err != nil {
		return nil, p.errf("%v", err)
	}
	if p.peekPunct(";") {
		p.next()
	}
	return t, nil
}

func (p *parser) parseUnionBody(disc *Type) ([]UnionCase, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var cases []UnionCase
	for !p.peekPunct("}") {
		if p.atEOF() {
			return nil, p.errf("unterminated union body")
		}
		var labels []int64
		for p.peekIdent("case") || p.peekIdent("default") {
			isDefault := p.peekIdent("default")
			p.next()
			if !isDefault {
				lbl, err := p.parseUnionLabel(disc)
				if err != nil {
					return nil, err
				}
				labels = append(labels, lbl)
			}
			if err := p.expectPunct(":"); err != nil {
				return nil, err
			}
		}
		m, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		cases = append(cases, UnionCase{Labels: labels, Member: m})
	}
	p.next() // "}"
	return cases, nil
}

func (p *parser) parseUnionLabel(disc *Type) (int64, error) {
	t := p.next()
	if t.kind == tokInt {
		return t.val, nil
	}
	if Resolve(disc) != nil && Resolve(disc).Kind == KindEnum {
		for _, e := range Resolve(disc).Enum.Enumerators {
			if e.Name == t.text {
				return int64(e.Value), nil
			}
		}
	}
	return 0, p.errf("unrecognized union case label %q", t.text)
}

func (p *parser) parseAnonUnion() (*Type, error) {
	p.next() // "union"
	if !p.peekIdent("switch") {
		return nil, p.errf("expected 'switch' in union")
	}
	p.next()
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	disc, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	cases, err := p.parseUnionBody(disc)
	if err != nil {
		return nil, err
	}
	return &Type{Kind: KindUnion, Union: &UnionType{Discriminator: disc, Cases: cases}}, nil
}

func (p *parser) parseNamedUnion() (*Type, error) {
	p.next() // "union"
	local := p.next().text
	name := p.scopedName(local)
	if p.peekIdent("switch") {
		p.next()
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	disc, err := p.parseTypeSpec()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	t := &Type{Kind: KindUnion, Name: name, Union: &UnionType{Discriminator: disc}}
	if err := p.reg.define(name, t); err != nil {
		return nil, p.errf("%v", err)
	}
	cases, err := p.parseUnionBody(disc)
	if err != nil {
		return nil, err
	}
	t.Union.Cases = cases
	if p.peekPunct(";") {
		p.next()
	}
	return t, nil
}

func (p *parser) parseTypedef() error {
	p.next() // "typedef"
	underlying, err := p.parseTypeSpec()
	if err != nil {
		return err
	}
	local := p.next().text
	name := p.scopedName(local)
	dims, err := p.parseArrayDims()
	if err != nil {
		return err
	}
	if len(dims) > 0 {
		underlying = &Type{Kind: KindArray, Array: &ArrayType{Element: underlying, Dims: dims}}
	}
	t := &Type{Kind: KindAlias, Name: name, Alias: underlying}
	if err := p.reg.define(name, t); err != nil {
		return p.errf("%v", err)
	}
	return p.expectPunct(";")
}
