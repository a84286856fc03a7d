package grammar

import "github.com/alecthomas/participle/v2/lexer"

type File struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Decls  []*Decl `@@*`
}

type Decl struct {
	Event    *Event    `  @@`
	Let      *Let      `| @@`
	Function *Function `| @@`
}

type Name struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

type Event struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   Name `"event" @@ ";"`
}

type Let struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   Name  `"let" @@ "="`
	Value  *Expr `@@ ";"`
}

type Function struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   Name   `@@ "("`
	Params []Name `( @@ ( "," @@ )* )? ")"`
	Body   *Block `@@`
}

type Block struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Stmts  []*Stmt `"{" @@* "}"`
}

type Stmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Let    *Let    `  @@`
	Emit   *Emit   `| @@`
	Return *Return `| @@`
	Assign *Assign `| @@`
	Expr   *Expr   `| @@ ";"`
}

type Emit struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Event  Name `"emit" @@ ";"`
}

type Return struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  *Expr `"return" @@? ";"`
}

type Assign struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Target Name  `@@ "="`
	Value  *Expr `@@ ";"`
}

// Expr and Term encode precedence: '*' binds tighter than '+' and '-'.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Term     `@@`
	Rest   []*OpTerm `@@*`
}

type OpTerm struct {
	Op   string `@("+" | "-")`
	Term *Term  `@@`
}

type Term struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *Factor     `@@`
	Rest   []*OpFactor `@@*`
}

type OpFactor struct {
	Op     string  `@"*"`
	Factor *Factor `@@`
}

type Factor struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Number *string `  @Int`
	Call   *Call   `| @@`
	Ident  *Name   `| @@`
	Paren  *Expr   `| "(" @@ ")"`
}

type Call struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Callee Name    `@@ "("`
	Args   []*Expr `( @@ ( "," @@ )* )? ")"`
}
