package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (d *Document) NodePos() Position    { return d.Pos }
func (d *Document) NodeEndPos() Position { return d.EndPos }
func (*Document) NodeType() NodeType     { return DOCUMENT }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (e *EventDecl) NodePos() Position    { return e.Pos }
func (e *EventDecl) NodeEndPos() Position { return e.EndPos }
func (*EventDecl) NodeType() NodeType     { return EVENT_DECL }

func (l *LetDecl) NodePos() Position    { return l.Pos }
func (l *LetDecl) NodeEndPos() Position { return l.EndPos }
func (*LetDecl) NodeType() NodeType     { return LET_DECL }

func (f *FunctionDecl) NodePos() Position    { return f.Pos }
func (f *FunctionDecl) NodeEndPos() Position { return f.EndPos }
func (*FunctionDecl) NodeType() NodeType     { return FUNCTION_DECL }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (l *LetStmt) NodePos() Position    { return l.Pos }
func (l *LetStmt) NodeEndPos() Position { return l.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (a *AssignStmt) NodePos() Position    { return a.Pos }
func (a *AssignStmt) NodeEndPos() Position { return a.EndPos }
func (*AssignStmt) NodeType() NodeType     { return ASSIGN_STMT }

func (e *EmitStmt) NodePos() Position    { return e.Pos }
func (e *EmitStmt) NodeEndPos() Position { return e.EndPos }
func (*EmitStmt) NodeType() NodeType     { return EMIT_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (n *NumberLit) NodePos() Position    { return n.Pos }
func (n *NumberLit) NodeEndPos() Position { return n.EndPos }
func (*NumberLit) NodeType() NodeType     { return NUMBER_LIT }

func (i *IdentExpr) NodePos() Position    { return i.Pos }
func (i *IdentExpr) NodeEndPos() Position { return i.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (b *BinaryExpr) NodePos() Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() Position { return b.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (p *ParenExpr) NodePos() Position    { return p.Pos }
func (p *ParenExpr) NodeEndPos() Position { return p.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }
