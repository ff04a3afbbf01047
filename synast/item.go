package synast

// ItemKind tags the variant of an Item, dispatched by the item rewriter
// (spec.md §4.5).
type ItemKind int8

const (
	ItemFn ItemKind = iota
	ItemImpl
	ItemTrait
	ItemStruct
	ItemEnum
	ItemTypeAlias
	ItemUse
	ItemExternBlock
	ItemMod
	ItemConst
	ItemStatic
	ItemMacroDef
)

// Item is the sealed interface every item-level node implements.
type Item interface {
	Node
	ItemKind() ItemKind
	Attrs() []Attribute
}

type itemBase struct {
	Span       Span
	Attributes []Attribute
}

func (b itemBase) NodeSpan() Span      { return b.Span }
func (b itemBase) Attrs() []Attribute  { return b.Attributes }

// Param is one function parameter, `name: Type`.
type Param struct {
	Span Span
	Name string
	Type string
}

// Fn is a function item.
type Fn struct {
	itemBase
	Name       string
	Generics   []string
	Params     []Param
	ReturnType string // empty for `-> ()`/no return type
	Where      []string
	Body       *Block // nil for a trait method without a body
}

func (i *Fn) ItemKind() ItemKind { return ItemFn }

// ImplItemKind classifies one member of an Impl block, used by
// ReorderImplItems (spec.md §4.5: associated types, then constants, then
// macros, then methods, stable order within each class).
type ImplItemKind int8

const (
	ImplItemType ImplItemKind = iota
	ImplItemConst
	ImplItemMacro
	ImplItemMethod
)

// ImplMember is one member of an Impl block.
type ImplMember struct {
	Span Span
	Kind ImplItemKind
	Text string // rendered member text, already formatted by a sub-rewrite
	Fn   *Fn    // non-nil when Kind == ImplItemMethod
}

// Impl is an `impl [Trait for] Type { ... }` block.
type Impl struct {
	itemBase
	TraitPath string // empty for an inherent impl
	TypePath  string
	Generics  []string
	Where     []string
	Members   []ImplMember
}

func (i *Impl) ItemKind() ItemKind { return ItemImpl }

// Trait is a trait definition.
type Trait struct {
	itemBase
	Name     string
	Generics []string
	Where    []string
	Members  []ImplMember
}

func (i *Trait) ItemKind() ItemKind { return ItemTrait }

// Field is one field of a Struct.
type Field struct {
	Span       Span
	Attributes []Attribute
	Name       string
	Type       string
}

// Struct is a struct item.
type Struct struct {
	itemBase
	Name     string
	Generics []string
	Where    []string
	Fields   []Field
	Tuple    bool // true for a tuple struct, `struct S(T, U);`
	Unit     bool // true for a unit struct, `struct S;`
}

func (i *Struct) ItemKind() ItemKind { return ItemStruct }

// EnumVariant is one variant of an Enum.
type EnumVariant struct {
	Span       Span
	Attributes []Attribute
	Name       string
	Fields     []Field // non-nil for a struct-like variant
	Tuple      []string
	Discriminant string // empty if none
}

// Enum is an enum item.
type Enum struct {
	itemBase
	Name     string
	Generics []string
	Where    []string
	Variants []EnumVariant
}

func (i *Enum) ItemKind() ItemKind { return ItemEnum }

// TypeAlias is a `type Name = Type;` item.
type TypeAlias struct {
	itemBase
	Name     string
	Generics []string
	Target   string
}

func (i *TypeAlias) ItemKind() ItemKind { return ItemTypeAlias }

// Use is a `use path::{a, b};` import item.
type Use struct {
	itemBase
	Segments []string // path segments before the final group/leaf
	Leaves   []string // one or more leaf names (len > 1 implies a brace group)
	Alias    string    // non-empty for `use path as alias;`
}

func (i *Use) ItemKind() ItemKind { return ItemUse }

// ExternBlock is an `extern "ABI" { ... }` block.
type ExternBlock struct {
	itemBase
	ABI     string // empty if unmarked; force_explicit_abi may fill this in
	Members []ImplMember
}

func (i *ExternBlock) ItemKind() ItemKind { return ItemExternBlock }

// Mod is a module item, either inline (`mod m { ... }`) or a declaration
// (`mod m;`).
type Mod struct {
	itemBase
	Name  string
	Items []Item // nil for a bare declaration
}

func (i *Mod) ItemKind() ItemKind { return ItemMod }

// Const is a `const NAME: Type = value;` item.
type Const struct {
	itemBase
	Name  string
	Type  string
	Value Expr
}

func (i *Const) ItemKind() ItemKind { return ItemConst }

// Static is a `static [mut] NAME: Type = value;` item.
type Static struct {
	itemBase
	Mut   bool
	Name  string
	Type  string
	Value Expr
}

func (i *Static) ItemKind() ItemKind { return ItemStatic }

// MacroDef is a macro-by-example definition, `macro_rules! name { ... }`.
type MacroDef struct {
	itemBase
	Name  string
	Rules []MacroRule
}

func (i *MacroDef) ItemKind() ItemKind { return ItemMacroDef }

// MacroRule is one `(matcher) => { body };` rule of a MacroDef.
type MacroRule struct {
	Span    Span
	Matcher string
	Body    string
}
