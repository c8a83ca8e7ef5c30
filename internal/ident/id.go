// Package ident provides the stable identifier/kind registry the word
// evaluator dispatches on: a flat integer enum of token and operator ids,
// grouped into coarse Kinds, plus the small declarative side tables the
// operator engines consult (redirect defaults, boolean-operator operand
// types).
//
// The registry is built once from a single literal table (idSpecs) and is
// immutable afterwards; looking up an unknown name is a programmer error
// and panics at init time rather than failing at runtime.
package ident

// Id is a small integer tag identifying a token or operator. Id equality is
// identity on the tag.
type Id int

// Kind is the coarse category an Id belongs to. Every Id belongs to exactly
// one Kind.
type Kind int

const (
	KindVSub Kind = iota
	KindVTest
	KindVOp0
	KindVOp1
	KindVOp2
	KindVOp3
	KindArith
	KindLeft
	KindRight
	KindRedir
	KindKW
	KindLit
	KindOp
	KindBoolUnary
	KindBoolBinary
	KindControlFlow
	KindAssign
)

func (k Kind) String() string {
	if int(k) < len(kindStrings) {
		return kindStrings[k]
	}
	return "UnknownKind"
}

var kindStrings = [...]string{
	KindVSub:        "VSub",
	KindVTest:       "VTest",
	KindVOp0:        "VOp0",
	KindVOp1:        "VOp1",
	KindVOp2:        "VOp2",
	KindVOp3:        "VOp3",
	KindArith:       "Arith",
	KindLeft:        "Left",
	KindRight:       "Right",
	KindRedir:       "Redir",
	KindKW:          "KW",
	KindLit:         "Lit",
	KindOp:          "Op",
	KindBoolUnary:   "BoolUnary",
	KindBoolBinary:  "BoolBinary",
	KindControlFlow: "ControlFlow",
	KindAssign:      "Assign",
}

// Ids, grouped by Kind. Values are assigned by iota across the whole table;
// names and kinds are looked up through the registry built from idSpecs.
const (
	// --- VSub: simple variable-substitution forms ($x, $1, $@, $*, $?, ...) ---
	VSub_Name Id = iota
	VSub_Number
	VSub_Bang   // $!  -- last background PID
	VSub_At     // $@
	VSub_Star   // $*
	VSub_Hash   // $#  -- positional count
	VSub_Dollar // $$  -- shell PID
	VSub_Question
	VSub_Minus // $-

	// --- VTest: the four test/default/assign/error operator pairs ---
	VTest_ColonHyphen // ${v:-word}
	VTest_Hyphen      // ${v-word}
	VTest_ColonEquals // ${v:=word}
	VTest_Equals      // ${v=word}
	VTest_ColonQMark  // ${v:?word}
	VTest_QMark       // ${v?word}
	VTest_ColonPlus   // ${v:+word}
	VTest_Plus        // ${v+word}

	// --- VOp0: nullary suffix formatters ---
	VOp0_At   // ${x@Q} etc; the sigil, operand carries the letter
	VOp0_P    // @P
	VOp0_Q    // @Q
	VOp0_A    // @A
	VOp0_K    // @K  (array of key-value pairs, bash 5.1+)
	VOp0_a    // @a (lowercase attrs)

	// --- VOp1: unary pattern/case ops ---
	VOp1_Percent    // %
	VOp1_DPercent   // %%
	VOp1_Pound      // #
	VOp1_DPound     // ##
	VOp1_Caret      // ^
	VOp1_DCaret     // ^^
	VOp1_Comma      // ,
	VOp1_DComma     // ,,
	VOp1_Bang       // ! (indirect, prefix op not suffix, shares table slot)
	VOp1_QMarkAtDot // placeholder for future ops

	// --- VOp2: pattern substitution ${v/pat/rep} and slice ${v:a:b} ---
	VOp2_Slash   // ${v/pat/rep}
	VOp2_DSlash  // ${v//pat/rep}
	VOp2_Pound   // ${v/#pat/rep}
	VOp2_Percent // ${v/%pat/rep}
	VOp2_Colon   // ${v:begin:length}
	VOp2_LBracket
	VOp2_RBracket

	// --- VOp3: reserved for three-operand extensions (none defined yet) ---
	VOp3_Slice3

	// --- Arith: arithmetic-substitution / arithmetic-word tokens ---
	Arith_DollarDPnren // $(( ... ))
	Arith_VarSub       // $[ ... ] legacy form

	// --- Left/Right: bracketing tokens for braced/command/process subs ---
	Left_DollarBrace   // ${
	Left_Backtick      // `
	Left_DollarParen   // $(
	Left_ProcSubIn     // <(
	Left_ProcSubOut    // >(
	Left_DollarDParen  // $((
	Left_DollarBracket // $[

	Right_RBrace // }
	Right_Paren  // )
	Right_DParen // ))

	// --- Redir: redirection operators ---
	Redir_Less        // <
	Redir_Great       // >
	Redir_DGreat      // >>
	Redir_GreatAnd    // >&
	Redir_LessAnd     // <&
	Redir_LessGreat   // <>
	Redir_Clobber     // >|
	Redir_DLess       // << (heredoc)
	Redir_TLess       // <<< (herestring)
	Redir_DLessDash   // <<- (heredoc, strip tabs)

	// --- KW: keywords relevant to assignment-builtin detection ---
	KW_Declare
	KW_Typeset
	KW_Local
	KW_Readonly
	KW_Export

	// --- Lit: literal/quoting contexts ---
	Lit_Chars
	Lit_EscapedChar
	Lit_SingleQuoted
	Lit_DoubleQuoted
	Lit_Splice

	// --- Op: misc single-character word operators ---
	Op_Tilde
	Op_Glob

	// --- BoolUnary / BoolBinary: operand-type table for test/[[ ]] ---
	BoolUnary_z // -z string
	BoolUnary_n // -n string
	BoolUnary_f // -f path
	BoolUnary_d // -d path
	BoolUnary_e // -e path
	BoolUnary_r // -r path
	BoolUnary_w // -w path
	BoolUnary_x // -x path

	BoolBinary_Eq    // ==
	BoolBinary_Ne    // !=
	BoolBinary_Lt    // <
	BoolBinary_Gt    // >
	BoolBinary_EqInt // -eq
	BoolBinary_NeInt // -ne

	// --- ControlFlow / Assign: assignment-builtin routing ---
	ControlFlow_Break
	ControlFlow_Continue

	Assign_Declare
	Assign_Typeset
	Assign_Local
	Assign_Readonly
	Assign_Export

	idEnd
)

type idSpec struct {
	id   Id
	name string
	kind Kind
}

// idSpecs is the single declarative table backing name_of/kind_of. Every Id
// must appear here exactly once: the registry build panics on a duplicate
// entry or an empty name, and NameOf/KindOf panic on an Id missing here.
var idSpecs = []idSpec{
	{VSub_Name, "VSub_Name", KindVSub},
	{VSub_Number, "VSub_Number", KindVSub},
	{VSub_Bang, "VSub_Bang", KindVSub},
	{VSub_At, "VSub_At", KindVSub},
	{VSub_Star, "VSub_Star", KindVSub},
	{VSub_Hash, "VSub_Hash", KindVSub},
	{VSub_Dollar, "VSub_Dollar", KindVSub},
	{VSub_Question, "VSub_Question", KindVSub},
	{VSub_Minus, "VSub_Minus", KindVSub},

	{VTest_ColonHyphen, "VTest_ColonHyphen", KindVTest},
	{VTest_Hyphen, "VTest_Hyphen", KindVTest},
	{VTest_ColonEquals, "VTest_ColonEquals", KindVTest},
	{VTest_Equals, "VTest_Equals", KindVTest},
	{VTest_ColonQMark, "VTest_ColonQMark", KindVTest},
	{VTest_QMark, "VTest_QMark", KindVTest},
	{VTest_ColonPlus, "VTest_ColonPlus", KindVTest},
	{VTest_Plus, "VTest_Plus", KindVTest},

	{VOp0_At, "VOp0_At", KindVOp0},
	{VOp0_P, "VOp0_P", KindVOp0},
	{VOp0_Q, "VOp0_Q", KindVOp0},
	{VOp0_A, "VOp0_A", KindVOp0},
	{VOp0_K, "VOp0_K", KindVOp0},
	{VOp0_a, "VOp0_a", KindVOp0},

	{VOp1_Percent, "VOp1_Percent", KindVOp1},
	{VOp1_DPercent, "VOp1_DPercent", KindVOp1},
	{VOp1_Pound, "VOp1_Pound", KindVOp1},
	{VOp1_DPound, "VOp1_DPound", KindVOp1},
	{VOp1_Caret, "VOp1_Caret", KindVOp1},
	{VOp1_DCaret, "VOp1_DCaret", KindVOp1},
	{VOp1_Comma, "VOp1_Comma", KindVOp1},
	{VOp1_DComma, "VOp1_DComma", KindVOp1},
	{VOp1_Bang, "VOp1_Bang", KindVOp1},
	{VOp1_QMarkAtDot, "VOp1_Reserved", KindVOp1},

	{VOp2_Slash, "VOp2_Slash", KindVOp2},
	{VOp2_DSlash, "VOp2_DSlash", KindVOp2},
	{VOp2_Pound, "VOp2_Pound", KindVOp2},
	{VOp2_Percent, "VOp2_Percent", KindVOp2},
	{VOp2_Colon, "VOp2_Colon", KindVOp2},
	{VOp2_LBracket, "VOp2_LBracket", KindVOp2},
	{VOp2_RBracket, "VOp2_RBracket", KindVOp2},

	{VOp3_Slice3, "VOp3_Slice3", KindVOp3},

	{Arith_DollarDPnren, "Arith_DollarDParen", KindArith},
	{Arith_VarSub, "Arith_DollarBracket", KindArith},

	{Left_DollarBrace, "Left_DollarBrace", KindLeft},
	{Left_Backtick, "Left_Backtick", KindLeft},
	{Left_DollarParen, "Left_DollarParen", KindLeft},
	{Left_ProcSubIn, "Left_ProcSubIn", KindLeft},
	{Left_ProcSubOut, "Left_ProcSubOut", KindLeft},
	{Left_DollarDParen, "Left_DollarDParen", KindLeft},
	{Left_DollarBracket, "Left_DollarBracket", KindLeft},

	{Right_RBrace, "Right_RBrace", KindRight},
	{Right_Paren, "Right_Paren", KindRight},
	{Right_DParen, "Right_DParen", KindRight},

	{Redir_Less, "Redir_Less", KindRedir},
	{Redir_Great, "Redir_Great", KindRedir},
	{Redir_DGreat, "Redir_DGreat", KindRedir},
	{Redir_GreatAnd, "Redir_GreatAnd", KindRedir},
	{Redir_LessAnd, "Redir_LessAnd", KindRedir},
	{Redir_LessGreat, "Redir_LessGreat", KindRedir},
	{Redir_Clobber, "Redir_Clobber", KindRedir},
	{Redir_DLess, "Redir_DLess", KindRedir},
	{Redir_TLess, "Redir_TLess", KindRedir},
	{Redir_DLessDash, "Redir_DLessDash", KindRedir},

	{KW_Declare, "KW_Declare", KindKW},
	{KW_Typeset, "KW_Typeset", KindKW},
	{KW_Local, "KW_Local", KindKW},
	{KW_Readonly, "KW_Readonly", KindKW},
	{KW_Export, "KW_Export", KindKW},

	{Lit_Chars, "Lit_Chars", KindLit},
	{Lit_EscapedChar, "Lit_EscapedChar", KindLit},
	{Lit_SingleQuoted, "Lit_SingleQuoted", KindLit},
	{Lit_DoubleQuoted, "Lit_DoubleQuoted", KindLit},
	{Lit_Splice, "Lit_Splice", KindLit},

	{Op_Tilde, "Op_Tilde", KindOp},
	{Op_Glob, "Op_Glob", KindOp},

	{BoolUnary_z, "BoolUnary_z", KindBoolUnary},
	{BoolUnary_n, "BoolUnary_n", KindBoolUnary},
	{BoolUnary_f, "BoolUnary_f", KindBoolUnary},
	{BoolUnary_d, "BoolUnary_d", KindBoolUnary},
	{BoolUnary_e, "BoolUnary_e", KindBoolUnary},
	{BoolUnary_r, "BoolUnary_r", KindBoolUnary},
	{BoolUnary_w, "BoolUnary_w", KindBoolUnary},
	{BoolUnary_x, "BoolUnary_x", KindBoolUnary},

	{BoolBinary_Eq, "BoolBinary_Eq", KindBoolBinary},
	{BoolBinary_Ne, "BoolBinary_Ne", KindBoolBinary},
	{BoolBinary_Lt, "BoolBinary_Lt", KindBoolBinary},
	{BoolBinary_Gt, "BoolBinary_Gt", KindBoolBinary},
	{BoolBinary_EqInt, "BoolBinary_EqInt", KindBoolBinary},
	{BoolBinary_NeInt, "BoolBinary_NeInt", KindBoolBinary},

	{ControlFlow_Break, "ControlFlow_Break", KindControlFlow},
	{ControlFlow_Continue, "ControlFlow_Continue", KindControlFlow},

	{Assign_Declare, "Assign_Declare", KindAssign},
	{Assign_Typeset, "Assign_Typeset", KindAssign},
	{Assign_Local, "Assign_Local", KindAssign},
	{Assign_Readonly, "Assign_Readonly", KindAssign},
	{Assign_Export, "Assign_Export", KindAssign},
}

var (
	nameTable = map[Id]string{}
	kindTable = map[Id]Kind{}
	byName    = map[string]Id{}
)

func init() {
	for _, spec := range idSpecs {
		if spec.name == "" {
			panic("ident: registry entry has empty name")
		}
		if _, dup := nameTable[spec.id]; dup {
			panic("ident: duplicate registry entry for id " + spec.name)
		}
		nameTable[spec.id] = spec.name
		kindTable[spec.id] = spec.kind
		byName[spec.name] = spec.id
	}
}

// KindOf returns the Kind of id. Every registered Id maps to exactly one Kind.
func KindOf(id Id) Kind {
	k, ok := kindTable[id]
	if !ok {
		panic("ident: unregistered id passed to KindOf")
	}
	return k
}

// NameOf returns the declared name of id.
func NameOf(id Id) string {
	n, ok := nameTable[id]
	if !ok {
		panic("ident: unregistered id passed to NameOf")
	}
	return n
}

// MustLookup resolves a registered Id by its declared name. It panics on an
// unknown name: a lookup miss here is always a programmer error (a typo in a
// table, not malformed user input), so it is treated the way the registry
// build itself is treated -- fatal at init/wiring time.
func MustLookup(name string) Id {
	id, ok := byName[name]
	if !ok {
		panic("ident: no such id " + name)
	}
	return id
}

// All returns every registered Id, in registry-declaration order. Intended
// for diagnostic enumeration (the "tokens" CLI command's table dump), not for
// anything the evaluator itself consults at runtime.
func All() []Id {
	out := make([]Id, len(idSpecs))
	for i, spec := range idSpecs {
		out[i] = spec.id
	}
	return out
}
