package ident

// RedirType classifies what kind of target a redirect-Id points at.
type RedirType int

const (
	RedirPath RedirType = iota
	RedirDesc
	RedirHere
)

// BoolOperandType classifies the operand a test/[[ ]] operator expects.
type BoolOperandType int

const (
	OperandUndefined BoolOperandType = iota
	OperandPath
	OperandInt
	OperandStr
	OperandOther
)

// redirDefaultFd maps a redirect-Id to its default file descriptor when none
// is given explicitly (e.g. bare `<` defaults to fd 0).
var redirDefaultFd = map[Id]int{
	Redir_Less:      0,
	Redir_Great:     1,
	Redir_DGreat:    1,
	Redir_GreatAnd:  1,
	Redir_LessAnd:   0,
	Redir_LessGreat: 0,
	Redir_Clobber:   1,
	Redir_DLess:     0,
	Redir_TLess:     0,
	Redir_DLessDash: 0,
}

// redirTypeTable maps a redirect-Id to its RedirType.
var redirTypeTable = map[Id]RedirType{
	Redir_Less:      RedirPath,
	Redir_Great:     RedirPath,
	Redir_DGreat:    RedirPath,
	Redir_Clobber:   RedirPath,
	Redir_LessGreat: RedirPath,
	Redir_GreatAnd:  RedirDesc,
	Redir_LessAnd:   RedirDesc,
	Redir_DLess:     RedirHere,
	Redir_TLess:     RedirHere,
	Redir_DLessDash: RedirHere,
}

// boolOperandTable maps a test/[[ ]] operator-Id to the kind of operand it
// consumes, for operators whose left/right operand semantics differ (a path
// test vs. a string comparison vs. an integer comparison).
var boolOperandTable = map[Id]BoolOperandType{
	BoolUnary_z: OperandStr,
	BoolUnary_n: OperandStr,
	BoolUnary_f: OperandPath,
	BoolUnary_d: OperandPath,
	BoolUnary_e: OperandPath,
	BoolUnary_r: OperandPath,
	BoolUnary_w: OperandPath,
	BoolUnary_x: OperandPath,

	BoolBinary_Eq:    OperandStr,
	BoolBinary_Ne:    OperandStr,
	BoolBinary_Lt:    OperandStr,
	BoolBinary_Gt:    OperandStr,
	BoolBinary_EqInt: OperandInt,
	BoolBinary_NeInt: OperandInt,
}

// RedirDefaultFd returns the default fd for a redirect-Id, and whether one is
// registered for it.
func RedirDefaultFd(id Id) (int, bool) {
	fd, ok := redirDefaultFd[id]
	return fd, ok
}

// RedirTypeOf returns the RedirType of a redirect-Id, and whether one is
// registered for it.
func RedirTypeOf(id Id) (RedirType, bool) {
	t, ok := redirTypeTable[id]
	return t, ok
}

// BoolOperandTypeOf returns the operand type for a boolean test operator-Id.
// Operators with no registered entry are treated as OperandUndefined.
func BoolOperandTypeOf(id Id) BoolOperandType {
	t, ok := boolOperandTable[id]
	if !ok {
		return OperandUndefined
	}
	return t
}

// AssignBuiltinIds lists the Ids that route a word sequence through the
// assignment-builtin path: declare, typeset, local, readonly,
// export.
var AssignBuiltinIds = map[string]Id{
	"declare":  Assign_Declare,
	"typeset":  Assign_Typeset,
	"local":    Assign_Local,
	"readonly": Assign_Readonly,
	"export":   Assign_Export,
}
