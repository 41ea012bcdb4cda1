package isa

// MaxDrawArgs is the number of argument registers a draw instruction can use.
const MaxDrawArgs = 6

// DrawOp describes one member of the immediate-coded drawing family. The
// argument names double as parameter names of the generated Go functions.
type DrawOp struct {
	Name  string
	Funct uint16
	Args  []string
}

// Arity is the number of registers staged before the trap.
func (op DrawOp) Arity() int { return len(op.Args) }

// Insn returns the instruction word that invokes op. The first argument travels
// in rs1 = a0, the remaining ones in a1..a5.
func (op DrawOp) Insn() Insn {
	rs1 := A0
	if op.Arity() == 0 {
		rs1 = Zero
	}
	return Encode(FormatDraw, rs1, op.Funct)
}

// DrawOps is the wire table of the drawing family. Funct values are fixed by the
// host decoder and must never be renumbered.
var DrawOps = [...]DrawOp{
	{"Clear", 0, []string{"r", "g", "b"}},
	{"Color", 1, []string{"r", "g", "b", "a"}},
	{"Col", 2, []string{"rgba"}},
	{"Stroke", 3, []string{"width"}},
	{"Line", 4, []string{"x1", "y1", "x2", "y2"}},
	{"Rect", 5, []string{"x", "y", "w", "h"}},
	{"LineRect", 6, []string{"x", "y", "w", "h"}},
	{"Poly", 7, []string{"x", "y", "sides", "radius", "rotation"}},
	{"LinePoly", 8, []string{"x", "y", "sides", "radius", "rotation"}},
	{"Triangle", 9, []string{"x1", "y1", "x2", "y2", "x3", "y3"}},
	{"Image", 10, []string{"x", "y", "kind", "id", "size", "rotation"}},
	{"Print", 11, []string{"x", "y"}},
	{"Translate", 12, []string{"x", "y"}},
	{"Scale", 13, []string{"x", "y"}},
	{"Rotate", 14, []string{"degrees"}},
	{"Reset", 15, nil},
}

// LookupDraw returns the drawing operation with the given funct12.
func LookupDraw(funct uint16) (DrawOp, bool) {
	for _, op := range DrawOps {
		if op.Funct == funct {
			return op, true
		}
	}
	return DrawOp{}, false
}

// SysOp is an immediate of the FormatSys sub-format.
type SysOp uint16

const (
	SysInitICache SysOp = 0 // rs1: end of the text segment
	SysPrintChar  SysOp = 1 // rs1: character
	SysPrintFlush SysOp = 2
	SysDrawFlush  SysOp = 3
)

var sysNames = [...]string{
	SysInitICache: "InitICache",
	SysPrintChar:  "PrintChar",
	SysPrintFlush: "PrintFlush",
	SysDrawFlush:  "DrawFlush",
}

func (op SysOp) String() string {
	if int(op) < len(sysNames) {
		return sysNames[op]
	}
	return "SysOp(?)"
}

// Arity is 1 for operations that read rs1, 0 otherwise.
func (op SysOp) Arity() int {
	switch op {
	case SysInitICache, SysPrintChar:
		return 1
	}
	return 0
}

// Insn returns the instruction word that invokes op.
func (op SysOp) Insn() Insn {
	rs1 := Zero
	if op.Arity() > 0 {
		rs1 = A0
	}
	return Encode(FormatSys, rs1, uint16(op))
}
