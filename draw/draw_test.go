//go:build !(mlogv32 && riscv64)

package draw_test

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/clktmr/mlogv32/draw"
	"github.com/clktmr/mlogv32/hart/harttest"
	"github.com/clktmr/mlogv32/isa"
)

// Calls every operation with arguments 1..arity.
var calls = map[string]func(){
	"Clear":     func() { draw.Clear(1, 2, 3) },
	"Color":     func() { draw.Color(1, 2, 3, 4) },
	"Col":       func() { draw.Col(1) },
	"Stroke":    func() { draw.Stroke(1) },
	"Line":      func() { draw.Line(1, 2, 3, 4) },
	"Rect":      func() { draw.Rect(1, 2, 3, 4) },
	"LineRect":  func() { draw.LineRect(1, 2, 3, 4) },
	"Poly":      func() { draw.Poly(1, 2, 3, 4, 5) },
	"LinePoly":  func() { draw.LinePoly(1, 2, 3, 4, 5) },
	"Triangle":  func() { draw.Triangle(1, 2, 3, 4, 5, 6) },
	"Image":     func() { draw.Image(1, 2, draw.ImageType(3), 4, 5, 6) },
	"Print":     func() { draw.Print(1, 2) },
	"Translate": func() { draw.Translate(1, 2) },
	"Scale":     func() { draw.Scale(1, 2) },
	"Rotate":    func() { draw.Rotate(1) },
	"Reset":     func() { draw.Reset() },
}

func TestOps(t *testing.T) {
	if len(calls) != len(isa.DrawOps) {
		t.Fatalf("%d calls for %d ops", len(calls), len(isa.DrawOps))
	}
	for _, op := range isa.DrawOps {
		t.Run(op.Name, func(t *testing.T) {
			rec := harttest.Install(t)
			calls[op.Name]()

			if len(rec.Traps) != 1 {
				t.Fatalf("expected one trap, got %d", len(rec.Traps))
			}
			trap := rec.Traps[0]
			fields, ok := trap.Insn.Decode()
			if !ok || fields.Format != isa.FormatDraw || fields.Imm != op.Funct {
				t.Fatalf("expected draw funct %d, got %+v", op.Funct, fields)
			}
			if trap.Staged != op.Arity() {
				t.Fatalf("expected %d staged registers, got %d", op.Arity(), trap.Staged)
			}
			for i, v := range trap.Args() {
				if v != uint32(i+1) {
					t.Errorf("a%d: expected %d, got %d", i, i+1, v)
				}
			}
			for i, v := range trap.Regs[trap.Staged:] {
				if v != 0 {
					t.Errorf("unstaged a%d holds %d", trap.Staged+i, v)
				}
			}
		})
	}
}

func TestTriangle(t *testing.T) {
	rec := harttest.Install(t)
	draw.Triangle(10, 20, 30, 40, 50, 60)

	if len(rec.Traps) != 1 {
		t.Fatalf("expected one trap, got %d", len(rec.Traps))
	}
	trap := rec.Traps[0]
	if trap.Insn != 0x0095_100b {
		t.Errorf("expected DrawTriangle instruction, got %#08x", trap.Insn)
	}
	if !slices.Equal(trap.Args(), []uint32{10, 20, 30, 40, 50, 60}) {
		t.Errorf("unexpected arguments %v", trap.Args())
	}
}

func TestPack(t *testing.T) {
	tests := map[string]struct {
		c        color.Color
		expected uint32
	}{
		"black":       {color.Black, 0x0000_00ff},
		"white":       {color.White, 0xffff_ffff},
		"transparent": {color.Transparent, 0x0000_0000},
		"nrgba":       {color.NRGBA{0x12, 0x34, 0x56, 0x78}, 0x1234_5678},
		"rgba":        {color.RGBA{0x40, 0x20, 0x00, 0xff}, 0x4020_00ff},
		"gray":        {color.Gray{0x80}, 0x8080_80ff},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := draw.Pack(tc.c); got != tc.expected {
				t.Fatalf("expected %#08x, got %#08x", tc.expected, got)
			}
		})
	}
}

func TestFlush(t *testing.T) {
	rec := harttest.Install(t)
	draw.SetColor(color.White)
	draw.Flush()

	if len(rec.Traps) != 2 {
		t.Fatalf("expected 2 traps, got %d", len(rec.Traps))
	}
	if rec.Traps[0].Insn != isa.DrawOps[2].Insn() || rec.Traps[0].Regs[0] != 0xffff_ffff {
		t.Errorf("unexpected col trap %+v", rec.Traps[0])
	}
	if rec.Traps[1].Insn != isa.SysDrawFlush.Insn() {
		t.Errorf("unexpected flush trap %+v", rec.Traps[1])
	}
}

var (
	defineRe = regexp.MustCompile(`^#define DRAW(\d)\(name, insn((?:, p\d)*)\) \\$`)
	loadRe   = regexp.MustCompile(`^\tMOVWU\tp(\d)\+(\d+)\(FP\), A(\d); \\$`)
	invokeRe = regexp.MustCompile(`^DRAW(\d)\(·(\w+), (0x[0-9a-f]{8})((?:, \w+)*)\)$`)
)

// The assembly can't be exercised off target, so check that the generated file
// agrees with the wire table.
func TestAssembly(t *testing.T) {
	f, err := os.Open("zdraw_riscv64.s")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	loads := map[int][]string{}
	invoked := map[string]bool{}
	macro := -1
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if m := defineRe.FindStringSubmatch(line); m != nil {
			macro, _ = strconv.Atoi(m[1])
			loads[macro] = []string{}
			continue
		}
		if macro >= 0 {
			if m := loadRe.FindStringSubmatch(line); m != nil {
				loads[macro] = append(loads[macro], fmt.Sprintf("p%s+%s=A%s", m[1], m[2], m[3]))
			}
			if strings.TrimSpace(line) == "RET" {
				macro = -1
			}
			continue
		}
		m := invokeRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		arity, _ := strconv.Atoi(m[1])
		name := m[2]
		word, _ := strconv.ParseUint(m[3], 0, 32)
		args := strings.Split(strings.TrimPrefix(m[4], ", "), ", ")
		if m[4] == "" {
			args = nil
		}

		var op *isa.DrawOp
		for i := range isa.DrawOps {
			if isa.DrawOps[i].Name == name {
				op = &isa.DrawOps[i]
			}
		}
		if op == nil {
			t.Errorf("%s: not in the wire table", name)
			continue
		}
		invoked[name] = true
		if arity != op.Arity() {
			t.Errorf("%s: uses the %d argument template, expected %d", name, arity, op.Arity())
		}
		if isa.Insn(word) != op.Insn() {
			t.Errorf("%s: instruction %#08x, expected %#08x", name, word, op.Insn())
		}
		if !slices.Equal(args, op.Args) {
			t.Errorf("%s: arguments %v, expected %v", name, args, op.Args)
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	for n := 0; n <= isa.MaxDrawArgs; n++ {
		l, ok := loads[n]
		if !ok {
			t.Errorf("missing template for %d arguments", n)
			continue
		}
		if len(l) != n {
			t.Errorf("template %d loads %d registers", n, len(l))
		}
		for i, load := range l {
			if expected := fmt.Sprintf("p%d+%d=A%d", i, 4*i, i); load != expected {
				t.Errorf("template %d: load %q, expected %q", n, load, expected)
			}
		}
	}
	for _, op := range isa.DrawOps {
		if !invoked[op.Name] {
			t.Errorf("%s: no instruction emitted", op.Name)
		}
	}
}
