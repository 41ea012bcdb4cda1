package bin

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type testSection struct {
	name  string
	typ   elf.SectionType
	flags elf.SectionFlag
	addr  uint32
	data  []byte
}

// makeELF builds a minimal 32-bit RISC-V executable with the given sections.
func makeELF(t *testing.T, entry uint32, sections []testSection) *elf.File {
	t.Helper()

	sections = append([]testSection{{}}, sections...)
	sections = append(sections, testSection{name: ".shstrtab", typ: elf.SHT_STRTAB})
	var names bytes.Buffer
	nameOff := make([]uint32, len(sections))
	for i, s := range sections {
		nameOff[i] = uint32(names.Len())
		names.WriteString(s.name)
		names.WriteByte(0)
	}
	sections[len(sections)-1].data = names.Bytes()

	var body bytes.Buffer
	const headerSize = 52
	dataOff := make([]uint32, len(sections))
	for i, s := range sections {
		dataOff[i] = headerSize + uint32(body.Len())
		body.Write(s.data)
	}

	hdr := elf.Header32{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_RISCV),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     entry,
		Shoff:     headerSize + uint32(body.Len()),
		Ehsize:    headerSize,
		Shentsize: 40,
		Shnum:     uint16(len(sections)),
		Shstrndx:  uint16(len(sections) - 1),
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var f bytes.Buffer
	binary.Write(&f, binary.LittleEndian, &hdr)
	f.Write(body.Bytes())
	for i, s := range sections {
		sh := elf.Section32{
			Name:      nameOff[i],
			Type:      uint32(s.typ),
			Flags:     uint32(s.flags),
			Addr:      s.addr,
			Off:       dataOff[i],
			Size:      uint32(len(s.data)),
			Addralign: 1,
		}
		binary.Write(&f, binary.LittleEndian, &sh)
	}

	file, err := elf.NewFile(bytes.NewReader(f.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	return file
}

func TestObjcopy(t *testing.T) {
	f := makeELF(t, 0x1000, []testSection{
		{".text", elf.SHT_PROGBITS, elf.SHF_ALLOC | elf.SHF_EXECINSTR, 0x1000, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{".comment", elf.SHT_PROGBITS, 0, 0, []byte("go")},
		{".bss", elf.SHT_NOBITS, elf.SHF_ALLOC | elf.SHF_WRITE, 0x2000, nil},
		{".data", elf.SHT_PROGBITS, elf.SHF_ALLOC | elf.SHF_WRITE, 0x1010, []byte{0xa, 0xb, 0xc, 0xd}},
	})

	out, err := os.Create(filepath.Join(t.TempDir(), "out.bin"))
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	size, err := objcopy(out, f)
	if err != nil {
		t.Fatal(err)
	}
	if size != 0x14 {
		t.Errorf("expected size 0x14, got %#x", size)
	}

	got, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0, 0, 0, 0, 0, 0, 0xa, 0xb, 0xc, 0xd}
	if !bytes.Equal(got, expected) {
		t.Errorf("expected %x, got %x", expected, got)
	}
}

func TestObjcopyErrors(t *testing.T) {
	tests := map[string][]testSection{
		"before entry": {{".text", elf.SHT_PROGBITS, elf.SHF_ALLOC, 0x800, []byte{1}}},
		"empty":        {{".comment", elf.SHT_PROGBITS, 0, 0, []byte("go")}},
	}
	for name, sections := range tests {
		t.Run(name, func(t *testing.T) {
			f := makeELF(t, 0x1000, sections)
			out, err := os.Create(filepath.Join(t.TempDir(), "out.bin"))
			if err != nil {
				t.Fatal(err)
			}
			defer out.Close()
			if _, err := objcopy(out, f); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestStatus(t *testing.T) {
	tests := map[string]struct {
		code int
		done bool
	}{
		"PASS":                       {0, true},
		"FAIL":                       {1, true},
		"panic: runtime error":       {1, true},
		"fatal error: out of memory": {1, true},
		"--- FAIL: TestX (0.00s)":    {0, false},
		"ok":                         {0, false},
		"halt: 0":                    {0, true},
		"halt: 3":                    {3, true},
		"halt: x":                    {1, true},
		"halt: 4096":                 {1, true},
	}
	for line, tc := range tests {
		code, done := status(line)
		if code != tc.code || done != tc.done {
			t.Errorf("%q: expected %d, %v, got %d, %v", line, tc.code, tc.done, code, done)
		}
	}
}

func TestWatch(t *testing.T) {
	tests := map[string]struct {
		output string
		code   int
		seen   bool
	}{
		"pass":         {"=== RUN TestA\r\n--- PASS: TestA\r\nPASS\r\n", 0, true},
		"fail":         {"--- FAIL: TestA\nFAIL\n", 1, true},
		"halt":         {"PASS\nhalt: 0\n", 0, true},
		"halt code":    {"PASS\nhalt: 2\n", 2, true},
		"panic":        {"panic: boom\n\ngoroutine 1\nFAIL\nhalt: 2\n", 2, true},
		"panic only":   {"panic: boom\nPASS\n", 1, true},
		"no status":    {"hello\n", 0, false},
		"empty output": {"", 0, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var log bytes.Buffer
			ended := 0
			code, seen := watch(strings.NewReader(tc.output), &log, func() { ended++ })
			if code != tc.code || seen != tc.seen {
				t.Errorf("expected %d, %v, got %d, %v", tc.code, tc.seen, code, seen)
			}
			if expected := map[bool]int{true: 1}[tc.seen]; ended != expected {
				t.Errorf("ended called %d times", ended)
			}
			if expected := strings.ReplaceAll(tc.output, "\r", ""); log.String() != expected {
				t.Errorf("expected log %q, got %q", expected, log.String())
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if code := exitCode(nil); code != 0 {
		t.Errorf("expected 0 for a clean exit, got %d", code)
	}
	if code := exitCode(errors.New("wait failed")); code != 1 {
		t.Errorf("expected 1 for other errors, got %d", code)
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell")
	}
	err := exec.Command("sh", "-c", "exit 7").Run()
	if code := exitCode(err); code != 7 {
		t.Errorf("expected the emulator's code 7, got %d", code)
	}
}
