package machine

var excNames = [16]string{
	0:  "Instruction Address Misaligned",
	1:  "Instruction Access Fault",
	2:  "Illegal Instruction",
	3:  "Breakpoint",
	4:  "Load Address Misaligned",
	5:  "Load Access Fault",
	6:  "Store Address Misaligned",
	7:  "Store Access Fault",
	8:  "Environment Call (U)",
	9:  "Environment Call (S)",
	11: "Environment Call (M)",
	12: "Instruction Page Fault",
	13: "Load Page Fault",
	15: "Store Page Fault",
}

var irqNames = [16]string{
	1:  "Supervisor Software",
	3:  "Machine Software",
	5:  "Supervisor Timer",
	7:  "Machine Timer",
	9:  "Supervisor External",
	11: "Machine External",
}

const mcauseInterrupt = 1 << 31

// ExceptionName returns the name of the trap cause in mcause.
//
//go:nosplit
func ExceptionName(mcause uint32) string {
	names, kind := &excNames, " Exception"
	if mcause&mcauseInterrupt != 0 {
		names, kind = &irqNames, " Interrupt"
	}
	code := mcause &^ mcauseInterrupt
	if code >= uint32(len(names)) || names[code] == "" {
		return "Reserved" + kind
	}
	return names[code] + kind
}

//go:nosplit
func Exception(mcause, mepc, mtval, ra uint32) {
	var buf [8]byte
	DefaultWrite(0, []byte("Unhandled "))
	DefaultWrite(0, []byte(ExceptionName(mcause)))

	DefaultWrite(0, []byte("\nmcause 0x"))
	DefaultWrite(0, itoa(buf[:], mcause))
	DefaultWrite(0, []byte("\nmepc   0x"))
	DefaultWrite(0, itoa(buf[:], mepc))
	DefaultWrite(0, []byte("\nmtval  0x"))
	DefaultWrite(0, itoa(buf[:], mtval))
	DefaultWrite(0, []byte("\nra     0x"))
	DefaultWrite(0, itoa(buf[:], ra))
	DefaultWrite(0, []byte("\n"))
}

//go:nosplit
func itoa(buf []byte, num uint32) []byte {
	for i := 0; i < 8; i++ {
		char := byte(num>>(28-(4*i))) & 0xf
		if char > 9 {
			char += 'a' - 10
		} else {
			char += '0'
		}
		buf[i] = char
	}
	return buf
}
