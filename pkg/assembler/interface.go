package assembler

// Assembler turns one assembly source file into a raw binary.
type Assembler interface {
	// Assemble writes the binary for src at dst and returns the tool's
	// textual output.
	Assemble(src, dst string) (string, error)
	// Tool names the executable behind the assembler.
	Tool() string
}
