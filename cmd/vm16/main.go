// Command vm16 is the front-end driver: it wires the assembler and the
// CPU to the filesystem. It owns no domain logic of its own — compile
// dispatches to internal/asm, run builds the memory map and dispatches to
// internal/cpu.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vm16/internal/asm"
	"vm16/internal/cpu"
	"vm16/internal/device"
)

// binaryRegionSize is how much of the address space the run command loads
// a program into: [0, 0xFE00).
const binaryRegionSize = 0xFE00

// screenRegionSize is the window after the program image reserved for the
// screen device: [0xFE00, 0xFF00).
const screenRegionSize = 0x0100

const bankCount = 8
const bankSize = 256

func main() {
	root := &cobra.Command{
		Use:   "vm16",
		Short: "Assembler and CPU for the vm16 instruction set",
	}
	root.AddCommand(newCompileCmd())
	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <input.asm> <output.bin>",
		Short: "Assemble a source file into a raw binary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args[0], args[1])
		},
	}
}

func runCompile(inputPath, outputPath string) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}
	bin, err := asm.Compile(string(source))
	if err != nil {
		return fmt.Errorf("compiling %s: %w", inputPath, err)
	}
	if err := os.WriteFile(outputPath, bin, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <binary>",
		Short: "Load a binary and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBinary(args[0])
		},
	}
}

func runBinary(path string) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if len(image) > binaryRegionSize {
		return fmt.Errorf("binary is %d bytes, exceeds the %d-byte program region", len(image), binaryRegionSize)
	}

	program := device.NewMemory(binaryRegionSize)
	for i, b := range image {
		program.SetU8(i, b)
	}
	screen := device.NewScreen(os.Stdout)
	banked := device.NewBankedMemory(bankCount, bankSize)

	mapper := device.NewMemoryMapper()
	mapper.Map(program, 0x0000, binaryRegionSize-1, true)
	mapper.Map(screen, binaryRegionSize, binaryRegionSize+screenRegionSize-1, true)
	mapper.Map(banked, binaryRegionSize+screenRegionSize, 0xffff, false)

	c := cpu.New(mapper)
	return c.Run()
}
