package asm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompileS1(t *testing.T) {
	src := "mov $4200 R1\nmov R1 &AAAA\nmov $1000 R1\nmov &AAAA R2\nadd R1 R2\n"
	got, err := Compile(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{
		0x10, 0x42, 0x00, 0x04,
		0x12, 0x04, 0xAA, 0xAA,
		0x10, 0x10, 0x00, 0x04,
		0x13, 0xAA, 0xAA, 0x06,
		0x14, 0x04, 0x06,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileS2Labels(t *testing.T) {
	src := "mov $2345 ACC\nstart:\njeq $4200 &[!start]\n"
	got, err := Compile(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x10, 0x23, 0x45, 0x02, 0x52, 0x42, 0x00, 0x00, 0x04}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileUnresolvedLabelFails(t *testing.T) {
	_, err := Compile("jeq $4200 &[!missing]\n")
	if err == nil {
		t.Fatalf("expected error for unresolved label")
	}
}

func TestCompileConstantFolding(t *testing.T) {
	// [$10 + $20] should fold to 0x30 at encode time.
	got, err := Compile("jeq $4200 &[$10 + $20]\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x52, 0x42, 0x00, 0x00, 0x30}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCompileRejectsIncompleteParse(t *testing.T) {
	_, err := Compile("mov $4200 R1\ngarbage\n")
	if err == nil {
		t.Fatalf("expected error on unparseable trailing input")
	}
}

func TestCompileDuplicateLabel(t *testing.T) {
	_, err := Compile("start:\nstart:\nhlt\n")
	if err == nil {
		t.Fatalf("expected error on duplicate label")
	}
}
