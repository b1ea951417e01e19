package isa

import "testing"

func TestFormSizes(t *testing.T) {
	cases := []struct {
		form Form
		want int
	}{
		{FormNone, 1},
		{FormReg, 2},
		{FormLit, 3},
		{FormRegReg, 3},
		{FormRegPtrReg, 3},
		{FormLitReg, 4},
		{FormMemReg, 4},
		{FormRegMem, 4},
		{FormRegLit, 4},
		{FormRegLit8, 3},
		{FormLitMem, 5},
		{FormLitOffReg, 5},
	}
	for _, c := range cases {
		if got := c.form.Size(); got != c.want {
			t.Errorf("Form(%d).Size() = %d, want %d", c.form, got, c.want)
		}
	}
}

func TestLookupKnownOpcodes(t *testing.T) {
	d, ok := Lookup(MoveLitReg)
	if !ok || d.Mnemonic != "MOV" || d.Form != FormLitReg {
		t.Fatalf("got %+v, %v", d, ok)
	}

	d, ok = Lookup(Hlt)
	if !ok || d.Mnemonic != "HLT" || d.Size() != 1 {
		t.Fatalf("got %+v, %v", d, ok)
	}
}

func TestLookupUnknownOpcode(t *testing.T) {
	if _, ok := Lookup(0x01); ok {
		t.Fatalf("expected 0x01 to be unmapped")
	}
}
