package asm

import (
	"fmt"

	"vm16/internal/isa"
)

// Compile runs the two-pass assembler over source: pass 1 computes label
// addresses from each instruction's declared size, pass 2 encodes every
// instruction to bytes, resolving label references against the symbol
// table built in pass 1.
func Compile(source string) ([]byte, error) {
	st, err := ProgramP().Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if st.Index != len(source) {
		return nil, fmt.Errorf("input not fully consumed at index %d", st.Index)
	}

	labels, err := layout(st.Result)
	if err != nil {
		return nil, err
	}
	return emit(st.Result, labels)
}

// layout is assembler pass 1: walk the program, recording each label's
// address and advancing a running address counter by every instruction's
// declared size.
func layout(nodes []Node) (map[string]uint16, error) {
	labels := make(map[string]uint16)
	addr := 0
	for _, n := range nodes {
		switch v := n.(type) {
		case Label:
			if _, exists := labels[v.Name]; exists {
				return nil, fmt.Errorf("label %q defined more than once", v.Name)
			}
			labels[v.Name] = uint16(addr)
		case Instruction:
			addr += v.Descriptor.Size()
		default:
			return nil, fmt.Errorf("unexpected top-level node %T", n)
		}
	}
	return labels, nil
}

// emit is assembler pass 2: walk the program again and encode every
// instruction, now that every label's address is known.
func emit(nodes []Node, labels map[string]uint16) ([]byte, error) {
	var out []byte
	for _, n := range nodes {
		switch v := n.(type) {
		case Label:
			// zero bytes
		case Instruction:
			b, err := encodeInstruction(v, labels)
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
		default:
			return nil, fmt.Errorf("unexpected top-level node %T", n)
		}
	}
	return out, nil
}

func encodeInstruction(instr Instruction, labels map[string]uint16) ([]byte, error) {
	out := []byte{instr.Descriptor.Opcode}
	for _, arg := range instr.Args {
		b, err := encodeOperand(arg, labels)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", instr.Descriptor.Mnemonic, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func encodeOperand(node Node, labels map[string]uint16) ([]byte, error) {
	switch n := node.(type) {
	case HexLiteral:
		return be16(n.Value), nil
	case Address:
		return be16(n.Value), nil
	case HexLiteral8:
		return []byte{n.Value}, nil
	case Register:
		off, err := isa.RegisterOffset(n.Name)
		if err != nil {
			return nil, err
		}
		return []byte{byte(off)}, nil
	case Variable:
		v, ok := labels[n.Name]
		if !ok {
			return nil, fmt.Errorf("unresolved label %q", n.Name)
		}
		return be16(v), nil
	case BinaryOp:
		v, err := evalConst(n, labels)
		if err != nil {
			return nil, err
		}
		return be16(v), nil
	case Operator:
		return nil, fmt.Errorf("bare operator node reached the encoder")
	case Label:
		return nil, nil
	case Ignored:
		return nil, fmt.Errorf("ignored node survived into the encoded tree")
	default:
		return nil, fmt.Errorf("unsupported node type %T in encoder", node)
	}
}

// evalConst folds a BinaryOp (and any Variable/nested BinaryOp inside it)
// into a single uint16 using the program's symbol table. Arithmetic wraps
// the way all uint16 arithmetic in Go does; overflow/underflow is not an
// error.
func evalConst(node Node, labels map[string]uint16) (uint16, error) {
	switch n := node.(type) {
	case HexLiteral:
		return n.Value, nil
	case Variable:
		v, ok := labels[n.Name]
		if !ok {
			return 0, fmt.Errorf("unresolved label %q", n.Name)
		}
		return v, nil
	case BinaryOp:
		l, err := evalConst(n.Left, labels)
		if err != nil {
			return 0, err
		}
		r, err := evalConst(n.Right, labels)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpPlus:
			return l + r, nil
		case OpMinus:
			return l - r, nil
		case OpStar:
			return l * r, nil
		default:
			return 0, fmt.Errorf("unknown operator %v", n.Op)
		}
	default:
		return 0, fmt.Errorf("cannot evaluate %T as a constant expression", node)
	}
}
