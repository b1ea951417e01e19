package asm

import (
	"math"

	"vm16/internal/parser"
)

// SquareBracketExpressionP parses a bracketed, operator-interleaved
// sequence of operands ([ $aa12 + [!uu * !aa] - $1 ]) into a binary tree.
// Unlike most of the grammar this is not assembled purely from combinators:
// it hand-walks the bracket contents the way the source grammar does,
// alternating "expect operand" / "expect operator" until it sees the
// closing bracket, then folds the flat token list with groupBinaryOps.
func SquareBracketExpressionP() parser.Parser[Node] {
	return parser.New(func(input string, index int) (parser.State[Node], error) {
		st, err := parser.Character('[').ParseAt(input, index)
		if err != nil {
			return parser.State[Node]{}, err
		}
		idx := st.Index

		operand := parser.OneOf([]parser.Parser[Node]{
			SquareBracketExpressionP(),
			HexLiteralP(),
			VariableP(),
		})

		var flat []Node
		expectOperand := true
		for {
			ws, _ := parser.OptionalWhitespace().ParseAt(input, idx)
			idx = ws.Index
			if closeSt, cerr := parser.Character(']').ParseAt(input, idx); cerr == nil {
				idx = closeSt.Index
				break
			}

			var next parser.State[Node]
			if expectOperand {
				next, err = operand.ParseAt(input, idx)
			} else {
				next, err = OperatorP().ParseAt(input, idx)
			}
			if err != nil {
				return parser.State[Node]{}, err
			}
			flat = append(flat, next.Result)
			idx = next.Index
			expectOperand = !expectOperand
		}

		return parser.State[Node]{Index: idx, Result: groupBinaryOps(flat)}, nil
	})
}

// groupBinaryOps rebuilds a binary tree from a flat, operator-interleaved
// token list by repeatedly splitting around the lowest-priority operator
// (ties keep the leftmost occurrence), recursing on both halves. This
// respects precedence without a separate Pratt parser; because a tie splits
// at the leftmost operator, a chain of equal-priority operators groups to
// the right ($5 - $2 - $1 becomes $5 - ($2 - $1)).
func groupBinaryOps(flat []Node) Node {
	if len(flat) == 1 {
		return flat[0]
	}

	lowestIndex := -1
	lowestPriority := math.MaxInt
	for i := 1; i < len(flat); i += 2 {
		op, ok := flat[i].(Operator)
		if !ok {
			continue
		}
		if op.Op.Priority() < lowestPriority {
			lowestPriority = op.Op.Priority()
			lowestIndex = i
		}
	}

	op := flat[lowestIndex].(Operator).Op
	left := groupBinaryOps(flat[:lowestIndex])
	right := groupBinaryOps(flat[lowestIndex+1:])
	return BinaryOp{Op: op, Left: left, Right: right}
}
