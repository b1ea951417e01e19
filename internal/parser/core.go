// Package parser implements a small generic parser-combinator library over
// string input, in the style of a hand-rolled recursive-descent toolkit
// rather than a parser-generator. Parsers are pure values: a Parser[O] wraps
// a function from (input, index) to a new index plus a result, or a
// ParseError. No combinator consumes input or mutates shared state on
// failure.
package parser

import (
	"fmt"
	"strings"
)

// State is the outcome of a successful parse: the index just past the
// consumed input, and the produced value.
type State[O any] struct {
	Index  int
	Result O
}

// ParseError reports the absolute index in the original input at which a
// parser failed, along with a human-readable message.
type ParseError struct {
	Message string
	Index   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (index %d)", e.Message, e.Index)
}

// runFunc is the underlying function every Parser wraps. index is always
// absolute with respect to the input string passed to Parse/ParseAt.
type runFunc[O any] func(input string, index int) (State[O], error)

type Parser[O any] struct {
	run runFunc[O]
}

// New constructs a Parser directly from its run function. Most callers
// should prefer composing existing combinators instead.
func New[O any](f runFunc[O]) Parser[O] {
	return Parser[O]{run: f}
}

// Parse runs the parser from the start of input.
func (p Parser[O]) Parse(input string) (State[O], error) {
	return p.run(input, 0)
}

// ParseAt runs the parser starting at an arbitrary absolute index, for
// hand-written parsers outside this package that drive sub-parsers
// themselves (the combinators here call the wrapped function directly).
func (p Parser[O]) ParseAt(input string, index int) (State[O], error) {
	return p.run(input, index)
}

// Map transforms a successful result. Map cannot be a method on Parser[O]
// because Go forbids methods from introducing new type parameters, so it
// is a free function like the rest of the type-changing combinators below.
func Map[I, O any](p Parser[I], f func(I) O) Parser[O] {
	return New(func(input string, index int) (State[O], error) {
		st, err := p.run(input, index)
		if err != nil {
			return State[O]{}, err
		}
		return State[O]{Index: st.Index, Result: f(st.Result)}, nil
	})
}

// MapErr rewrites the error a parser produces, without touching a success.
func MapErr[O any](p Parser[O], f func(error) error) Parser[O] {
	return New(func(input string, index int) (State[O], error) {
		st, err := p.run(input, index)
		if err != nil {
			return State[O]{}, f(err)
		}
		return st, nil
	})
}

// AndThen is monadic bind: run p, then feed its result into f to obtain the
// next parser, then run that parser from where p left off.
func AndThen[I, O any](p Parser[I], f func(I) Parser[O]) Parser[O] {
	return New(func(input string, index int) (State[O], error) {
		st, err := p.run(input, index)
		if err != nil {
			return State[O]{}, err
		}
		next := f(st.Result)
		return next.run(input, st.Index)
	})
}

// ZeroOrMore applies p repeatedly until it fails, collecting results. It
// never itself fails; an empty match is legal.
func ZeroOrMore[O any](p Parser[O]) Parser[[]O] {
	return New(func(input string, index int) (State[[]O], error) {
		cur := index
		var results []O
		for {
			st, err := p.run(input, cur)
			if err != nil {
				break
			}
			results = append(results, st.Result)
			cur = st.Index
		}
		return State[[]O]{Index: cur, Result: results}, nil
	})
}

// OneOrMore is ZeroOrMore but fails if nothing matched.
func OneOrMore[O any](p Parser[O]) Parser[[]O] {
	zom := ZeroOrMore(p)
	return New(func(input string, index int) (State[[]O], error) {
		st, _ := zom.run(input, index)
		if len(st.Result) == 0 {
			return State[[]O]{}, &ParseError{Message: "could not match one or more", Index: index}
		}
		return st, nil
	})
}

// Left runs p then q in sequence and keeps p's result, but the final index
// is q's — both are consumed, only one result survives.
func Left[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return New(func(input string, index int) (State[A], error) {
		sa, err := p.run(input, index)
		if err != nil {
			return State[A]{}, err
		}
		sb, err := q.run(input, sa.Index)
		if err != nil {
			return State[A]{}, err
		}
		return State[A]{Index: sb.Index, Result: sa.Result}, nil
	})
}

// Right is Left's mirror: runs p then q, keeps q's result.
func Right[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return New(func(input string, index int) (State[B], error) {
		sa, err := p.run(input, index)
		if err != nil {
			return State[B]{}, err
		}
		return q.run(input, sa.Index)
	})
}

// Between parses pre, then p, then post, keeping only p's result.
func Between[A, B, C any](pre Parser[A], p Parser[B], post Parser[C]) Parser[B] {
	return Right(pre, Left(p, post))
}

// SequenceOf runs same-typed parsers left to right, failing (and returning
// immediately) on the first sub-parser error.
func SequenceOf[O any](parsers []Parser[O]) Parser[[]O] {
	return New(func(input string, index int) (State[[]O], error) {
		cur := index
		results := make([]O, 0, len(parsers))
		for _, p := range parsers {
			st, err := p.run(input, cur)
			if err != nil {
				return State[[]O]{}, err
			}
			results = append(results, st.Result)
			cur = st.Index
		}
		return State[[]O]{Index: cur, Result: results}, nil
	})
}

// Interspersed is SequenceOf but expects sep between every adjacent pair of
// parsers, never before the first or after the last.
func Interspersed[O, S any](sep Parser[S], parsers []Parser[O]) Parser[[]O] {
	return New(func(input string, index int) (State[[]O], error) {
		cur := index
		results := make([]O, 0, len(parsers))
		for i, p := range parsers {
			if i > 0 {
				st, err := sep.run(input, cur)
				if err != nil {
					return State[[]O]{}, err
				}
				cur = st.Index
			}
			st, err := p.run(input, cur)
			if err != nil {
				return State[[]O]{}, err
			}
			results = append(results, st.Result)
			cur = st.Index
		}
		return State[[]O]{Index: cur, Result: results}, nil
	})
}

// OneOf tries each alternative from the same starting index and returns the
// first success. On total failure it aggregates every child's message into
// a single ParseError.
func OneOf[O any](parsers []Parser[O]) Parser[O] {
	return New(func(input string, index int) (State[O], error) {
		var msgs []string
		for _, p := range parsers {
			st, err := p.run(input, index)
			if err == nil {
				return st, nil
			}
			msgs = append(msgs, "\t"+err.Error())
		}
		return State[O]{}, &ParseError{
			Message: "could not match any of:\n" + strings.Join(msgs, "\n"),
			Index:   index,
		}
	})
}
