package compiler

// ToPostfix reorders an infix token sequence into postfix order with the
// shunting-yard algorithm. Star binds tighter than concatenation, which binds
// tighter than alternation; both binary operators are left-associative.
//
// Star is a postfix operator on the operand that precedes it, so it goes
// straight to the output. A star that does not follow an operand (start of
// pattern, after '(' or after a binary operator) is reported as EmptyOperand
// here, because postfix order alone would silently attach it elsewhere.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	afterOperand := false

	for _, tok := range tokens {
		switch tok.Kind {
		case Literal:
			out = append(out, tok)
			afterOperand = true

		case Star:
			if !afterOperand {
				return nil, newError(EmptyOperand, tok.Offset, "'*' has nothing to repeat")
			}
			out = append(out, tok)

		case Concat, Alternate:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == LParen || top.Kind.precedence() < tok.Kind.precedence() {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
			afterOperand = false

		case LParen:
			stack = append(stack, tok)
			afterOperand = false

		case RParen:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, newError(UnmatchedParenthesis, tok.Offset, "')' has no matching '('")
			}
			afterOperand = true
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == LParen {
			return nil, newError(UnmatchedParenthesis, top.Offset, "'(' is never closed")
		}
		out = append(out, top)
	}
	return out, nil
}
