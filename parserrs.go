package luca

import "strconv"

// UnexpectedTokenError is an error indicating a token that cannot appear
// where it did. It implements InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the offending token.
	Token string
}

func (err *UnexpectedTokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position at which the mismatch was detected.
	Col int
	// Left is the unmatched opening parenthesis, if any.
	Left string
	// Right is the unmatched closing parenthesis, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// DepthError is an error indicating that a statement nests deeper than the
// parser allows.
type DepthError struct {
	// Col is the position at which the limit was exceeded.
	Col int
}

func (err *DepthError) Error() string {
	return errpos(err.Col, "expression nests deeper than "+strconv.Itoa(maxDepth)+" levels")
}

func (err *DepthError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DepthError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*OverflowError)(nil)
)
