// Package luca implements the calculation engine of a line-oriented
// notepad calculator.
//
// Each line of input is a single statement: an arithmetic expression over
// integers, floats, and currency-tagged amounts, or an assignment to a
// variable. Statements are evaluated against a mutable Environment shared
// across lines, so "price = 3" on one line makes "2 price" meaningful on
// the next. A bare variable right after a number multiplies implicitly, and
// a € or $ glyph before or after a number tags it with a currency, so
// "22€ + 8" is "30.00 €".
//
// Integer arithmetic is exact up to 128 bits; dividing two integers that
// don't divide evenly produces a float rather than truncating. Mixing
// currencies in one operation is an error, never a conversion.
package luca
