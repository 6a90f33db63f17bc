// Package charter turns single-variable math expressions into programs that
// can be evaluated quickly and many times over, as a graphing tool needs.
//
// The syntax is what you'd type into a calculator. "2x" and "xsin(x)" are
// products, "-x^2" is "-(x^2)", and "x!" is Γ(x+1). Parsing never fails
// outright; an invalid expression reports its error through Err and evaluates
// to zero. Expressions are immutable once parsed, so any number of goroutines
// may evaluate the same one at once.
//
// Evaluation is in single precision. Division by zero gives 0 rather than an
// infinity, while other domain errors such as sqrt(-1) give NaN. Package
// tessellate relies on that distinction to break curves where they are
// undefined.
package charter
