package charter

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constprec is the precision in bits used to compute the named constants
// before rounding them to float32.
const constprec = 64

// constants holds the values of the named constants. It is filled once by
// init and never written again.
var constants [TokenNaN + 1]float32

func init() {
	one := new(big.Float).SetPrec(constprec).SetInt64(1)

	pi := bigfloat.Pi(new(big.Float).SetPrec(constprec))
	e := bigfloat.Exp(new(big.Float).SetPrec(constprec), one)
	// φ = (1 + √5) / 2
	phi := new(big.Float).SetPrec(constprec).SetInt64(5)
	phi.Sqrt(phi)
	phi.Add(phi, one)
	phi.Quo(phi, big.NewFloat(2))

	constants[TokenPi] = round32(pi)
	constants[TokenEuler] = round32(e)
	constants[TokenPhi] = round32(phi)
	constants[TokenInfinity] = float32(math.Inf(1))
	constants[TokenNaN] = float32(math.NaN())
}

func round32(x *big.Float) float32 {
	f, _ := x.Float32()
	return f
}

// Constant returns the value of a named constant. Panics if t is not a
// constant.
func Constant(t TokenType) float32 {
	if !t.IsConstant() {
		panic("charter: " + t.String() + " is not a constant")
	}
	return constants[t]
}

// unary holds the implementations of the prefix functions and factorial.
// Functions are computed in double precision and rounded, the way the C
// single-precision library functions behave.
var unary = map[TokenType]func(float32) float32{
	TokenSin: lift(math.Sin),
	TokenCos: lift(math.Cos),
	TokenTan: lift(math.Tan),
	TokenCot: recip(math.Tan),
	TokenSec: recip(math.Cos),
	TokenCsc: recip(math.Sin),

	TokenArcSin: lift(math.Asin),
	TokenArcCos: lift(math.Acos),
	TokenArcTan: lift(math.Atan),
	TokenArcCot: func(a float32) float32 {
		return float32(math.Pi/2) - float32(math.Atan(float64(a)))
	},
	// Out-of-range arguments give NaN on purpose; the tessellator treats
	// NaN as outside the domain.
	TokenArcSec: func(a float32) float32 {
		return float32(math.Acos(float64(1 / a)))
	},
	TokenArcCsc: func(a float32) float32 {
		return float32(math.Asin(float64(1 / a)))
	},

	TokenLog:   lift(math.Log10),
	TokenLn:    lift(math.Log),
	TokenSqrt:  lift(math.Sqrt),
	TokenAbs:   lift(math.Abs),
	TokenFloor: lift(math.Floor),
	TokenCeil:  lift(math.Ceil),

	TokenFactorial: func(a float32) float32 {
		return float32(math.Gamma(float64(a) + 1))
	},
}

func lift(f func(float64) float64) func(float32) float32 {
	return func(a float32) float32 {
		return float32(f(float64(a)))
	}
}

// recip creates a reciprocal trig function which gives 0 where f is exactly
// zero.
func recip(f func(float64) float64) func(float32) float32 {
	return func(a float32) float32 {
		v := float32(f(float64(a)))
		if v == 0 {
			return 0
		}
		return 1 / v
	}
}

// binary applies an infix operator. Division by zero gives 0.
func binary(t TokenType, a, b float32) float32 {
	switch t {
	case TokenPlus:
		return a + b
	case TokenMinus:
		return a - b
	case TokenTimes:
		return a * b
	case TokenDivide:
		if b == 0 {
			return 0
		}
		return a / b
	case TokenExp:
		return float32(math.Pow(float64(a), float64(b)))
	default:
		panic("charter: " + t.String() + " is not a binary operator")
	}
}
