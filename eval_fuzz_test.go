//go:build go1.18
// +build go1.18

package charter_test

import (
	"io"
	"log"
	"testing"

	charter "github.com/Duccs/Math-Charter"
	"github.com/Duccs/Math-Charter/tessellate"
)

func FuzzEval(f *testing.F) {
	charter.Logger = log.New(io.Discard, "", 0)
	f.Add("x", float32(1))
	f.Add("1/x", float32(0))
	f.Add("xsin(x)cos(x)!", float32(-3))
	f.Add("2^-3*4", float32(2))
	f.Fuzz(func(t *testing.T, s string, x float32) {
		// Parsing never panics, and neither does evaluating what it accepts.
		e := charter.Parse(s)
		e.Eval(x)
		tessellate.Tessellate(e, tessellate.View{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1})
	})
}
