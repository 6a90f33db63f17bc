//go:build go1.18
// +build go1.18

package charter_test

import (
	"testing"

	charter "github.com/Duccs/Math-Charter"
)

func FuzzPostfix(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1×2")
	f.Add("3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3")
	f.Add("{-(x)}!")
	f.Fuzz(func(t *testing.T, s string) {
		a, aerr := charter.PostfixOf(s)
		b, berr := charter.PostfixOf(s)
		if (aerr == nil) != (berr == nil) || len(a) != len(b) {
			t.Fatalf("%q parsed differently: %v (%v) then %v (%v)", s, a, aerr, b, berr)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%q parsed differently at %d: %v then %v", s, i, a[i], b[i])
			}
		}
	})
}
