package life

import (
	"math/bits"
	"testing"

	"gitlab.com/terezi/lifesat/cnf"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name         string
		neighborhood int
		want         bool
	}{
		{"empty", 0, false},
		{"lone center", 1 << 4, false},
		{"birth on 3", 0b000000111, true},
		{"survive on 2", 0b000010011, true},
		{"death on 1", 0b000010001, false},
		{"death on 4", 0b101010101, false},
		{"crowded birth stays dead", 0b111101111, false},
	}
	for _, tt := range tests {
		if got := Next(tt.neighborhood); got != tt.want {
			t.Errorf("%s: Next(%010b) = %t, want %t", tt.name, tt.neighborhood, got, tt.want)
		}
	}
}

func TestValidMatchesNext(t *testing.T) {
	for n := 0; n < 512; n++ {
		want := Next(n)
		if !Valid(n + 512*boolInt(want)) {
			t.Fatalf("transition %010b -> %t should be valid", n, want)
		}
		if Valid(n + 512*boolInt(!want)) {
			t.Fatalf("transition %010b -> %t should be invalid", n, !want)
		}
	}
}

// The conjunction of all prime implicant clauses must equal the rule's
// truth table on all 1024 (neighborhood, next) words.
func TestImplicantClosure(t *testing.T) {
	imps := Implicants()
	if len(imps) == 0 {
		t.Fatal("empty implicant table")
	}
	for x := 0; x < 1024; x++ {
		all := true
		for _, imp := range imps {
			if int(imp.Care)&^(x^int(imp.Force)) == 0 {
				all = false
				break
			}
		}
		if all != Valid(x) {
			t.Fatalf("clause set disagrees with rule at %010b: clauses %t, rule %t", x, all, Valid(x))
		}
	}
}

func TestImplicantShape(t *testing.T) {
	for _, imp := range Implicants() {
		if imp.Force&^imp.Care != 0 {
			t.Fatalf("force %010b not a subset of care %010b", imp.Force, imp.Care)
		}
		if n := bits.OnesCount16(imp.Care); n > cnf.MaxClauseLen {
			t.Fatalf("implicant %010b/%010b has %d care bits; clauses would overflow", imp.Care, imp.Force, n)
		}
	}
}

func TestImplicantsMinimal(t *testing.T) {
	imps := Implicants()
	for i, a := range imps {
		for j, b := range imps {
			if i == j {
				continue
			}
			if a.Care&b.Care == a.Care && a.Care&b.Force == a.Force {
				t.Fatalf("implicant %d (%010b/%010b) subsumes %d (%010b/%010b)",
					i, a.Care, a.Force, j, b.Care, b.Force)
			}
		}
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
