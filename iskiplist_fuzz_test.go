package iskiplist

import (
	"math/rand"
	"testing"
)

// oracleOp mirrors one random mutation applied to both the List and a
// plain slice oracle (spec §8 Scenario S6: randomized oracle).
type oracleOp int

const (
	opInsert oracleOp = iota
	opDelete
	opReplace
	numOracleOps
)

// FuzzListAgainstSliceOracle drives a List and a plain []int oracle with
// the same random stream of inserts, deletes, and replaces, checking after
// every step that the list's iteration matches the oracle and every
// structural invariant holds (spec §8 Scenario S6). Every element has
// unit user size, so user position coincides with item index throughout.
func FuzzListAgainstSliceOracle(f *testing.F) {
	f.Add(int64(1), 40)
	f.Add(int64(2), 5)
	f.Add(int64(3), 200)
	f.Add(int64(4), 0)

	f.Fuzz(func(t *testing.T, seed int64, stepsIn int) {
		steps := stepsIn % 200
		if steps < 0 {
			steps = -steps
		}

		rng := rand.New(rand.NewSource(seed))
		l := New(WithNodeCapacity(4), WithMaxHeight(6), WithRand(rand.New(rand.NewSource(seed^0x5bd1e995))))
		var oracle []int
		nextVal := 0

		for step := 0; step < steps; step++ {
			n := len(oracle)
			switch oracleOp(rng.Intn(int(numOracleOps))) {
			case opInsert:
				pos := 0
				if n > 0 {
					pos = rng.Intn(n + 1)
				}
				count := 1 + rng.Intn(3)
				items := make([]any, count)
				ints := make([]int, count)
				for i := range items {
					items[i] = nextVal
					ints[i] = nextVal
					nextVal++
				}
				l.InsertAt(uint64(pos), items, nil)
				oracle = append(oracle[:pos], append(append([]int(nil), ints...), oracle[pos:]...)...)

			case opDelete:
				if n == 0 {
					continue
				}
				pos := rng.Intn(n)
				count := 1 + rng.Intn(n-pos)
				l.DeleteAt(uint64(pos), count)
				oracle = append(oracle[:pos], oracle[pos+count:]...)

			case opReplace:
				if n == 0 {
					continue
				}
				pos := rng.Intn(n)
				count := 1 + rng.Intn(n-pos)
				newCount := 1 + rng.Intn(3)
				items := make([]any, newCount)
				ints := make([]int, newCount)
				for i := range items {
					items[i] = nextVal
					ints[i] = nextVal
					nextVal++
				}
				l.ReplaceAt(uint64(pos), count, items, nil)
				tail := append([]int(nil), oracle[pos+count:]...)
				oracle = append(oracle[:pos], ints...)
				oracle = append(oracle, tail...)
			}

			if err := l.Check(); err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
			if int(l.LenItems()) != len(oracle) {
				t.Fatalf("step %d: LenItems()=%d, oracle len=%d", step, l.LenItems(), len(oracle))
			}
			if int(l.LenUser()) != len(oracle) {
				t.Fatalf("step %d: LenUser()=%d, oracle len=%d (unit user sizes)", step, l.LenUser(), len(oracle))
			}

			got := collectList(l)
			if len(got) != len(oracle) {
				t.Fatalf("step %d: got %v, want %v", step, got, oracle)
			}
			for i, want := range oracle {
				if got[i] != want {
					t.Fatalf("step %d: got[%d]=%v, want %v", step, i, got[i], want)
				}
			}
		}
	})
}
