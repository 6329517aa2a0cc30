package menace

import (
	"fmt"
	"os"
	"testing"

	"github.com/tage64/menace/pkg/ttt"
)

func TestMain(m *testing.M) {
	SetSeedGeneratorFn(func() int64 {
		return 42
	})
	SetVerify(true)
	fmt.Printf("Using seed %d\n", SeedGeneratorFn())

	os.Exit(m.Run())
}

func mustBoard(t testing.TB, notation string) ttt.Board {
	t.Helper()
	b, err := ttt.ParseBoard(notation)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	f()
}

func rankedString(moves [ttt.NMoves]ttt.Move) string {
	return fmt.Sprint(moves)
}
