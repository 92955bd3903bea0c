package entries

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func TestAdd(t *testing.T) {
	l := New(nil)
	if l.Add("   ") {
		t.Error("blank name accepted")
	}
	if !l.Add("  Bob ") {
		t.Fatal("name rejected")
	}
	l.Add("Bob")
	if got := l.Values(); !slices.Equal(got, []string{"Bob", "Bob"}) {
		t.Errorf("values = %v", got)
	}
}

func TestRemoveAt(t *testing.T) {
	l := New([]string{"A", "B", "A"})
	name, ok := l.RemoveAt(2)
	if !ok || name != "A" {
		t.Fatalf("RemoveAt(2) = %q, %v", name, ok)
	}
	if got := l.Values(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("values = %v", got)
	}
	if _, ok := l.RemoveAt(5); ok {
		t.Error("out of range remove succeeded")
	}
	if _, ok := l.RemoveAt(-1); ok {
		t.Error("negative remove succeeded")
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := []string{"A", "B"}
	l := New(src)
	src[0] = "Z"
	if l.Entries()[0] != "A" {
		t.Error("list aliases its input")
	}
}

func TestSortAlternates(t *testing.T) {
	l := New([]string{"charlie", "Alice", "bob"})
	l.Sort()
	if got := l.Values(); !slices.Equal(got, []string{"Alice", "bob", "charlie"}) {
		t.Errorf("ascending = %v", got)
	}
	l.Sort()
	if got := l.Values(); !slices.Equal(got, []string{"charlie", "bob", "Alice"}) {
		t.Errorf("descending = %v", got)
	}
	l.Sort()
	if got := l.Values(); got[0] != "Alice" {
		t.Errorf("third sort should be ascending, got %v", got)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	l := New(names)
	l.Shuffle(rand.New(rand.NewPCG(3, 4)))
	got := l.Values()
	slices.Sort(got)
	if !slices.Equal(got, names) {
		t.Errorf("shuffle lost names: %v", got)
	}
}

func TestShuffleReachesEveryPosition(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	first := map[string]int{}
	for i := 0; i < 3000; i++ {
		l := New([]string{"A", "B", "C"})
		l.Shuffle(r)
		first[l.Entries()[0]]++
	}
	for _, name := range []string{"A", "B", "C"} {
		if first[name] < 800 {
			t.Errorf("%s led %d of 3000 shuffles", name, first[name])
		}
	}
}

func TestImport(t *testing.T) {
	l := New(Defaults)
	n, err := l.Import(strings.NewReader("  Ann \n\n\tBen\r\n  \nCid"))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 3 {
		t.Errorf("imported %d, want 3", n)
	}
	if got := l.Values(); !slices.Equal(got, []string{"Ann", "Ben", "Cid"}) {
		t.Errorf("values = %v", got)
	}

	n, err = l.Import(strings.NewReader("\n  \n"))
	if err != nil || n != 0 {
		t.Fatalf("empty import = %d, %v", n, err)
	}
	if l.Len() != 3 {
		t.Error("empty import replaced the list")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestImportReadError(t *testing.T) {
	l := New(Defaults)
	if _, err := l.Import(failingReader{}); err == nil {
		t.Fatal("expected error")
	}
	if l.Len() != len(Defaults) {
		t.Error("failed import changed the list")
	}
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	if err := New([]string{"A", "B C"}).Export(&buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if buf.String() != "A\nB C" {
		t.Errorf("export = %q", buf.String())
	}

	// Round trip through Import.
	l := New(nil)
	if _, err := l.Import(&buf); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(l.Values(), []string{"A", "B C"}) {
		t.Errorf("round trip = %v", l.Values())
	}
}

func TestClear(t *testing.T) {
	l := New(Defaults)
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("len = %d after clear", l.Len())
	}
}
