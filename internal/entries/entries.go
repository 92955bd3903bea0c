package entries

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Defaults is the list a fresh wheel starts with.
var Defaults = []string{"Alice", "Bob", "Charlie", "Diana"}

// Shuffler is the randomness Shuffle needs. *rand.Rand satisfies it.
type Shuffler interface {
	IntN(n int) int
}

// List is the ordered, editable entry list behind the wheel.
// Duplicates are allowed; order decides slice position.
type List struct {
	names      []string
	descending bool
}

// New creates a list holding a copy of names.
func New(names []string) *List {
	return &List{names: slices.Clone(names)}
}

// Entries returns the current names. Callers must not modify the result.
func (l *List) Entries() []string {
	return l.names
}

// Values returns a copy of the current names.
func (l *List) Values() []string {
	return slices.Clone(l.names)
}

func (l *List) Len() int {
	return len(l.names)
}

// Set replaces the list contents.
func (l *List) Set(names []string) {
	l.names = slices.Clone(names)
}

// Add appends a trimmed name. Blank names are rejected.
func (l *List) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	l.names = append(l.names, name)
	return true
}

// RemoveAt deletes the entry at index i.
func (l *List) RemoveAt(i int) (string, bool) {
	if i < 0 || i >= len(l.names) {
		return "", false
	}
	name := l.names[i]
	l.names = slices.Delete(l.names, i, i+1)
	return name, true
}

// Clear empties the list.
func (l *List) Clear() {
	l.names = nil
}

// Sort orders the list, alternating ascending and descending on each call.
func (l *List) Sort() {
	desc := l.descending
	slices.SortStableFunc(l.names, func(a, b string) int {
		c := strings.Compare(strings.ToLower(a), strings.ToLower(b))
		if c == 0 {
			c = strings.Compare(a, b)
		}
		if desc {
			return -c
		}
		return c
	})
	l.descending = !l.descending
}

// Shuffle permutes the list uniformly (Fisher-Yates).
func (l *List) Shuffle(r Shuffler) {
	for i := len(l.names) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		l.names[i], l.names[j] = l.names[j], l.names[i]
	}
}

// Import replaces the list with the non-blank lines of r. An input with no
// names leaves the list unchanged.
func (l *List) Import(r io.Reader) (int, error) {
	names, err := Parse(r)
	if err != nil {
		return 0, err
	}
	if len(names) == 0 {
		return 0, nil
	}
	l.names = names
	return len(names), nil
}

// Export writes the list as newline-delimited text.
func (l *List) Export(w io.Writer) error {
	if _, err := io.WriteString(w, strings.Join(l.names, "\n")); err != nil {
		return fmt.Errorf("failed to export entries: %w", err)
	}
	return nil
}

// Parse reads newline-delimited names, trimming each and dropping blanks.
func Parse(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return names, nil
}
