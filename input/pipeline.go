package input

import "fmt"

// ParseAll applies parse to every record and stops at the first failure.
// The returned error names the 1-based record number and wraps the parse error.
func ParseAll[T any](records []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		v, err := parse(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d %q: %w", i+1, rec, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// CountIf returns how many items satisfy pred.
func CountIf[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}

	return n
}

// Sum adds f(item) over items.
func Sum[T any](items []T, f func(T) int) int {
	total := 0
	for _, it := range items {
		total += f(it)
	}

	return total
}
