package output

import "context"

// CounterReader reads back the totals of a counter grouped by one attribute.
type CounterReader interface {
	CounterTotals(ctx context.Context, name, key string) (map[string]int64, error)
}
