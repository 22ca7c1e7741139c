// Package split partitions a table into train and test sets.
package split

import (
	"fmt"
	"math/rand"

	"biasvar/pkg/table"
)

// TrainTest splits t by row position: the leading rows train, the trailing
// int(n*testFrac) rows test. Row order within each partition is preserved.
// testFrac must lie in (0, 1).
func TrainTest(t *table.Table, testFrac float64) (train, test *table.Table, err error) {
	if testFrac <= 0 || testFrac >= 1 {
		return nil, nil, fmt.Errorf("test fraction must be in (0, 1), got %g", testFrac)
	}
	n := t.Len()
	nTest := int(float64(n) * testFrac)
	if nTest == 0 || nTest == n {
		return nil, nil, fmt.Errorf("test fraction %g leaves an empty partition for %d rows", testFrac, n)
	}
	train, err = t.Slice(0, n-nTest)
	if err != nil {
		return nil, nil, err
	}
	test, err = t.Slice(n-nTest, n)
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// Shuffled permutes the rows of t with rng and then splits as TrainTest does.
func Shuffled(t *table.Table, testFrac float64, rng *rand.Rand) (train, test *table.Table, err error) {
	if rng == nil {
		return nil, nil, fmt.Errorf("nil random source")
	}
	shuf, err := t.Take(rng.Perm(t.Len()))
	if err != nil {
		return nil, nil, err
	}
	return TrainTest(shuf, testFrac)
}
