package regime

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testTable() Table[int] {
	return Table[int]{
		{"underflow", -700, 0},
		{"series", -1, 1},
		{"interior", 4, 2},
		{"asymptotic", math.Inf(1), 3},
	}
}

func TestValidate(t *testing.T) {

	require.NoError(t, testTable().Validate())

	for _, tc := range []struct {
		name  string
		table Table[int]
		err   error
	}{
		{"Empty", Table[int]{}, ErrEmptyTable},
		{"Unsorted", Table[int]{{"a", 1, 0}, {"b", 1, 0}, {"c", math.Inf(1), 0}}, ErrUnsorted},
		{"Decreasing", Table[int]{{"a", 2, 0}, {"b", 1, 0}, {"c", math.Inf(1), 0}}, ErrUnsorted},
		{"Open", Table[int]{{"a", 1, 0}, {"b", 2, 0}}, ErrOpenTable},
		{"Duplicate", Table[int]{{"a", 1, 0}, {"a", math.Inf(1), 0}}, ErrDuplicateName},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, errors.Is(tc.table.Validate(), tc.err))
		})
	}
}

func TestLookup(t *testing.T) {

	table := testTable()

	t.Run("Boundaries", func(t *testing.T) {
		// A boundary belongs to the regime above it, and to exactly one regime.
		for i := range table[:len(table)-1] {
			_, upper := table.Bounds(i)

			r, ok := table.Lookup(upper)
			require.True(t, ok)
			require.Equal(t, table[i+1].Name, r.Name)

			r, ok = table.Lookup(math.Nextafter(upper, math.Inf(-1)))
			require.True(t, ok)
			require.Equal(t, table[i].Name, r.Name)

			var matches int
			for j := range table {
				lower, upper2 := table.Bounds(j)
				if upper >= lower && upper < upper2 {
					matches++
				}
			}
			require.Equal(t, 1, matches)
		}
	})

	t.Run("Extremes", func(t *testing.T) {
		r, ok := table.Lookup(math.Inf(-1))
		require.True(t, ok)
		require.Equal(t, "underflow", r.Name)

		r, ok = table.Lookup(math.Inf(1))
		require.True(t, ok)
		require.Equal(t, "asymptotic", r.Name)
	})

	t.Run("NaN", func(t *testing.T) {
		_, ok := table.Lookup(math.NaN())
		require.False(t, ok)
	})

	t.Run("Names", func(t *testing.T) {
		want := []string{"underflow", "series", "interior", "asymptotic"}
		if diff := cmp.Diff(want, table.Names()); diff != "" {
			t.Fatalf("unexpected names (-want +got):\n%s", diff)
		}
	})
}
