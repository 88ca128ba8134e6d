// property_test.go — randomized operation sequences checked against a plain slice.
package vector_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-seq/core/vector"
)

func TestVectorPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		v := vector.New[int]()
		var model []int
		prevCap := 0

		for i := 0; i < 3000; i++ {
			val := rng.Intn(100000)
			switch rng.Intn(6) {
			case 0, 1: // push
				require.NoError(t, v.PushBack(val))
				model = append(model, val)
			case 2: // insert
				pos := rng.Intn(len(model) + 1)
				it, err := v.Insert(v.IterAt(pos), val)
				require.NoError(t, err)
				require.Equal(t, val, it.Value())
				model = append(model[:pos], append([]int{val}, model[pos:]...)...)
			case 3: // erase
				if len(model) == 0 {
					continue
				}
				pos := rng.Intn(len(model))
				v.Erase(v.IterAt(pos))
				model = append(model[:pos], model[pos+1:]...)
			case 4: // pop
				if len(model) == 0 {
					continue
				}
				v.PopBack()
				model = model[:len(model)-1]
			case 5: // reserve
				n := rng.Intn(2 * (v.Cap() + 1))
				require.NoError(t, v.Reserve(n))
			}

			require.Equal(t, len(model), v.Len(), "seed %d step %d", seed, i)
			require.LessOrEqual(t, v.Len(), v.Cap())
			require.GreaterOrEqual(t, v.Cap(), prevCap, "capacity shrank")
			prevCap = v.Cap()
		}
		require.True(t, slices.Equal(model, v.Slice()), "seed %d", seed)
	}
}
