package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/arrays/pkg/errors"
)

func TestObserve(t *testing.T) {
	c := NewCollector("arrays")

	c.Observe("concat", 5, time.Microsecond, nil)
	c.Observe("concat", 3, time.Microsecond, nil)
	c.Observe("get", 0, time.Nanosecond, errors.New(errors.ErrorTypeIndexOutOfRange, "index 9 out of range [0, 3)"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.operations.WithLabelValues("concat", StatusSuccess)))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.elements.WithLabelValues("concat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errorTypes.WithLabelValues("get", "index_out_of_range")))

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, OpSnapshot{Success: 2, Elements: 8}, snap["concat"])
	assert.Equal(t, OpSnapshot{Failure: 1}, snap["get"])
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("arrays")
	b := NewCollector("arrays")

	a.Observe("equal", 1, 0, nil)

	assert.Len(t, a.Snapshot(), 1)
	assert.Empty(t, b.Snapshot())

	families, err := a.Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "arrays_operations_total")
	assert.Contains(t, names, "arrays_elements_processed_total")
}

func TestUntypedErrorCountsAsInternal(t *testing.T) {
	c := NewCollector("arrays")
	c.Observe("decode", 0, 0, assert.AnError)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.errorTypes.WithLabelValues("decode", "internal")))
}

func TestTimer(t *testing.T) {
	timer := NewTimer("shuffle")
	assert.Equal(t, "shuffle", timer.Name())
	first := timer.Stop()
	assert.GreaterOrEqual(t, timer.Stop(), first)
}
