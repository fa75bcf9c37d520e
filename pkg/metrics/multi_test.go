package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulti(t *testing.T) {
	ok := &MockProvider{}
	failing := &MockProvider{Err: errors.New("agent down")}
	m := Multi{failing, ok}

	err := m.Count(MetricRequests, 1, []string{"model:users"})
	assert.ErrorContains(t, err, "agent down")
	assert.NoError(t, Multi{ok}.Gauge("g", 2, nil))
	assert.Error(t, m.Histogram(MetricLatency, 12, nil))

	// o provedor saudável recebe tudo mesmo com o outro falhando
	assert.Len(t, ok.Calls, 3)
	assert.Len(t, failing.Calls, 2)
	assert.Equal(t, "count", ok.Calls[0].Type)
	assert.Equal(t, "histogram", ok.Calls[2].Type)
}

func TestMulti_Empty(t *testing.T) {
	assert.NoError(t, Multi{}.Count("x", 1, nil))
}
