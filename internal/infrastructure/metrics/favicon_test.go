package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabicon/internal/application/port"
)

func TestFaviconMetrics_Counts(t *testing.T) {
	m := NewFaviconMetrics()

	m.RecordCandidate(port.CandidateKept)
	m.RecordCandidate(port.CandidateKept)
	m.RecordCandidate(port.CandidateRejected)

	counts, err := m.Counts()
	require.NoError(t, err)
	assert.Equal(t, 2.0, counts[port.CandidateKept])
	assert.Equal(t, 1.0, counts[port.CandidateRejected])
	assert.Equal(t, 0.0, counts[port.CandidateIgnored])
	assert.Contains(t, counts, port.CandidateRescaleFailed)
}

func TestFaviconMetrics_WriteTextfile(t *testing.T) {
	m := NewFaviconMetrics()
	m.RecordCandidate(port.CandidateIgnored)

	path := filepath.Join(t.TempDir(), "tabicon.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tabicon_candidates_total{outcome="ignored"} 1`)
}
