package output

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
}

func TestCSVDetailedExporter_Golden(t *testing.T) {
	data, err := CSVDetailedExporter{}.Format(smallComparison(t))
	require.NoError(t, err)
	newGolden(t).Assert(t, "detailed_csv", data)
}

func TestCSVSummarizer_Golden(t *testing.T) {
	data, err := CSVSummarizer{}.Format(smallComparison(t))
	require.NoError(t, err)
	newGolden(t).Assert(t, "summary_csv", data)
}

func TestCSVDetailedExporter_CalendarYears(t *testing.T) {
	data, err := CSVDetailedExporter{}.Format(referenceComparison(t))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "traditional,23,2025,accumulation,21000.00,0.00,0.00,true\n")
	assert.Contains(t, out, "roth,66,2068,distribution,")
	assert.Contains(t, out, "traditional,109,2111,distribution,")
}
