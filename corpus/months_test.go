package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "FEVRIER", normalizeWord("février"))
	assert.Equal(t, "FEVRIER", normalizeWord("Fevrier."))
	assert.Equal(t, "AOUT", normalizeWord("août"))
	assert.Equal(t, "DECEMBRE", normalizeWord("décembre"))
	assert.Equal(t, "MAART", normalizeWord("maart"))
	assert.Equal(t, "", normalizeWord("1994"))
}

func TestMonthTables(t *testing.T) {
	assert.Len(t, months, len(frenchMonths)+len(dutchMonths))

	assert.Equal(t, "02", months["FEVRIER"])
	assert.Equal(t, "02", months["FEBRUARI"])
	assert.Equal(t, "08", months["AOUT"])
	assert.Equal(t, "08", months["AUGUSTUS"])
	assert.Equal(t, "10", months["OKTOBER"])
	assert.Equal(t, "12", months["DECEMBER"])

	_, ok := months["BRUMAIRE"]
	assert.False(t, ok)
}
