package list_schedules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFilter(t *testing.T) {
	filter, err := ToFilter("", "")
	require.NoError(t, err)
	assert.Nil(t, filter.StaffID)
	assert.Nil(t, filter.WeekNumber)

	filter, err = ToFilter("5", "2")
	require.NoError(t, err)
	assert.Equal(t, int64(5), *filter.StaffID)
	assert.Equal(t, 2, *filter.WeekNumber)

	_, err = ToFilter("-1", "")
	assert.Error(t, err)

	_, err = ToFilter("", "zero")
	assert.Error(t, err)
}
