package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrigger_Aliases(t *testing.T) {
	tests := []struct {
		in       string
		expected Trigger
	}{
		{"toggle", TriggerToggle},
		{"notifya", TriggerNotifyA},
		{"a", TriggerNotifyA},
		{"notify-a", TriggerNotifyA},
		{"notifyb", TriggerNotifyB},
		{"b", TriggerNotifyB},
		{"notify-b", TriggerNotifyB},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			tr, err := ParseTrigger(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tr)
		})
	}

	_, err := ParseTrigger("c")
	assert.Error(t, err)
}

func TestParseColor_Aliases(t *testing.T) {
	assert.Equal(t, ColorGray, MustColor("grey"))
	assert.Equal(t, ColorLightGreen, MustColor("light-green"))
	assert.Equal(t, ColorDarkPurple, MustColor("dark-purple"))
	assert.Len(t, ColorValues, len(ColorNames))
	assert.Panics(t, func() { MustColor("pink") })
}

func TestParseStorage(t *testing.T) {
	assert.Equal(t, StorageMemory, MustStorage(""))
	assert.Equal(t, StoragePostgres, MustStorage("postgresql"))
	assert.Equal(t, StorageSQLite, MustStorage("sqlite"))
}
