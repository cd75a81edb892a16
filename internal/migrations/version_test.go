package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointedtime/pressroom/config"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"2.1", 2, false},
		{"v2.1", 2, false},
		{"10", 10, false},
		{"v3", 3, false},
		{"", 0, true},
		{"vx.1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetCurrentCodeVersion(t *testing.T) {
	version, err := GetCurrentCodeVersion()
	require.NoError(t, err)

	expected, err := ParseVersion(config.VERSION)
	require.NoError(t, err)
	assert.Equal(t, expected, version)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		v1, v2 string
		want   int
	}{
		{"1.0", "2.0", -1},
		{"2.0", "1.9", 1},
		{"2.0", "2.5", 0}, // only major versions are compared
	}

	for _, tt := range tests {
		got, err := CompareVersions(tt.v1, tt.v2)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := CompareVersions("bad", "2.0")
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	migrations := GetRegisteredMigrations()
	require.Len(t, migrations, 2)

	// Sorted ascending by version
	assert.Equal(t, 1.0, migrations[0].GetMajorVersion())
	assert.Equal(t, 2.0, migrations[1].GetMajorVersion())

	m, ok := GetRegisteredMigration(2.0)
	require.True(t, ok)
	assert.Equal(t, 2.0, m.GetMajorVersion())

	_, ok = GetRegisteredMigration(99.0)
	assert.False(t, ok)
}
