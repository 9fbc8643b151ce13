package vmem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapZeroFilledAndWritable(t *testing.T) {
	data, err := Map(3 * PageSize())
	require.NoError(t, err)
	require.Len(t, data, 3*PageSize())

	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d = 0x%x, want 0", i, b)
		}
	}

	data[0] = 0xde
	data[len(data)-1] = 0xad
	require.Equal(t, byte(0xde), data[0])
	require.Equal(t, byte(0xad), data[len(data)-1])

	require.NoError(t, Unmap(data))
}

func TestMapOddSize(t *testing.T) {
	data, err := Map(13)
	require.NoError(t, err)
	require.Len(t, data, 13)
	require.NoError(t, Unmap(data))
}

func TestMapZeroLength(t *testing.T) {
	data, err := Map(0)
	require.NoError(t, err)
	require.NotNil(t, data)
	require.Empty(t, data)
	require.NoError(t, Unmap(data))
}

func TestMapNegative(t *testing.T) {
	_, err := Map(-1)
	require.Error(t, err)
}

func TestUnmapTolerant(t *testing.T) {
	require.NoError(t, Unmap(nil), "nil slice should be a no-op")

	data, err := Map(PageSize())
	require.NoError(t, err)
	require.NoError(t, Unmap(data))
	require.NoError(t, Unmap(data), "double unmap should be a no-op")
}

func TestPageSize(t *testing.T) {
	ps := PageSize()
	require.Positive(t, ps)
	require.Zero(t, ps&(ps-1), "page size %d should be a power of two", ps)
}
