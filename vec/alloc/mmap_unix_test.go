//go:build unix

package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Mmap_AllocFreeRoundTrip(t *testing.T) {
	m := NewMmap()
	buf, err := m.Alloc(1 << 16)
	require.NoError(t, err)
	require.Len(t, buf, 1<<16)
	require.Equal(t, 1, m.Live())

	// Mapped memory is writable and kernel-zeroed.
	for _, b := range buf[:4096] {
		require.Zero(t, b)
	}
	buf[0] = 0xAB
	buf[len(buf)-1] = 0xCD

	require.NoError(t, m.Free(buf))
	require.Equal(t, 0, m.Live())
}

func Test_Mmap_ForeignAndDoubleFree(t *testing.T) {
	m := NewMmap()
	buf, err := m.Alloc(4096)
	require.NoError(t, err)
	require.NoError(t, m.Free(buf))

	require.ErrorIs(t, m.Free(buf), ErrForeignBuffer)
	require.ErrorIs(t, m.Free(make([]byte, 4096)), ErrForeignBuffer)
	require.ErrorIs(t, m.Free(nil), ErrForeignBuffer)
}

func Test_Mmap_BadSize(t *testing.T) {
	m := NewMmap()
	_, err := m.Alloc(0)
	require.ErrorIs(t, err, ErrBadSize)
	_, err = m.Alloc(-4096)
	require.ErrorIs(t, err, ErrBadSize)
}

func Test_Mmap_CloseUnmapsOutstanding(t *testing.T) {
	m := NewMmap()
	for i := 0; i < 4; i++ {
		_, err := m.Alloc(4096)
		require.NoError(t, err)
	}
	require.Equal(t, 4, m.Live())

	require.NoError(t, m.Close())
	require.Equal(t, 0, m.Live())

	_, err := m.Alloc(4096)
	require.ErrorIs(t, err, ErrClosed)
}
