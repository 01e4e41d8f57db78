package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
	"github.com/joshuapare/heapkit/mem"
)

// TestRealloc_NullIsAlloc verifies Realloc(0, n) behaves exactly like
// Alloc(n).
func TestRealloc_NullIsAlloc(t *testing.T) {
	h := newTestHeap(t, 1, 64)

	p, payload, err := h.Realloc(0, 24)
	require.NoError(t, err)
	require.Len(t, payload, 24)
	assert.Equal(t, h.Start()+format.HeaderSize, p)
}

// TestRealloc_TailGrowsInPlace verifies the tail region grows without
// moving or copying: same address, prefix bytes intact.
func TestRealloc_TailGrowsInPlace(t *testing.T) {
	h := newTestHeap(t, 1, 64)

	p, payload, err := h.Alloc(16)
	require.NoError(t, err)
	copy(payload, "0123456789abcdef")

	p2, payload2, err := h.Realloc(p, 64)
	require.NoError(t, err)
	assert.Equal(t, p, p2, "tail realloc must stay in place")
	require.Len(t, payload2, 64)
	assert.Equal(t, []byte("0123456789abcdef"), payload2[:16], "prefix must be untouched")
	assert.Equal(t, uint32(64), h.SizeOf(p2))
}

// TestRealloc_TailShrinksInPlace verifies the tail region shrinks in place
// and gives the trimmed footprint back to the cursor.
func TestRealloc_TailShrinksInPlace(t *testing.T) {
	h := newTestHeap(t, 1, 64)

	p, _, err := h.Alloc(64)
	require.NoError(t, err)

	p2, _, err := h.Realloc(p, 16)
	require.NoError(t, err)
	assert.Equal(t, p, p2)
	assert.Equal(t, uint32(16), h.SizeOf(p2))

	next, _, err := h.Alloc(8)
	require.NoError(t, err)
	assert.Equal(t, regionEnd(uint64(p-format.HeaderSize), 16)+format.HeaderSize, uint64(next),
		"cursor should sit right after the shrunken region")
}

// TestRealloc_TailGrowthAcrossPages verifies in-place tail growth works when
// it forces linear memory growth.
func TestRealloc_TailGrowthAcrossPages(t *testing.T) {
	m, err := mem.NewSlice(1, 64)
	require.NoError(t, err)
	h := New(m, nil)

	p, payload, err := h.Alloc(32)
	require.NoError(t, err)
	copy(payload, "stable across growth")

	p2, payload2, err := h.Realloc(p, 2*format.PageSize)
	require.NoError(t, err)
	assert.Equal(t, p, p2)
	assert.Equal(t, []byte("stable across growth"), payload2[:20])
	assert.GreaterOrEqual(t, m.Pages(), uint32(3))
}

// TestRealloc_NonTailCopies verifies a retained (non-tail) region is copied
// to a fresh allocation at the cursor, old bytes left in place.
func TestRealloc_NonTailCopies(t *testing.T) {
	h := newTestHeap(t, 1, 64)

	a, abuf, err := h.Alloc(8)
	require.NoError(t, err)
	copy(abuf, "AAAAAAAA")

	b, _, err := h.Alloc(8)
	require.NoError(t, err)

	c, cbuf, err := h.Realloc(a, 32)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "non-tail realloc must move")
	assert.Greater(t, c, b, "new region lands at the cursor")
	assert.Equal(t, []byte("AAAAAAAA"), cbuf[:8], "old payload must be copied")

	for i := uint32(0); i < 8; i++ {
		assert.Equal(t, byte('A'), h.mem.Bytes()[a+i], "old region's bytes stay resident")
	}
}

// TestRealloc_NonTailShrinkCopiesPrefix verifies shrinking a non-tail region
// copies only what fits in the new payload.
func TestRealloc_NonTailShrinkCopiesPrefix(t *testing.T) {
	h := newTestHeap(t, 1, 64)

	a, abuf, err := h.Alloc(16)
	require.NoError(t, err)
	copy(abuf, "0123456789abcdef")

	_, _, err = h.Alloc(8) // pin A as non-tail
	require.NoError(t, err)

	_, cbuf, err := h.Realloc(a, 4)
	require.NoError(t, err)
	require.Len(t, cbuf, 4)
	assert.Equal(t, []byte("0123"), cbuf)
}

// TestRealloc_TailFailurePreservesRegion pins the hardened failure path: a
// refused growth during tail realloc leaves the original region live at its
// old size, cursor untouched.
func TestRealloc_TailFailurePreservesRegion(t *testing.T) {
	m, err := mem.NewSlice(1, 1) // host refuses all growth
	require.NoError(t, err)
	h := New(m, nil)

	p, payload, err := h.Alloc(16)
	require.NoError(t, err)
	copy(payload, "keep me")
	cursor := h.Cursor()

	_, _, err = h.Realloc(p, 2*format.PageSize)
	require.ErrorIs(t, err, ErrGrowRefused)

	assert.Equal(t, cursor, h.Cursor(), "failed tail realloc must not rewind the cursor")
	assert.Equal(t, uint32(16), h.SizeOf(p), "original region must stay intact")
	assert.Equal(t, []byte("keep me"), m.Bytes()[p:p+7])

	// The region is still the tail: freeing it reclaims its slot.
	h.Free(p)
	p2, _, err := h.Alloc(16)
	require.NoError(t, err)
	assert.Equal(t, p, p2)
}

// TestRealloc_NonTailFailureLeavesStateAlone verifies a failed non-tail
// realloc behaves like any failed Alloc.
func TestRealloc_NonTailFailureLeavesStateAlone(t *testing.T) {
	m, err := mem.NewSlice(1, 1)
	require.NoError(t, err)
	h := New(m, nil)

	a, _, err := h.Alloc(16)
	require.NoError(t, err)
	_, _, err = h.Alloc(8) // pin A as non-tail
	require.NoError(t, err)
	cursor := h.Cursor()

	_, _, err = h.Realloc(a, 2*format.PageSize)
	require.ErrorIs(t, err, ErrGrowRefused)
	assert.Equal(t, cursor, h.Cursor())
	assert.Equal(t, uint32(16), h.SizeOf(a))
}

// TestRealloc_CopySurvivesRelocation verifies the copy path reads the old
// payload through the refreshed backing store when the allocation growth
// relocates it (Slice memories relocate on append).
func TestRealloc_CopySurvivesRelocation(t *testing.T) {
	m, err := mem.NewSlice(1, 64)
	require.NoError(t, err)
	h := New(m, nil)

	a, abuf, err := h.Alloc(8)
	require.NoError(t, err)
	copy(abuf, "payloadA")

	_, _, err = h.Alloc(8) // pin A as non-tail
	require.NoError(t, err)

	// Big enough to force growth (and relocation) during the copy realloc.
	_, cbuf, err := h.Realloc(a, 3*format.PageSize)
	require.NoError(t, err)
	assert.Equal(t, []byte("payloadA"), cbuf[:8])
}
