//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleSelectionByArrowAndEnter(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Pick a fruit"))

	// Opening with the down arrow highlights the first candidate
	require.NoError(t, tf.Open())
	require.True(t, tf.SeePlain("▸ Apple"), "first candidate should be highlighted")

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("▸ Banana"))

	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Banana has been selected."), "selection should be announced")
}

func TestMultiSelectionKeepsPanelOpen(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteConfig("multiple = true\nsearch = true\n"))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Pick a fruit"))

	require.NoError(t, tf.Open())
	require.True(t, tf.SeePlain("▸ Apple"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Apple has been selected."))

	// Panel stayed open with Apple excluded; the highlight now sits on
	// the next remaining candidate.
	require.True(t, tf.SeePlain("▸ Banana"))
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Banana has been selected."))
}

func TestBackspaceRemovesLastChip(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteConfig("multiple = true\nsearch = true\n"))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Pick a fruit"))

	require.NoError(t, tf.Open())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Apple has been selected."))

	// Backspace in the empty search field removes the newest chip
	require.NoError(t, tf.Backspace())
	require.True(t, tf.SeePlain("Apple has been removed."))
}
