package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemStringByKind(t *testing.T) {
	assert.Equal(t, "plain", NewPrimitive("plain").String())

	rec := NewRecord("Display Name", map[string]string{"code": "dn"})
	assert.Equal(t, "Display Name", rec.String())
}

func TestItemIdentityPrefersKey(t *testing.T) {
	a := NewRecord("Same Label", nil)
	a.Key = "a"
	b := NewRecord("Same Label", nil)
	b.Key = "b"

	assert.NotEqual(t, a.Identity(), b.Identity())
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}

func TestItemEqualAcrossKinds(t *testing.T) {
	prim := NewPrimitive("apple")
	rec := NewRecord("apple", nil)

	assert.False(t, prim.Equal(rec))
}

func TestIndexOf(t *testing.T) {
	items := []Item{NewPrimitive("a"), NewPrimitive("b")}

	assert.Equal(t, 1, IndexOf(items, NewPrimitive("b")))
	assert.Equal(t, NoIndex, IndexOf(items, NewPrimitive("zzz")))
}
