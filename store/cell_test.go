package store

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"
)

func TestCellLoadsStoredValue(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)
	s.Write("goals", []record{{Id: "g1", Amount: 1000}})

	c := NewCell(s, "goals", []record{})
	got := c.Get()
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "g1", got[0].Id)
}

func TestCellCorruptSlotFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "goals.json"), []byte(`"scalar"`), 0o644)
	assert.Equal(t, nil, err)

	c := NewCell(Open(dir), "goals", []record{{Id: "fallback"}})
	got := c.Get()
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "fallback", got[0].Id)
}

func TestCellSetPersists(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	c := NewCell(s, "reminders", []record{})
	c.Set([]record{{Id: "r1"}})

	// a fresh cell over the same slot sees the write
	again := NewCell(s, "reminders", []record{})
	got := again.Get()
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "r1", got[0].Id)
}

func TestCellUpdateComposes(t *testing.T) {
	c := NewCell(Open(t.TempDir()), "expenses", []record{})

	c.Update(func(prev []record) []record { return append(prev, record{Id: "a", Amount: 1}) })
	c.Update(func(prev []record) []record { return append(prev, record{Id: "b", Amount: 2}) })

	got := c.Get()
	assert.Equal(t, 2, len(got))
	assert.Equal(t, "a", got[0].Id)
	assert.Equal(t, "b", got[1].Id)
}

func TestCellSubscribe(t *testing.T) {
	c := NewCell(Open(t.TempDir()), "expenses", []record{})

	var seen [][]record
	unsubscribe := c.Subscribe(func(v []record) {
		seen = append(seen, v)
	})

	c.Set([]record{{Id: "a"}})
	assert.Equal(t, 1, len(seen))
	assert.Equal(t, "a", seen[0][0].Id)

	unsubscribe()
	c.Set([]record{{Id: "b"}})
	assert.Equal(t, 1, len(seen))
}

func TestCellReset(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	c := NewCell(s, "expenses", []record{})
	c.Set([]record{{Id: "a"}})
	c.Reset([]record{})

	assert.Equal(t, 0, len(c.Get()))

	// the persisted slot is gone too
	var out []record
	assert.Equal(t, false, s.Read("expenses", &out))
}
