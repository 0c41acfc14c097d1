package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell(t *testing.T) {
	t.Run("read subscribes the active collector", func(t *testing.T) {
		r := NewRuntime()
		c := r.NewCell(1, nil)

		assert.Equal(t, 1, c.Read())
		assert.Equal(t, 0, c.Subscribers())

		r.Collect(func() {}, func() any { return c.Read() })
		assert.Equal(t, 1, c.Subscribers())
	})

	t.Run("repeated reads subscribe repeatedly", func(t *testing.T) {
		r := NewRuntime()
		c := r.NewCell(1, nil)

		r.Collect(func() {}, func() any { return c.Read().(int) + c.Read().(int) })
		assert.Equal(t, 2, c.Subscribers())
	})

	t.Run("write calls handler, schedules flush, then stores", func(t *testing.T) {
		log := []string{}

		r := NewRuntime()
		var c *Cell
		c = r.NewCell(1, func(v any) {
			log = append(log, fmt.Sprintf("handler %v, stored %v", v, c.Value()))
		})
		c.Subscribe(func() {
			log = append(log, fmt.Sprintf("flush %v", c.Value()))
		})

		c.Write(2)
		assert.Equal(t, 2, c.Value())
		assert.Equal(t, 1, r.Pending())

		r.Flush()
		assert.Equal(t, []string{
			"handler 2, stored 1",
			"flush 2",
		}, log)
	})

	t.Run("equal write is a no-op", func(t *testing.T) {
		calls := 0

		r := NewRuntime()
		c := r.NewCell(1, func(any) { calls++ })
		c.Subscribe(func() {})

		c.Write(1)
		assert.Equal(t, 0, calls)
		assert.Equal(t, 0, r.Pending())
	})

	t.Run("no subscribers schedules nothing", func(t *testing.T) {
		r := NewRuntime()
		c := r.NewCell(1, nil)

		c.Write(2)
		assert.Equal(t, 0, r.Pending())
	})

	t.Run("write of a struct holding a slice does not panic", func(t *testing.T) {
		type box struct{ V any }
		calls := 0

		r := NewRuntime()
		c := r.NewCell(box{[]int{1}}, func(any) { calls++ })

		assert.NotPanics(t, func() { c.Write(box{[]int{2}}) })
		assert.Equal(t, 1, calls)
		assert.Equal(t, box{[]int{2}}, c.Value())
	})

	t.Run("each write schedules its own flush", func(t *testing.T) {
		flushes := 0

		r := NewRuntime()
		c := r.NewCell(0, nil)
		c.Subscribe(func() { flushes++ })

		c.Write(1)
		c.Write(2)
		c.Write(3)
		assert.Equal(t, 3, r.Pending())

		r.Flush()
		assert.Equal(t, 3, flushes)
	})
}

func TestIsEqual(t *testing.T) {
	t.Run("comparable values", func(t *testing.T) {
		assert.True(t, isEqual(1, 1))
		assert.True(t, isEqual("a", "a"))
		assert.True(t, isEqual(nil, nil))
		assert.False(t, isEqual(1, 2))
		assert.False(t, isEqual(1, int64(1)))
		assert.False(t, isEqual(nil, 0))
	})

	t.Run("nan is never equal", func(t *testing.T) {
		assert.False(t, isEqual(math.NaN(), math.NaN()))
	})

	t.Run("slices compare by identity", func(t *testing.T) {
		s := []int{1, 2}
		assert.True(t, isEqual(s, s))
		assert.False(t, isEqual(s, []int{1, 2}))
		assert.False(t, isEqual(s, s[:1]))
	})

	t.Run("maps compare by identity", func(t *testing.T) {
		m := map[string]int{"a": 1}
		assert.True(t, isEqual(m, m))
		assert.False(t, isEqual(m, map[string]int{"a": 1}))
	})

	t.Run("structs holding uncomparable values are not equal", func(t *testing.T) {
		type box struct{ V any }
		assert.True(t, isEqual(box{1}, box{1}))
		assert.False(t, isEqual(box{[]int{1}}, box{[]int{1}}))
		assert.False(t, isEqual(box{[]int{1}}, box{1}))
		assert.False(t, isEqual([1]any{map[string]int{}}, [1]any{map[string]int{}}))
	})

	t.Run("pointers compare by identity", func(t *testing.T) {
		type point struct{ x int }
		p := &point{1}
		assert.True(t, isEqual(p, p))
		assert.False(t, isEqual(p, &point{1}))
	})
}
