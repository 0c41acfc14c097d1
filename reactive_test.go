package reactive

import (
	"maps"
	"slices"
)

// testHost records every SetData call and applies it without flushing.
type testHost struct {
	data    *Data
	patches []map[string]any
}

func newTestHost(initial map[string]any) *testHost {
	return &testHost{
		data: NewData(initial, WithRuntime(NewRuntime())),
	}
}

func (h *testHost) Data() *Data { return h.data }

func (h *testHost) SetData(patch map[string]any) {
	h.patches = append(h.patches, patch)

	for _, key := range slices.Sorted(maps.Keys(patch)) {
		h.data.Set(key, patch[key])
	}
}

func (h *testHost) flush() {
	h.data.Runtime().Flush()
}

func (h *testHost) pending() int {
	return h.data.Runtime().Pending()
}
