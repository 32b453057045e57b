package devices

import (
	"sort"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = map[string]Device{}
)

func Register(d Device) {
	mu.Lock()
	defer mu.Unlock()
	registry[d.Name()] = d
}

func Get(name string) (Device, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := registry[name]
	return d, ok
}

// Names returns registered device names in stable order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
