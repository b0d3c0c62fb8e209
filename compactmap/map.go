package compactmap

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/exp/constraints"
)

// chunk is split in half once it grows past this size
const maxSliceSize = 1000

type Entry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// CompactMap keeps entries in sorted chunks. Chunks never overlap: every key
// in buffers[i] is less than every key in buffers[i+1].
type CompactMap[K constraints.Ordered, V any] struct {
	sync.RWMutex

	buffers []*[]Entry[K, V]
}

func NewCompactMap[K constraints.Ordered, V any]() *CompactMap[K, V] {
	return &CompactMap[K, V]{
		buffers: make([]*[]Entry[K, V], 0, 100),
	}
}

func (m *CompactMap[K, V]) Clear() {
	m.Lock()
	defer m.Unlock()

	m.buffers = m.buffers[0:0]
}

// sync.Map analog
func (m *CompactMap[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	m.Lock()
	defer m.Unlock()

	actual, loaded = m.get(key)
	if loaded {
		return actual, true
	}

	m.addOrSet(key, value)
	return value, false
}

func (m *CompactMap[K, V]) LoadAndDelete(key K) (old V, loaded bool) {
	m.Lock()
	defer m.Unlock()

	old, loaded = m.get(key)
	if loaded {
		m.delete(key)
		return old, true
	}

	var zero V
	return zero, false
}

// sync.map - compatible
func (m *CompactMap[K, V]) Store(key K, value V) {
	m.AddOrSet(key, value)
}

// Add or Set
func (m *CompactMap[K, V]) AddOrSet(key K, value V) (overwritten bool) {
	m.Lock()
	defer m.Unlock()

	return m.addOrSet(key, value)
}

// locate returns the index of the first chunk whose last key is >= key.
// len(m.buffers) means key is greater than everything stored.
func (m *CompactMap[K, V]) locate(key K) int {
	return sort.Search(len(m.buffers), func(i int) bool {
		buffer := *m.buffers[i]
		return buffer[len(buffer)-1].Key >= key
	})
}

func search[K constraints.Ordered, V any](buffer []Entry[K, V], key K) int {
	return sort.Search(len(buffer), func(i int) bool {
		return buffer[i].Key >= key
	})
}

func (m *CompactMap[K, V]) addOrSet(key K, value V) (overwritten bool) {
	if len(m.buffers) == 0 {
		newBuffer := &[]Entry[K, V]{{Key: key, Value: value}}
		m.buffers = append(m.buffers, newBuffer)
		return false
	}

	bufferIndex := m.locate(key)
	if bufferIndex == len(m.buffers) {
		// past the end: append to the last chunk
		bufferIndex--
	}

	buffer := m.buffers[bufferIndex]
	index := search(*buffer, key)
	if index < len(*buffer) && (*buffer)[index].Key == key {
		(*buffer)[index].Value = value
		return true
	}

	*buffer = append(*buffer, Entry[K, V]{})
	copy((*buffer)[index+1:], (*buffer)[index:])
	(*buffer)[index] = Entry[K, V]{Key: key, Value: value}

	if len(*buffer) > maxSliceSize {
		m.split(bufferIndex)
	}
	return false
}

func (m *CompactMap[K, V]) split(bufferIndex int) {
	buffer := *m.buffers[bufferIndex]
	half := len(buffer) / 2

	left := make([]Entry[K, V], half, maxSliceSize+1)
	copy(left, buffer[:half])
	right := make([]Entry[K, V], len(buffer)-half, maxSliceSize+1)
	copy(right, buffer[half:])

	m.buffers = append(m.buffers, nil)
	copy(m.buffers[bufferIndex+2:], m.buffers[bufferIndex+1:])
	m.buffers[bufferIndex] = &left
	m.buffers[bufferIndex+1] = &right
}

// alias map-compatible
func (m *CompactMap[K, V]) Load(key K) (V, bool) {
	return m.Get(key)
}

func (m *CompactMap[K, V]) Get(key K) (V, bool) {
	m.RLock()
	defer m.RUnlock()

	return m.get(key)
}

func (m *CompactMap[K, V]) get(key K) (V, bool) {
	bufferIndex := m.locate(key)
	if bufferIndex < len(m.buffers) {
		buffer := *m.buffers[bufferIndex]
		index := search(buffer, key)
		if index < len(buffer) && buffer[index].Key == key {
			return buffer[index].Value, true
		}
	}

	var zero V
	return zero, false
}

func (m *CompactMap[K, V]) Delete(key K) {
	m.Lock()
	defer m.Unlock()

	m.delete(key)
}

func (m *CompactMap[K, V]) delete(key K) {
	bufferIndex := m.locate(key)
	if bufferIndex == len(m.buffers) {
		return
	}

	buffer := m.buffers[bufferIndex]
	index := search(*buffer, key)
	if index >= len(*buffer) || (*buffer)[index].Key != key {
		return
	}

	if len(*buffer) > 1 {
		//remove element in inner buffer
		*buffer = append((*buffer)[:index], (*buffer)[index+1:]...)
	} else {
		//remove whole slice
		m.buffers = append(m.buffers[:bufferIndex], m.buffers[bufferIndex+1:]...)
	}
}

// sync.Map alias
func (m *CompactMap[K, V]) Range(fn func(key K, val V) bool) {
	m.Iterate(fn)
}

// Iterate visits entries in ascending key order.
// dont modify the map inside fn!
func (m *CompactMap[K, V]) Iterate(fn func(key K, val V) bool) {
	m.RLock()
	defer m.RUnlock()

	for _, buffer := range m.buffers {
		for _, e := range *buffer {
			if !fn(e.Key, e.Value) {
				return
			}
		}
	}
}

func (m *CompactMap[K, V]) Keys() []K {
	m.RLock()
	defer m.RUnlock()

	keys := make([]K, 0, m.count())
	for _, buffer := range m.buffers {
		for _, e := range *buffer {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

func (m *CompactMap[K, V]) Exist(key K) bool {
	m.RLock()
	defer m.RUnlock()

	_, ok := m.get(key)
	return ok
}

func (m *CompactMap[K, V]) Count() int {
	m.RLock()
	defer m.RUnlock()

	return m.count()
}

func (m *CompactMap[K, V]) count() int {
	count := 0
	for _, buffer := range m.buffers {
		count += len(*buffer)
	}
	return count
}

func (m *CompactMap[K, V]) Stats() string {
	m.RLock()
	defer m.RUnlock()

	return fmt.Sprintf("%d buffers, total len: %d", len(m.buffers), m.count())
}
