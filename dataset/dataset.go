package dataset

import (
	"iter"
	"slices"

	"github.com/goupdate/collbench/compactmap"
	"github.com/goupdate/collbench/optional"
	"github.com/goupdate/collbench/person"
)

// Dataset holds the same records in three containers: an insertion-ordered
// sequence, a set keyed by the whole record and an index keyed by id.
type Dataset struct {
	list  []person.Person
	set   map[person.Person]struct{}
	index *compactmap.CompactMap[int, person.Person]
}

func New(capacity int) *Dataset {
	if capacity < 0 {
		capacity = 0
	}
	return &Dataset{
		list:  make([]person.Person, 0, capacity),
		set:   make(map[person.Person]struct{}, capacity),
		index: compactmap.NewCompactMap[int, person.Person](),
	}
}

// Load builds a dataset from people in order.
func Load(people []person.Person) *Dataset {
	d := New(len(people))
	for _, p := range people {
		d.Add(p)
	}
	return d
}

// Add appends p to the sequence and puts it into the set and the index.
// A later record with an already indexed id replaces the earlier one in the index.
func (d *Dataset) Add(p person.Person) {
	d.list = append(d.list, p)
	d.set[p] = struct{}{}
	d.index.AddOrSet(p.ID, p)
}

func (d *Dataset) Len() int {
	return len(d.list)
}

func (d *Dataset) UniqueLen() int {
	return len(d.set)
}

func (d *Dataset) IndexLen() int {
	return d.index.Count()
}

// All returns a copy of the sequence.
func (d *Dataset) All() []person.Person {
	return slices.Clone(d.list)
}

// Values iterates the sequence in insertion order.
func (d *Dataset) Values() iter.Seq[person.Person] {
	return slices.Values(d.list)
}

func (d *Dataset) Contains(p person.Person) bool {
	_, ok := d.set[p]
	return ok
}

func (d *Dataset) Get(id int) (person.Person, bool) {
	return d.index.Get(id)
}

// Lookup is Get wrapped for default substitution.
func (d *Dataset) Lookup(id int) optional.Optional[person.Person] {
	p, ok := d.index.Get(id)
	return optional.From(p, ok)
}

// IDBounds returns the smallest and largest indexed id; ok is false when empty.
func (d *Dataset) IDBounds() (lo, hi int, ok bool) {
	keys := d.index.Keys()
	if len(keys) == 0 {
		return 0, 0, false
	}
	return keys[0], keys[len(keys)-1], true
}

func (d *Dataset) Stats() string {
	return d.index.Stats()
}
