package person

import (
	"strconv"
)

// Cities is the fixed set of city labels records are spread across.
var Cities = []string{"Kyiv", "Lviv", "Odesa", "Dnipro"}

const (
	minAge   = 18
	ageCycle = 50
)

// Person is an immutable synthetic record. All fields take part in equality,
// so two records are the same set member only if every field matches.
type Person struct {
	ID   int
	Name string
	City string
	Age  int
}

func (p Person) String() string {
	return strconv.Itoa(p.ID) + " " + p.Name + " " + p.City + " " + strconv.Itoa(p.Age)
}

// New derives the record for index i.
func New(i int) Person {
	return Person{
		ID:   i,
		Name: "Name" + strconv.Itoa(i),
		City: Cities[i%len(Cities)],
		Age:  minAge + i%ageCycle,
	}
}

// Generate returns n records with ids 0..n-1 in ascending order.
func Generate(n int) []Person {
	if n <= 0 {
		return []Person{}
	}
	ret := make([]Person, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, New(i))
	}
	return ret
}
