package collbench

import (
	"github.com/goupdate/collbench/dataset"
	"github.com/goupdate/collbench/optional"
	"github.com/goupdate/collbench/person"
	"github.com/goupdate/collbench/stream"
)

const (
	missingAge  = -1
	missingName = "NOT FOUND"
)

// Summary is the result of the query stage.
type Summary struct {
	Sample      []string
	CityMatches int // records in SampleCity, before the limit
	ByCity      map[string][]person.Person
	AverageAge  float64
	CountByCity map[string]int

	ExistingAge int
	MissingName string
}

func personName(p person.Person) string { return p.Name }
func personCity(p person.Person) string { return p.City }
func personAge(p person.Person) int     { return p.Age }

// Summarize runs the filter, grouping and lookup queries over d.
func Summarize(d *dataset.Dataset, cfg Config) Summary {
	inCity := dataset.Match("", dataset.FindCondition{Field: "City", Value: cfg.SampleCity, Op: "eq"})

	return Summary{
		CityMatches: stream.Count(stream.Filter(d.Values(), inCity)),
		Sample:      stream.Collect(stream.Limit(stream.Map(stream.Filter(d.Values(), inCity), personName), cfg.SampleLimit)),
		ByCity:      stream.GroupBy(d.Values(), personCity),
		AverageAge:  stream.AverageBy(d.Values(), personAge),
		CountByCity: stream.CountBy(d.Values(), personCity),
		ExistingAge: optional.Map(d.Lookup(cfg.PresentID), personAge).OrElse(missingAge),
		MissingName: optional.Map(d.Lookup(cfg.MissingID), personName).OrElse(missingName),
	}
}
