// Package collbench loads synthetic person records into standard containers,
// runs filter/group/lookup queries over them and compares point-read latency
// of paired containers.
package collbench

import (
	"io"
	"sort"

	"github.com/MasterDimmy/zipologger"
	"github.com/cockroachdb/errors"

	"github.com/goupdate/collbench/bench"
	"github.com/goupdate/collbench/dataset"
	"github.com/goupdate/collbench/person"
)

// Run executes every stage in order and writes the report to w.
// Progress goes to log, never to w.
func Run(w io.Writer, log *zipologger.Logger, cfg Config) error {
	people := person.Generate(cfg.Records)
	d := dataset.Load(people)
	log.Printf("loaded %d records: list %d, set %d, index %d", len(people), d.Len(), d.UniqueLen(), d.IndexLen())
	log.Printf("record index: %s", d.Stats())
	if lo, hi, ok := d.IDBounds(); ok {
		log.Printf("indexed ids %d..%d", lo, hi)
	}
	printLoaded(w, d.Len())

	summary := Summarize(d, cfg)
	log.Printf("%s: %d matching records", cfg.SampleCity, summary.CityMatches)
	logGroups(log, summary)

	lists, err := bench.Lists(cfg.BenchSize)
	if err != nil {
		return errors.Wrap(err, "list benchmark")
	}
	logResults(log, lists)
	printBenchmark(w, "LIST BENCHMARK", lists)

	maps, err := bench.Maps(cfg.BenchSize)
	if err != nil {
		return errors.Wrap(err, "map benchmark")
	}
	logResults(log, maps)
	printBenchmark(w, "MAP BENCHMARK", maps)

	printSummary(w, cfg, summary)
	printConclusions(w)
	return nil
}

func logResults(log *zipologger.Logger, results []bench.Result) {
	for _, r := range results {
		log.Printf("%s: %d reads in %v", r.Name, r.Ops, r.Elapsed)
	}
}

func logGroups(log *zipologger.Logger, s Summary) {
	cities := make([]string, 0, len(s.ByCity))
	for c := range s.ByCity {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	for _, c := range cities {
		log.Printf("group %s: %d records", c, len(s.ByCity[c]))
	}
}
