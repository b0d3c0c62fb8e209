package collbench

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/goupdate/collbench/bench"
)

const conclusions = `
=== ВИСНОВКИ ===
• Зріз (slice) значно швидший за container/list при доступі за індексом.
• Зв'язний список доцільний лише для частих вставок/видалень у середині списку.
• Вбудований map забезпечує O(1) доступ і є оптимальним для ключових операцій.
• B-дерево повільніше, але зберігає впорядкованість ключів.
• Ітератори (iter.Seq) дозволяють компактно описувати фільтрацію, агрегацію та групування.
• Optional із значенням за замовчуванням прибирає перевірки на відсутність і покращує читабельність коду.
• Для більшості бізнес-сценаріїв оптимальна комбінація: slice + map.
`

func printLoaded(w io.Writer, n int) {
	fmt.Fprintf(w, "Loaded records: %d\n", n)
}

func printBenchmark(w io.Writer, title string, results []bench.Result) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
	for _, r := range results {
		fmt.Fprintf(w, "%-24s %d ns\n", r.Name+" get():", r.Nanos())
	}
}

// formatCounts renders counts as {a=1, b=2} with keys sorted.
func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Itoa(counts[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func printSummary(w io.Writer, cfg Config, s Summary) {
	fmt.Fprintf(w, "\n=== STREAM RESULTS ===\n")
	fmt.Fprintf(w, "Names from %s (sample): [%s]\n", cfg.SampleCity, strings.Join(s.Sample, ", "))
	fmt.Fprintf(w, "Average age: %s\n", strconv.FormatFloat(s.AverageAge, 'f', -1, 64))
	fmt.Fprintf(w, "Count by city: %s\n", formatCounts(s.CountByCity))

	fmt.Fprintf(w, "\n=== OPTIONAL RESULTS ===\n")
	fmt.Fprintf(w, "Existing person age: %d\n", s.ExistingAge)
	fmt.Fprintf(w, "Missing person result: %s\n", s.MissingName)
}

func printConclusions(w io.Writer) {
	fmt.Fprint(w, conclusions)
}
