package benchtable

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/evaltools/internal/monitoring"
	"golang.org/x/perf/benchfmt"
)

// ReadGoBench turns raw `go test -bench` output into a Table. The columns are
// "name", one column per key=value sub-benchmark component (other components
// become sub1, sub2, ...), "procs", "iterations" and one column per unit.
func ReadGoBench(r io.Reader, fileName string) (*Table, error) {
	reader := benchfmt.NewReader(r, fileName)

	var (
		keys    []string
		units   []string
		records []map[string]string
	)
	seen := map[string]bool{"name": true, "procs": true, "iterations": true}
	addKey := func(k string, into *[]string) {
		if !seen[k] {
			seen[k] = true
			*into = append(*into, k)
		}
	}

	for reader.Scan() {
		switch rec := reader.Result().(type) {
		case *benchfmt.SyntaxError:
			monitoring.Logf("skipping malformed benchmark line: %v", rec)
		case *benchfmt.Result:
			row := map[string]string{
				"iterations": strconv.Itoa(rec.Iters),
			}
			base, parts := rec.Name.Parts()
			row["name"] = string(base)

			positional := 0
			for _, part := range parts {
				p := string(part)
				switch {
				case strings.HasPrefix(p, "-"):
					row["procs"] = p[1:]
				case strings.Contains(p, "="):
					kv := strings.SplitN(strings.TrimPrefix(p, "/"), "=", 2)
					addKey(kv[0], &keys)
					row[kv[0]] = kv[1]
				default:
					positional++
					k := fmt.Sprintf("sub%d", positional)
					addKey(k, &keys)
					row[k] = strings.TrimPrefix(p, "/")
				}
			}
			for _, v := range rec.Values {
				addKey(v.Unit, &units)
				row[v.Unit] = strconv.FormatFloat(v.Value, 'g', -1, 64)
			}
			records = append(records, row)
		}
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("read benchmark output: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	columns := append([]string{"name"}, keys...)
	columns = append(columns, "procs", "iterations")
	columns = append(columns, units...)

	t := &Table{Columns: columns, Rows: make([][]string, len(records))}
	for i, rec := range records {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = rec[c]
		}
		t.Rows[i] = row
	}
	return t, nil
}
