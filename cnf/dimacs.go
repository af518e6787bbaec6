package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ToDIMACS renders f as DIMACS CNF text: a "p cnf N M" header line
// followed by one line per clause, literals space-separated and
// terminated with " 0". There is no trailing newline after the last
// clause line.
func ToDIMACS[V comparable](f Formula[V]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d", f.NumVars(), f.NumClauses())
	for _, clause := range f.Clauses {
		b.WriteByte('\n')
		for _, lit := range clause {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteByte('0')
	}
	return b.String()
}

// ParseDIMACS reads a DIMACS CNF stream (header line "p cnf N M", then M
// clause lines each 0-terminated; "c ..." comment lines are skipped) and
// returns the raw clauses and variable count. It does not attempt to
// recover variable names: crux's own formulas carry their bindings
// separately, this is only for interchange with external DIMACS files fed
// to cmd/crux.
func ParseDIMACS(r io.Reader) (clauses [][]int, nbVars int, err error) {
	sc := bufio.NewScanner(r)
	headerSeen := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if !headerSeen {
			if len(fields) < 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, 0, errors.Errorf("dimacs: expected \"p cnf N M\" header, got %q", line)
			}
			nbVars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, 0, errors.Wrap(err, "dimacs: invalid variable count")
			}
			headerSeen = true
			continue
		}
		var clause []int
		for _, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "dimacs: invalid literal %q", tok)
			}
			if n == 0 {
				break
			}
			clause = append(clause, n)
		}
		if len(clause) > 0 {
			clauses = append(clauses, clause)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, errors.Wrap(err, "dimacs: read error")
	}
	if !headerSeen {
		return nil, 0, errors.New("dimacs: missing header")
	}
	return clauses, nbVars, nil
}
