package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/talentsift/screener/core"
)

// WriteTable renders the full ranked result set as an aligned text table,
// followed by the shortlist summary and the best candidate (or an explicit
// absence line). Purely a projection; nothing here feeds back into scoring.
func WriteTable(w io.Writer, set *core.ResultSet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSCORE\tSTATE\tSHORTLISTED\tMATCHED KEYWORDS")
	for _, r := range set.Records {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%t\t%s\n",
			r.Document.Name, r.Score, r.State, r.Shortlisted,
			strings.Join(r.KeywordOverlap, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	shortlisted := set.Shortlisted()
	fmt.Fprintf(w, "\nShortlisted %d of %d candidate(s)\n", len(shortlisted), len(set.Records))
	if best, ok := set.Best(); ok {
		fmt.Fprintf(w, "Top candidate: %s (%.2f%%)\n", best.Document.Name, best.Score)
	} else {
		fmt.Fprintln(w, "No candidates met the threshold.")
	}

	for _, failure := range set.Failures {
		fmt.Fprintf(w, "failed: %s: %v\n", failure.Name, failure.Err)
	}
	return nil
}
