package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/mentorly-admin/internal/client/models"
	"github.com/dustin/go-humanize"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func row(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func onOff(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}

func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}

func pageFooter(w io.Writer, p models.Pagination, shown int) {
	if p.TotalPages == 0 {
		fmt.Fprintf(w, "%d item(s)\n", shown)
		return
	}
	fmt.Fprintf(w, "page %d of %d, %s total\n", p.Page, p.TotalPages, humanize.Comma(int64(p.Total)))
}

// pageArgs parses "[page] [search words...]".
func pageArgs(args []string) (page int, search string) {
	page = 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			page = n
			args = args[1:]
		}
	}
	return page, strings.Join(args, " ")
}
