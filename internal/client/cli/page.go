package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type pageState int

const (
	stateIdle pageState = iota
	stateLoading
	stateSuccess
	stateError
)

type direction int

const (
	ascending direction = iota
	descending
)

// column describes one rendered column of a list page. String is used for
// display and, when Search is set, for filtering. Numeric, when set, takes
// precedence for ordering.
type column[T any] struct {
	Name    string
	String  func(T) string
	Numeric func(T) float64
	Search  bool
}

// listPage holds the full unfiltered server result plus the view inputs
// (search term, sort key, sort direction). The rendered view is recomputed
// from those on every render and is never mutated in place.
type listPage[T any] struct {
	title   string
	columns []column[T]
	load    func(ctx context.Context) ([]T, error)

	state   pageState
	items   []T
	lastErr string

	search  string
	sortKey string
	dir     direction

	coll *collate.Collator
}

func newListPage[T any](title string, columns []column[T], load func(ctx context.Context) ([]T, error)) *listPage[T] {
	return &listPage[T]{
		title:   title,
		columns: columns,
		load:    load,
		coll:    collate.New(language.English, collate.IgnoreCase),
	}
}

// reload fetches the full list. A failure keeps the page usable: the error
// message is retained and retry simply reloads.
func (p *listPage[T]) reload(ctx context.Context) {
	p.state = stateLoading
	items, err := p.load(ctx)
	if err != nil {
		p.state = stateError
		p.lastErr = err.Error()
		return
	}
	p.state = stateSuccess
	p.items = items
	p.lastErr = ""
}

func (p *listPage[T]) setSearch(term string) {
	p.search = term
}

// sortBy toggles direction when the key is already active and resets to
// ascending when a new key is chosen.
func (p *listPage[T]) sortBy(name string) error {
	if p.columnByName(name) == nil {
		return fmt.Errorf("unknown column %q", name)
	}
	if strings.EqualFold(p.sortKey, name) {
		if p.dir == ascending {
			p.dir = descending
		} else {
			p.dir = ascending
		}
		return nil
	}
	p.sortKey = name
	p.dir = ascending
	return nil
}

func (p *listPage[T]) columnByName(name string) *column[T] {
	for i := range p.columns {
		if strings.EqualFold(p.columns[i].Name, name) {
			return &p.columns[i]
		}
	}
	return nil
}

func (p *listPage[T]) matches(item T) bool {
	if p.search == "" {
		return true
	}
	term := strings.ToLower(p.search)
	for _, c := range p.columns {
		if !c.Search {
			continue
		}
		if strings.Contains(strings.ToLower(c.String(item)), term) {
			return true
		}
	}
	return false
}

// view computes the filtered, sorted slice from the unfiltered items.
func (p *listPage[T]) view() []T {
	out := make([]T, 0, len(p.items))
	for _, item := range p.items {
		if p.matches(item) {
			out = append(out, item)
		}
	}
	if p.sortKey == "" {
		return out
	}
	c := p.columnByName(p.sortKey)
	if c == nil {
		return out
	}
	less := func(a, b T) bool {
		if c.Numeric != nil {
			return c.Numeric(a) < c.Numeric(b)
		}
		return p.coll.CompareString(c.String(a), c.String(b)) < 0
	}
	sort.SliceStable(out, func(i, j int) bool {
		if p.dir == descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func (p *listPage[T]) render(w io.Writer) {
	switch p.state {
	case stateLoading:
		fmt.Fprintln(w, "Loading...")
		return
	case stateError:
		fmt.Fprintf(w, "Error: %s (type 'retry' to try again)\n", p.lastErr)
		return
	case stateIdle:
		fmt.Fprintln(w, "Not loaded yet.")
		return
	}

	rows := p.view()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headers := make([]string, len(p.columns))
	for i, c := range p.columns {
		headers[i] = c.Name
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, item := range rows {
		cells := make([]string, len(p.columns))
		for i, c := range p.columns {
			cells[i] = c.String(item)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d of %d %s\n", len(rows), len(p.items), p.title)
}

// readCommand prints the screen prompt and reads one command line. The
// second return value carries any arguments; ok is false on EOF.
func (a *App) readCommand(screen string) (cmd string, args []string, ok bool) {
	fmt.Fprintf(a.out, "%s> ", screen)
	line, err := a.reader.ReadString('\n')
	parts := strings.Fields(line)
	if len(parts) == 0 {
		if err != nil {
			return "", nil, false
		}
		return "", nil, true
	}
	return parts[0], parts[1:], true
}
