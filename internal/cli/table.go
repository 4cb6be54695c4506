package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

type TableRowDataInsertor func(*Table) error

type NewTableOpts struct {
	Headers []string
	Rows    TableRowDataInsertor
}

func NewTable(opts NewTableOpts) *Table {
	table := &Table{
		Rows: opts.Rows,
	}
	return table.Init(opts.Headers)
}

type Table struct {
	data  bytes.Buffer
	table *tablewriter.Table

	Rows TableRowDataInsertor
}

func (t *Table) Init(headers []string) *Table {
	t.table = tablewriter.NewWriter(&t.data)
	t.table.Options(tablewriter.WithHeaderAlignment(tw.AlignLeft))
	t.table.Configure(func(cfg *tablewriter.Config) {
		width, _, _ := term.GetSize(int(os.Stdout.Fd()))
		cfg.MaxWidth = width
	})
	t.table.Header(headers)
	return t
}

func (t *Table) Append(row []string) error {
	return t.table.Append(row)
}

func (t *Table) Render() *Table {
	t.Rows(t)
	return t
}

func (t *Table) GetString() string {
	t.table.Render()
	return t.data.String()
}

func (t *Table) Print() {
	fmt.Println(t.GetString())
}
