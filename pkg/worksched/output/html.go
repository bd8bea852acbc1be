package output

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/ukaji3/worksched-go/pkg/worksched/models"
	"github.com/ukaji3/worksched-go/pkg/worksched/view"
)

const gridCSS = `
body { font-family: system-ui, sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: .5rem; vertical-align: top; }
th.today { background: #fff4cc; }
.initials { display: inline-block; width: 2rem; text-align: center; border-radius: 50%; color: #fff; margin-right: .5rem; }
.work-block { display: block; padding: .2rem .4rem; margin: .1rem 0; border-radius: 4px; }
.work-block.office { background: #dbeafe; }
.work-block.remote { background: #dcfce7; }
.no-work { color: #888; font-style: italic; }
.color-0 { background: #ef4444; } .color-1 { background: #f97316; } .color-2 { background: #eab308; }
.color-3 { background: #22c55e; } .color-4 { background: #14b8a6; } .color-5 { background: #0ea5e9; }
.color-6 { background: #3b82f6; } .color-7 { background: #6366f1; } .color-8 { background: #a855f7; }
.color-9 { background: #ec4899; } .color-10 { background: #78716c; } .color-11 { background: #64748b; }
`

func blockNode(b models.WorkBlock) g.Node {
	return Span(Class("work-block "+string(b.Kind())),
		g.Textf("%s - %s", b.StartTime, b.EndTime),
	)
}

func dayNodes(blocks []models.WorkBlock, empty string) []g.Node {
	if len(blocks) == 0 {
		if empty == "" {
			return nil
		}
		return []g.Node{Span(Class("no-work"), g.Text(empty))}
	}
	nodes := make([]g.Node, 0, len(blocks))
	for _, b := range blocks {
		nodes = append(nodes, blockNode(b))
	}
	return nodes
}

func page(title string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head:     []g.Node{g.Raw("<style>" + gridCSS + "</style>")},
		Body:     body,
	})
}

// GridPage builds a standalone HTML page for the grid.
func GridPage(grid view.Grid) g.Node {
	header := []g.Node{Th(g.Text("Employee"))}
	for _, d := range models.Weekdays() {
		if int(d) == grid.Highlight {
			header = append(header, Th(Class("today"), g.Text(d.String())))
			continue
		}
		header = append(header, Th(g.Text(d.String())))
	}

	rows := make([]g.Node, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		cells := []g.Node{Td(
			Span(Class(fmt.Sprintf("initials color-%d", row.Color)), g.Text(row.Initials)),
			g.Text(row.Name),
		)}
		for _, d := range models.Weekdays() {
			cells = append(cells, Td(g.Group(dayNodes(row.Week.Day(d), ""))))
		}
		rows = append(rows, Tr(cells...))
	}

	return page("Work Schedule",
		H1(g.Textf("Week %d", grid.WeekType)),
		P(g.Text(grid.DateRange)),
		Table(
			THead(Tr(header...)),
			TBody(rows...),
		),
		P(g.Text(StatusText(grid.Counts))),
	)
}

// DetailPage builds a standalone HTML page for one employee.
func DetailPage(d view.Detail) g.Node {
	sections := make([]g.Node, 0, len(d.Weeks))
	for _, wk := range d.Weeks {
		title := fmt.Sprintf("Week %d", wk.WeekType)
		if wk.Current {
			title += " (Current)"
		}
		days := make([]g.Node, 0, len(wk.Days))
		for _, day := range wk.Days {
			days = append(days, Tr(Th(g.Text(day.Day)), Td(g.Group(dayNodes(day.Blocks, view.NoWorkText)))))
		}
		sections = append(sections, H2(g.Text(title)), Table(TBody(days...)))
	}
	return page(d.Name+" - Schedule", H1(g.Text(d.Name+" - Schedule")), g.Group(sections))
}

// WriteGridHTML renders the grid page to w.
func WriteGridHTML(w io.Writer, grid view.Grid) error {
	return GridPage(grid).Render(w)
}

// WriteDetailHTML renders the detail page to w.
func WriteDetailHTML(w io.Writer, d view.Detail) error {
	return DetailPage(d).Render(w)
}
