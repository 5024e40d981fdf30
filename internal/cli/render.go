package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/me/manpower/internal/planner"
	"github.com/me/manpower/pkg/model"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func renderSchedule(w io.Writer, assignments []model.Assignment) {
	if len(assignments) == 0 {
		fmt.Fprintln(w, "No tasks to schedule.")
		return
	}
	rows := make([][]string, len(assignments))
	for i, a := range assignments {
		priority := ""
		if a.Task.IsPriority {
			priority = "yes"
		}
		skill := ""
		if a.Task.SkillRequired != nil {
			skill = a.Task.SkillRequired.Name
		}
		rows[i] = []string{
			strconv.Itoa(a.Day),
			strconv.Itoa(a.Task.ID),
			skill,
			fmt.Sprintf("%s (%d)", a.Person.Name, a.Person.ID),
			priority,
		}
	}
	fmt.Fprintln(w, renderTable([]string{"DAY", "TASK", "SKILL", "PERSON", "PRIORITY"}, rows))
}

func summaryLine(res *planner.Result) string {
	days := "days"
	if res.Summary.Days == 1 {
		days = "day"
	}
	return fmt.Sprintf("Scheduled %s tasks for %s people over %d %s.",
		humanize.Comma(int64(res.Summary.Tasks)), humanize.Comma(int64(len(res.Dataset.People))),
		res.Summary.Days, days)
}
