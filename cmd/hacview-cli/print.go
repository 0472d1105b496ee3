package main

import (
	"fmt"
	"os"

	"hacview-backend/services/studentdata"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	return t
}

func printData(data *studentdata.Data) {
	info := data.StudentInfo
	fmt.Printf(
		"%s (#%s), grade %s, %s\nborn %s, counselor %s, credits %s\n\n",
		info.Name, info.Id, info.Grade, info.Campus,
		info.Birthdate, info.Counselor, info.TotalCredits,
	)
	fmt.Printf("weighted GPA: %.4f / %.4f\n\n", data.Gpa.Weighted, data.Gpa.Max)

	classes := newTable("Classes")
	classes.AppendHeader(table.Row{"Class", "Grade", "Assignments"})
	for _, class := range data.Classes {
		grade := "none"
		if class.Grade != nil {
			grade = fmt.Sprintf("%.2f", *class.Grade)
		}
		classes.AppendRow(table.Row{class.Name, grade, len(class.Assignments)})
	}
	classes.Render()

	for _, class := range data.Classes {
		if len(class.Assignments) == 0 {
			continue
		}
		assignments := newTable(class.Name)
		assignments.AppendHeader(table.Row{"Assignment", "Category", "Assigned", "Due", "Score", "Total"})
		for _, a := range class.Assignments {
			assignments.AppendRow(table.Row{a.Name, a.Category, a.DateAssigned, a.DateDue, a.Score, a.TotalPoints})
		}
		assignments.Render()
	}

	schedule := newTable("Schedule")
	schedule.AppendHeader(table.Row{"Course", "Description", "Period", "Teacher", "Room", "Days", "Marking Periods", "Building", "Status"})
	for _, entry := range data.Schedule {
		schedule.AppendRow(table.Row{
			entry.CourseCode, entry.CourseName, entry.Periods,
			entry.Teacher, entry.Room, entry.Days,
			entry.MarkingPeriods, entry.Building, entry.Status,
		})
	}
	schedule.Render()
}
