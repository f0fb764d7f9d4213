package document

import (
	"fmt"
	"strings"
)

// Compose builds the body paragraph of the memo. It is a pure
// function of the snapshot: identical input produces byte-identical
// output. Line breaks are logical; the renderer decides how they are
// displayed.
//
// The date clause branches on the range shape: a same-day activity is
// phrased "ในวันที่ ...", a multi-day one "ระหว่างวันที่ <start> - <end> ...".
// The multi-day month and year always come from the end date, matching
// the issued paper form. A date that does not parse degrades to an
// empty clause so a half-filled form still previews.
func Compose(d Document) string {
	var b strings.Builder

	b.WriteString("ด้วย")
	b.WriteString(d.Department)
	b.WriteString(" มีความประสงค์นำนักเรียนเข้าร่วมกิจกรรม")
	b.WriteString(d.Activity.Name)
	b.WriteString(" ณ ")
	b.WriteString(d.Activity.Location)
	b.WriteString(" ")
	b.WriteString(dateClause(d.Activity))

	if len(d.Students) > 0 || len(d.Teachers) > 0 {
		b.WriteString("\n\nในกิจกรรมนี้ ได้ส่งนักเรียนและผู้ควบคุม คือ")
		for i, s := range d.Students {
			fmt.Fprintf(&b, "\n%d. %s%s %s นักเรียนชั้นมัธยมศึกษาปีที่ %s/%s",
				i+1, s.Title, s.Firstname, s.Lastname, s.Grade, s.Room)
		}
		for i, t := range d.Teachers {
			fmt.Fprintf(&b, "\n%d. %s%s %s %s",
				len(d.Students)+i+1, t.Title, t.Firstname, t.Lastname, t.Department)
		}
	}

	return b.String()
}

func dateClause(a Activity) string {
	start, err := ParseDate(a.StartDate)
	if err != nil {
		return ""
	}
	end, err := ParseDate(a.EndDate)
	if err != nil {
		return ""
	}

	if start.Equal(end) {
		return "ในวันที่ " + FormatThaiDate(start)
	}
	return fmt.Sprintf("ระหว่างวันที่ %d - %d %s พ.ศ. %d",
		start.Day(), end.Day(), ThaiMonths[end.Month()-1], BuddhistYear(end.Year()))
}
