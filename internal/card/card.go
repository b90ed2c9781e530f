// Package card turns an employee record into the data a directory card shows.
package card

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/UnknownOlympus/athena/internal/models"
)

const maxInitials = 2

// Colors is the department tag palette.
type Colors struct {
	Background string
	Text       string
}

// DefaultColors is used for departments missing from the palette.
var DefaultColors = Colors{Background: "#f1f5f9", Text: "#475569"}

var departmentColors = map[string]Colors{
	"Engineering":      {Background: "#e0f2fe", Text: "#0369a1"},
	"Marketing":        {Background: "#f3e8ff", Text: "#7e22ce"},
	"Sales":            {Background: "#dcfce7", Text: "#15803d"},
	"HR":               {Background: "#fee2e2", Text: "#b91c1c"},
	"Finance":          {Background: "#fef3c7", Text: "#92400e"},
	"Operations":       {Background: "#e0e7ff", Text: "#4338ca"},
	"Customer Support": {Background: "#ffedd5", Text: "#c2410c"},
}

// DepartmentColors returns the tag colours of a department.
func DepartmentColors(department string) Colors {
	if colors, ok := departmentColors[department]; ok {
		return colors
	}
	return DefaultColors
}

// Initials takes the first letter of the first two words of name, uppercased.
func Initials(name string) string {
	var builder strings.Builder

	for _, part := range strings.Fields(name) {
		if utf8.RuneCountInString(builder.String()) == maxInitials {
			break
		}
		first, _ := utf8.DecodeRuneInString(part)
		builder.WriteRune(unicode.ToUpper(first))
	}

	return builder.String()
}

// Detail is one optional line of the expanded card.
type Detail struct {
	Kind string
	Text string
}

// Card is the presentation of one employee.
type Card struct {
	Employee models.Employee
	Expanded bool
}

func New(employee models.Employee, expanded bool) Card {
	return Card{Employee: employee, Expanded: expanded}
}

// Toggle flips between the collapsed and the expanded state.
func (c Card) Toggle() Card {
	c.Expanded = !c.Expanded
	return c
}

func (c Card) Initials() string {
	return Initials(c.Employee.EmployeeName)
}

func (c Card) Colors() Colors {
	return DepartmentColors(c.Employee.Department)
}

// Details lists the optional fields present on the record, in display order.
// Collapsed cards have none.
func (c Card) Details() []Detail {
	if !c.Expanded {
		return nil
	}

	var details []Detail
	if c.Employee.Email != "" {
		details = append(details, Detail{Kind: "email", Text: c.Employee.Email})
	}
	if c.Employee.Location != "" {
		details = append(details, Detail{Kind: "location", Text: c.Employee.Location})
	}
	if c.Employee.Manager != "" {
		details = append(details, Detail{Kind: "manager", Text: "Reports to: " + c.Employee.Manager})
	}

	return details
}

// Bio is shown below the details of an expanded card.
func (c Card) Bio() string {
	if !c.Expanded {
		return ""
	}
	return c.Employee.Bio
}
