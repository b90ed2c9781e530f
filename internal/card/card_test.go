package card_test

import (
	"testing"

	"github.com/UnknownOlympus/athena/internal/card"
	"github.com/UnknownOlympus/athena/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"three words", "alice mary smith", "AM"},
		{"two words", "Bob Lee", "BL"},
		{"single word", "cher", "C"},
		{"extra whitespace", "  dana \t  scully ", "DS"},
		{"empty", "", ""},
		{"multibyte", "ágnes ödön", "ÁÖ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, card.Initials(tt.in))
		})
	}
}

func TestDepartmentColors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, card.Colors{Background: "#dcfce7", Text: "#15803d"}, card.DepartmentColors("Sales"))
	assert.Equal(t, card.Colors{Background: "#ffedd5", Text: "#c2410c"}, card.DepartmentColors("Customer Support"))
	assert.Equal(t, card.DefaultColors, card.DepartmentColors("Legal"))
	assert.Equal(t, card.DefaultColors, card.DepartmentColors("sales"))
}

func TestCard_Details(t *testing.T) {
	t.Parallel()

	employee := models.Employee{
		EmployeeName: "Alice Smith",
		Department:   "Engineering",
		Email:        "alice@example.com",
		Manager:      "Carol King",
		Bio:          "Builds things.",
	}

	collapsed := card.New(employee, false)
	assert.Empty(t, collapsed.Details())
	assert.Empty(t, collapsed.Bio())
	assert.Equal(t, "AS", collapsed.Initials())

	expanded := collapsed.Toggle()
	assert.True(t, expanded.Expanded)
	assert.False(t, collapsed.Expanded)
	assert.Equal(t, []card.Detail{
		{Kind: "email", Text: "alice@example.com"},
		{Kind: "manager", Text: "Reports to: Carol King"},
	}, expanded.Details())
	assert.Equal(t, "Builds things.", expanded.Bio())

	assert.False(t, expanded.Toggle().Expanded)
}
