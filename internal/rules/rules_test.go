package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareValid(t *testing.T) {
	cases := []struct {
		sq   Square
		want bool
	}{
		{"a1", true},
		{"h8", true},
		{"e4", true},
		{"i1", false},
		{"a9", false},
		{"a0", false},
		{"", false},
		{"e44", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.sq.Valid(), "square %q", tc.sq)
	}
}

func TestSquareFromIndex(t *testing.T) {
	cases := []struct {
		row, col int
		want     Square
	}{
		{0, 0, "a8"},
		{7, 0, "a1"},
		{7, 7, "h1"},
		{6, 4, "e2"},
		{4, 4, "e4"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SquareFromIndex(tc.row, tc.col))
	}
}

func TestMoveUCI(t *testing.T) {
	cases := []struct {
		name string
		mv   Move
		want string
	}{
		{"plain", Move{From: "e2", To: "e4"}, "e2e4"},
		{"promotion", Move{From: "e7", To: "e8", Promotion: Queen}, "e7e8q"},
		{"underpromotion", Move{From: "a7", To: "a8", Promotion: Knight}, "a7a8n"},
		{"bad from", Move{From: "z9", To: "e4"}, ""},
		{"bad to", Move{From: "e2", To: "e9"}, ""},
		{"bad promotion", Move{From: "e7", To: "e8", Promotion: "k"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.mv.UCI())
		})
	}
}

func TestSideOpponent(t *testing.T) {
	assert.Equal(t, SideBlack, SideWhite.Opponent())
	assert.Equal(t, SideWhite, SideBlack.Opponent())
}
