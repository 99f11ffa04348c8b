package report

import (
	"testing"

	"fjacquet/count-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	f := NewFilter([]string{" jan ", "", "xyz"}, []string{"Café", "  "})

	assert.Equal(t, []models.Month{models.Jan, "xyz"}, f.Months)
	assert.Equal(t, []string{"Café"}, f.Products)
	assert.False(t, f.IsZero())
	assert.True(t, NewFilter(nil, nil).IsZero())
}

func TestFilter_Apply(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "no selection", filter: Filter{}, want: 6},
		{name: "one month", filter: NewFilter([]string{"jan"}, nil), want: 3},
		{name: "one product", filter: NewFilter(nil, []string{"Café"}), want: 4},
		{name: "month and product", filter: NewFilter([]string{"fev"}, []string{"Café"}), want: 1},
		{name: "absent month", filter: NewFilter([]string{"dez"}, nil), want: 0},
		{name: "unknown product", filter: NewFilter(nil, []string{"Arroz"}), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(rows)
			assert.Len(t, got, tt.want)
			assert.NotNil(t, got)
		})
	}
}

func TestFilter_ApplyWithoutSelectionCopies(t *testing.T) {
	rows := sampleRows()

	got := Filter{}.Apply(rows)
	require.Equal(t, rows, got)

	got[0].Description = "changed"
	assert.NotEqual(t, "changed", rows[0].Description)
	assert.Empty(t, Filter{}.Apply(nil))
}
