package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAveragePriceOf(t *testing.T) {
	assert.Equal(t, 25.0, AveragePriceOf(100.0, 4.0))
	assert.True(t, math.IsInf(AveragePriceOf(10, 0), 1))
	assert.True(t, math.IsInf(AveragePriceOf(-10, 0), -1))
	assert.True(t, math.IsNaN(AveragePriceOf(0, 0)))
}

func TestCountRow_MarshalJSON(t *testing.T) {
	t.Run("finite price", func(t *testing.T) {
		row := CountRow{Code: "001", Description: "ARROZ", Difference: 4, DifferenceValue: 100, Month: Jan, AveragePrice: 25}
		data, err := json.Marshal(row)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "ARROZ", decoded["description"])
		assert.Equal(t, "jan", decoded["month"])
		assert.Equal(t, 25.0, decoded["average_price"])
	})

	t.Run("infinite price is null", func(t *testing.T) {
		row := CountRow{Description: "FEIJAO", DifferenceValue: 10, Month: Fev, AveragePrice: math.Inf(1)}
		data, err := json.Marshal(row)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"average_price":null`)
	})

	t.Run("blank quantities are null", func(t *testing.T) {
		row := CountRow{Description: "LEITE", Difference: math.NaN(), DifferenceValue: math.NaN(), Month: Mar, AveragePrice: math.NaN()}
		data, err := json.Marshal(row)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"difference":null`)
		assert.Contains(t, string(data), `"difference_value":null`)
		assert.Contains(t, string(data), `"average_price":null`)
	})
}

func TestDescriptionsAndPresentMonths(t *testing.T) {
	rows := []CountRow{
		{Description: "OLEO", Month: Mar},
		{Description: "ARROZ", Month: Jan},
		{Description: "OLEO", Month: Fev},
		{Description: "FEIJAO", Month: Jan},
	}

	assert.Equal(t, []string{"ARROZ", "FEIJAO", "OLEO"}, Descriptions(rows))
	assert.Equal(t, []Month{Jan, Fev, Mar}, PresentMonths(rows))
	assert.Empty(t, Descriptions(nil))
}

func TestProductTable_Records(t *testing.T) {
	table := &ProductTable{
		Columns: []string{"Código", "Nome"},
		Rows:    [][]string{{"1", "ARROZ"}, {"2"}},
	}

	recs := table.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "ARROZ", recs[0]["Nome"])
	assert.Equal(t, "", recs[1]["Nome"])
	assert.Equal(t, 2, table.Len())

	var empty *ProductTable
	assert.Equal(t, 0, empty.Len())
}
