package utils

import (
	"testing"
	"time"

	"github.com/elis333333/Agrokit-Inteligente/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkbookEmpty(t *testing.T) {
	book, err := BuildWorkbook(nil)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Datos")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "timestamp", rows[0][9])
}

func TestBuildWorkbookNullCells(t *testing.T) {
	agua := 1
	book, err := BuildWorkbook([]models.SensorReading{{
		ID:        7,
		IDAgrokit: "KIT1",
		Agua:      &agua,
		Fecha:     time.Date(2025, 8, 18, 0, 12, 34, 0, time.UTC),
	}})
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Datos")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	data := rows[1]
	assert.Equal(t, "7", data[0])
	assert.Equal(t, "KIT1", data[1])
	// absent measurements render as empty cells, never as zero
	assert.Empty(t, data[2])
	assert.Equal(t, "1", data[8])
	assert.Equal(t, "2025-08-18 00:12:34", data[9])
}
