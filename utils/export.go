package utils

import (
	"fmt"

	"github.com/elis333333/Agrokit-Inteligente/models"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Datos"

// The export keeps the fixed column set of the download contract: no gps,
// no bateria.
var exportColumns = []string{
	"id", "id_agrokit", "humedad_tierra", "temp_aire", "humedad_aire",
	"temp_suelo", "luz", "presion", "agua", "timestamp",
}

// BuildWorkbook renders readings into the export sheet. A device with no
// readings still yields a valid file holding just the header row. The
// caller owns the returned file and must Close it.
func BuildWorkbook(records []models.SensorReading) (*excelize.File, error) {
	book := excelize.NewFile()
	if err := book.SetSheetName("Sheet1", exportSheet); err != nil {
		book.Close()
		return nil, err
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := book.SetSheetRow(exportSheet, "A1", &header); err != nil {
		book.Close()
		return nil, err
	}

	for i, r := range records {
		row := []interface{}{
			r.ID,
			r.IDAgrokit,
			floatCell(r.HumedadTierra),
			floatCell(r.TempAire),
			floatCell(r.HumedadAire),
			floatCell(r.TempSuelo),
			floatCell(r.Luz),
			floatCell(r.Presion),
			intCell(r.Agua),
			r.Fecha.Format("2006-01-02 15:04:05"),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := book.SetSheetRow(exportSheet, cell, &row); err != nil {
			book.Close()
			return nil, err
		}
	}
	return book, nil
}

func floatCell(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func intCell(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
