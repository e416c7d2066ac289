package models

import "time"

// SensorReading is one timestamped sample from a device. Every sensor
// field is optional: pointers keep an absent measurement as NULL instead
// of collapsing it to zero. Readings are append-only and never updated.
type SensorReading struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	IDAgrokit     string    `json:"id_agrokit" gorm:"column:id_agrokit;index"`
	HumedadTierra *float64  `json:"humedad_tierra" gorm:"column:humedad_tierra"`
	TempAire      *float64  `json:"temp_aire" gorm:"column:temp_aire"`
	HumedadAire   *float64  `json:"humedad_aire" gorm:"column:humedad_aire"`
	TempSuelo     *float64  `json:"temp_suelo" gorm:"column:temp_suelo"`
	Luz           *float64  `json:"luz"`
	Presion       *float64  `json:"presion"`
	Agua          *int      `json:"agua"`
	GPS           *string   `json:"gps" gorm:"column:gps"`
	Bateria       *float64  `json:"bateria"`
	Fecha         time.Time `json:"timestamp" gorm:"column:fecha;autoCreateTime"`
}

func (SensorReading) TableName() string { return "sensores" }

// ReadingSummary is the reduced public shape of a reading: the location
// payload and battery level are left out of listings on purpose.
type ReadingSummary struct {
	ID            uint      `json:"id"`
	IDAgrokit     string    `json:"id_agrokit" gorm:"column:id_agrokit"`
	HumedadTierra *float64  `json:"humedad_tierra" gorm:"column:humedad_tierra"`
	TempAire      *float64  `json:"temp_aire" gorm:"column:temp_aire"`
	HumedadAire   *float64  `json:"humedad_aire" gorm:"column:humedad_aire"`
	TempSuelo     *float64  `json:"temp_suelo" gorm:"column:temp_suelo"`
	Luz           *float64  `json:"luz"`
	Presion       *float64  `json:"presion"`
	Agua          *int      `json:"agua"`
	Fecha         time.Time `json:"timestamp" gorm:"column:fecha"`
}
