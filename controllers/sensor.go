package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/elis333333/Agrokit-Inteligente/models"
	"github.com/elis333333/Agrokit-Inteligente/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recentLimit caps the public history listing.
const recentLimit = 100

// broadcastEvent is the single named event carrying every new reading.
const broadcastEvent = "nuevo_registro"

// SensorController handles device ingest, history queries and exports.
type SensorController struct {
	DB  *gorm.DB
	Hub *Hub
}

func NewSensorController(db *gorm.DB, hub *Hub) *SensorController {
	return &SensorController{DB: db, Hub: hub}
}

type ingestRequest struct {
	IDAgrokit     string          `json:"id_agrokit"`
	HumedadTierra *float64        `json:"humedad_tierra"`
	TempAire      *float64        `json:"temp_aire"`
	HumedadAire   *float64        `json:"humedad_aire"`
	TempSuelo     *float64        `json:"temp_suelo"`
	Luz           *float64        `json:"luz"`
	Presion       *float64        `json:"presion"`
	Agua          *int            `json:"agua"`
	GPS           json.RawMessage `json:"gps"`
	Bateria       *float64        `json:"bateria"`
	FechaHora     string          `json:"fechaHora"`
}

// ReceiveData stores one reading from a device, registers the device on
// first contact and pushes the stored row to connected viewers. This is
// the device-facing ingress and takes no authentication.
func (s *SensorController) ReceiveData(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if req.IDAgrokit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id_agrokit"})
		return
	}

	reading := models.SensorReading{
		IDAgrokit:     req.IDAgrokit,
		HumedadTierra: req.HumedadTierra,
		TempAire:      req.TempAire,
		HumedadAire:   req.HumedadAire,
		TempSuelo:     req.TempSuelo,
		Luz:           req.Luz,
		Presion:       req.Presion,
		Agua:          req.Agua,
		Bateria:       req.Bateria,
	}

	// a structured gps payload is stored as its JSON text
	if len(req.GPS) > 0 && string(req.GPS) != "null" {
		gps := string(req.GPS)
		reading.GPS = &gps
	}

	if req.FechaHora != "" {
		fecha, err := parseFecha(req.FechaHora)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fechaHora"})
			return
		}
		reading.Fecha = fecha
	}

	if err := s.DB.Create(&reading).Error; err != nil {
		log.Println("Insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error inserting reading"})
		return
	}

	// register the agrokit if it has never been seen; an existing entry's
	// name is never overwritten by later readings
	kit := models.Agrokit{IDAgrokit: req.IDAgrokit, Name: req.IDAgrokit}
	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&kit).Error; err != nil {
		log.Println("Agrokit upsert error:", err)
	}

	var stored models.SensorReading
	if err := s.DB.First(&stored, reading.ID).Error; err != nil {
		// insert went through; acknowledge it even without the row
		c.JSON(http.StatusOK, gin.H{"success": true, "id": reading.ID})
		return
	}

	s.Hub.Broadcast(broadcastEvent, stored)
	c.JSON(http.StatusOK, gin.H{"success": true, "id": stored.ID, "registro": stored})
}

// parseFecha accepts the devices' "2006-01-02 15:04:05" format and falls
// back to RFC3339.
func parseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// GetHistory returns up to 100 most recent readings for one device,
// newest first. The location payload and battery level stay out of this
// public listing.
func (s *SensorController) GetHistory(c *gin.Context) {
	id := c.Param("id_agrokit")

	records := make([]models.ReadingSummary, 0, recentLimit)
	err := s.DB.Model(&models.SensorReading{}).
		Where("id_agrokit = ?", id).
		Order("fecha desc").
		Limit(recentLimit).
		Find(&records).Error
	if err != nil {
		log.Println("DB select error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error DB"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetAgrokits lists every registered device.
func (s *SensorController) GetAgrokits(c *gin.Context) {
	var kits []models.Agrokit
	if err := s.DB.Find(&kits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}

	out := make([]gin.H, 0, len(kits))
	for _, k := range kits {
		out = append(out, gin.H{"id_agrokit": k.IDAgrokit, "name": k.Name})
	}
	c.JSON(http.StatusOK, out)
}

// DownloadXLSX streams the full history of one device as a spreadsheet
// attachment named after the device and the current date.
func (s *SensorController) DownloadXLSX(c *gin.Context) {
	id := c.Param("id_agrokit")

	var records []models.SensorReading
	if err := s.DB.Where("id_agrokit = ?", id).Order("fecha desc").Find(&records).Error; err != nil {
		log.Println("DB select error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error DB"})
		return
	}

	book, err := utils.BuildWorkbook(records)
	if err != nil {
		log.Println("Spreadsheet build error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building spreadsheet"})
		return
	}
	defer book.Close()

	fileName := fmt.Sprintf("agrokit_%s_%s.xlsx", id, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if _, err := book.WriteTo(c.Writer); err != nil {
		log.Println("Spreadsheet write error:", err)
	}
}

// Health reports server time and whether the store is reachable.
func (s *SensorController) Health(c *gin.Context) {
	dbOK := false
	if sqlDB, err := s.DB.DB(); err == nil && sqlDB.Ping() == nil {
		dbOK = true
	}
	c.JSON(http.StatusOK, gin.H{
		"time": time.Now().Format(time.RFC3339),
		"db":   dbOK,
	})
}
