package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rafasilverio93/designar/internal/config"
	"github.com/rafasilverio93/designar/internal/database"
	"github.com/rafasilverio93/designar/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TerritoryData struct {
	Nome             string `yaml:"nome"`
	EnderecoNaoBater string `yaml:"endereco_nao_bater,omitempty"`
}

type OutingData struct {
	Nome      string `yaml:"nome"`
	DiaSemana string `yaml:"dia_semana"`
}

type TerritoriesFile struct {
	Territorios []TerritoryData `yaml:"territorios"`
}

type OutingsFile struct {
	SaidasCampo []OutingData `yaml:"saidas_campo"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	territories, err := loadTerritories(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load territories: %w", err)
	}

	outings, err := loadOutings(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load outings: %w", err)
	}

	territoryCreated := 0
	for _, t := range territories {
		var count int64
		db.Model(&models.Territory{}).Where("LOWER(nome) = LOWER(?)", t.Nome).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Territory{
			Nome:             t.Nome,
			EnderecoNaoBater: t.EnderecoNaoBater,
		}).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create territory %s: %v", t.Nome, err)
			continue
		}
		territoryCreated++
	}
	log.Printf("📋 Territories: %d created, %d total", territoryCreated, len(territories))

	outingCreated := 0
	for _, o := range outings {
		dia := models.Weekday(o.DiaSemana)
		if !dia.IsValid() {
			log.Printf("⚠️  Warning: outing %s has invalid weekday %q, skipping", o.Nome, o.DiaSemana)
			continue
		}
		var count int64
		db.Model(&models.Outing{}).Where("nome = ? AND dia_semana = ?", o.Nome, dia).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Outing{
			Nome:      o.Nome,
			DiaSemana: dia,
		}).Error; err != nil {
			log.Printf("⚠️  Warning: failed to create outing %s: %v", o.Nome, err)
			continue
		}
		outingCreated++
	}
	log.Printf("📋 Outings: %d created, %d total", outingCreated, len(outings))

	return nil
}

func loadTerritories(dataDir string) ([]TerritoryData, error) {
	data, err := os.ReadFile(dataDir + "/territorios.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file TerritoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Territorios, nil
}

func loadOutings(dataDir string) ([]OutingData, error) {
	data, err := os.ReadFile(dataDir + "/saidas_campo.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file OutingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.SaidasCampo, nil
}
