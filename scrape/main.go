package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/burger-daydle/daydle_api/model"
	"github.com/burger-daydle/daydle_api/wiki"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		limit  = flag.Int("limit", 0, "Stop after N episodes (0 = all)")
		season = flag.Int("season", 0, "Only scrape one season (0 = all)")
		dryRun = flag.Bool("dry-run", false, "Print what would be written without touching the database")
		dbPath = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
	)
	flag.Parse()

	var db *gorm.DB
	if !*dryRun {
		var err error
		db, err = openDatabase(*dbPath)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&model.Episode{}, &model.Burger{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	client := wiki.NewClient()

	episodes, err := client.ScrapeEpisodeList()
	if err != nil {
		log.Fatalf("Failed to fetch the episode guide: %v", err)
	}

	scraped := 0
	burgerCount := 0
	for _, ep := range episodes {
		if *season != 0 && ep.Season != *season {
			continue
		}
		if *limit > 0 && scraped >= *limit {
			break
		}

		details := client.ScrapeEpisodePage(ep.URL)
		gags := client.ScrapeGagsPage(ep.URL, ep.Title)

		record := buildEpisode(ep, details, gags)

		log.Printf("s%02de%02d %q: %d burgers, store=%q truck=%q",
			ep.Season, ep.EpisodeNumber, ep.Title, len(gags.Burgers), gags.StoreNextDoor, gags.PestControlTruck)

		if *dryRun {
			for _, b := range gags.Burgers {
				fmt.Printf("  - %s %s\n", b.Name, b.Description)
			}
		} else {
			if err := upsertEpisode(db, record, gags.Burgers); err != nil {
				log.Fatalf("Failed to store episode %s: %v", ep.Title, err)
			}
		}

		scraped++
		burgerCount += len(gags.Burgers)
	}

	log.Printf("Done: %d episodes, %d burgers", scraped, burgerCount)
}

func openDatabase(dbPath string) (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	database := dbPath
	if database == "" {
		database = os.Getenv("DB_DATABASE")
	}
	if database == "" && driver != "postgres" {
		database = "daydle.db"
	}

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Error)}
	if driver == "postgres" {
		return gorm.Open(postgres.Open(database), cfg)
	}
	return gorm.Open(sqlite.Open(database), cfg)
}

func buildEpisode(ep wiki.Episode, details wiki.EpisodeDetails, gags wiki.GagsData) *model.Episode {
	record := &model.Episode{
		ID:            uuid.New().String(),
		Season:        ep.Season,
		EpisodeNumber: ep.EpisodeNumber,
		Title:         ep.Title,
		WikiURL:       ep.URL,
	}

	record.PlotSummary = optional(details.PlotSummary)
	record.ImageURL = optional(details.ImageURL)
	record.StoreNextDoor = optional(gags.StoreNextDoor)
	record.PestControlTruck = optional(gags.PestControlTruck)

	return record
}

func upsertEpisode(db *gorm.DB, record *model.Episode, burgers []wiki.BurgerEntry) error {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "season"}, {Name: "episode_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "wiki_url", "plot_summary", "image_url",
			"store_next_door", "pest_control_truck", "updated_at",
		}),
	}).Create(record).Error
	if err != nil {
		return err
	}

	// The conflict path keeps the existing row's ID, re-read it for the FK
	var stored model.Episode
	err = db.First(&stored, "season = ? AND episode_number = ?", record.Season, record.EpisodeNumber).Error
	if err != nil {
		return err
	}

	for _, b := range burgers {
		burger := model.Burger{
			ID:          uuid.New().String(),
			EpisodeID:   stored.ID,
			Name:        b.Name,
			Description: optional(b.Description),
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "episode_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "updated_at"}),
		}).Create(&burger).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
