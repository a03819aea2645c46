package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/burger-daydle/daydle_api/model"
	"github.com/burger-daydle/daydle_api/shared"
)

// Seeds the puzzle schedule: every burger gets a date, in shuffled order, one
// per day from the start date. Already scheduled dates are overwritten.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		start  = flag.String("start", "", "First puzzle date (YYYY-MM-DD, default today UTC)")
		count  = flag.Int("count", 0, "Schedule at most N puzzles (0 = every burger)")
		dryRun = flag.Bool("dry-run", false, "Preview the schedule without writing it")
		dbPath = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
	)
	flag.Parse()

	startDate := time.Now().UTC()
	if *start != "" {
		parsed, err := time.Parse(shared.DateLayout, *start)
		if err != nil {
			log.Fatalf("Invalid start date %q, expected YYYY-MM-DD", *start)
		}
		startDate = parsed
	}

	db, err := openDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&model.DailyPuzzle{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var burgers []model.Burger
	if err := db.Preload("Episode").Find(&burgers).Error; err != nil {
		log.Fatalf("Failed to load burgers: %v", err)
	}
	if len(burgers) == 0 {
		log.Fatal("No burgers in the database, run the scraper first")
	}

	rand.Shuffle(len(burgers), func(i, j int) {
		burgers[i], burgers[j] = burgers[j], burgers[i]
	})

	if *count > 0 && *count < len(burgers) {
		burgers = burgers[:*count]
	}

	for i, b := range burgers {
		date := startDate.AddDate(0, 0, i).Format(shared.DateLayout)

		log.Printf("%s  %q  (s%02de%02d %s)",
			date, b.Name, b.Episode.Season, b.Episode.EpisodeNumber, b.Episode.Title)

		if *dryRun {
			continue
		}

		puzzle := model.DailyPuzzle{
			ID:       uuid.New().String(),
			Date:     date,
			BurgerID: b.ID,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"burger_id", "updated_at"}),
		}).Create(&puzzle).Error
		if err != nil {
			log.Fatalf("Failed to schedule %s: %v", date, err)
		}
	}

	if *dryRun {
		log.Printf("Dry run: %d puzzles previewed, nothing written", len(burgers))
		return
	}
	log.Printf("Scheduled %d puzzles starting %s", len(burgers), startDate.Format(shared.DateLayout))
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
