package services

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/burger-daydle/daydle_api/model"
	"github.com/burger-daydle/daydle_api/shared"
)

type SqliteService struct {
	context.DefaultService
	db *gorm.DB

	driver   string
	database string
}

const SQLITE_SVC = "sqlite_svc"

// Id returns Service ID
func (ds SqliteService) Id() string {
	return SQLITE_SVC
}

// Db Access to raw SqliteService db
func (ds SqliteService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *SqliteService) Configure(ctx *context.Context) error {
	ds.driver = os.Getenv("DB_DRIVER")
	if ds.driver == "" {
		ds.driver = "sqlite"
	}
	ds.database = os.Getenv("DB_DATABASE")
	if ds.database == "" && ds.driver == "sqlite" {
		ds.database = "daydle.db"
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() (err error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	switch ds.driver {
	case "postgres":
		ds.db, err = gorm.Open(postgres.Open(ds.database), cfg)
	default:
		ds.db, err = gorm.Open(sqlite.Open(ds.database), cfg)
	}
	if err != nil {
		return err
	}

	models := []interface{}{
		&model.Episode{},
		&model.Burger{},
		&model.DailyPuzzle{},
		&model.GameStats{},
		&model.MediaAsset{},
		&model.AdminUser{},
	}

	err = ds.db.AutoMigrate(models...)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqliteService) Shutdown() {
}

// ==================== EPISODES ====================

// UpsertEpisode inserts an episode keyed by season/number or refreshes its
// scraped columns. Curated hint columns are left untouched on conflict.
func (ds *SqliteService) UpsertEpisode(ep *model.Episode) error {
	if ep.ID == "" {
		ep.ID = uuid.New().String()
	}

	err := ds.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "season"}, {Name: "episode_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "wiki_url", "plot_summary", "image_url", "updated_at",
		}),
	}).Create(ep).Error
	return ds.HandleError(err)
}

func (ds *SqliteService) GetEpisode(id string) (*model.Episode, error) {
	var ep model.Episode
	if err := ds.db.Preload("Burgers").First(&ep, "id = ?", id).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &ep, nil
}

func (ds *SqliteService) GetEpisodeByCode(season, episodeNumber int) (*model.Episode, error) {
	var ep model.Episode
	err := ds.db.First(&ep, "season = ? AND episode_number = ?", season, episodeNumber).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return &ep, nil
}

func (ds *SqliteService) GetEpisodesBySeason(season, limit int) ([]model.Episode, error) {
	var eps []model.Episode
	err := ds.db.Where("season = ?", season).
		Order("episode_number asc").
		Limit(limit).
		Find(&eps).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return eps, nil
}

func (ds *SqliteService) SearchEpisodesByTitle(query string, limit int) ([]model.Episode, error) {
	var eps []model.Episode
	pattern := "%" + strings.ToLower(query) + "%"
	err := ds.db.Where("LOWER(title) LIKE ?", pattern).
		Order("season asc, episode_number asc").
		Limit(limit).
		Find(&eps).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return eps, nil
}

func (ds *SqliteService) ListEpisodes() ([]model.Episode, error) {
	var eps []model.Episode
	if err := ds.db.Order("season asc, episode_number asc").Find(&eps).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return eps, nil
}

func (ds *SqliteService) UpdateEpisodeColumns(id string, columns map[string]interface{}) error {
	res := ds.db.Model(&model.Episode{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return ds.HandleError(res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFoundError(gorm.ErrRecordNotFound, "Episode not found")
	}
	return nil
}

// ==================== BURGERS ====================

func (ds *SqliteService) UpsertBurger(b *model.Burger) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	err := ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "episode_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "updated_at"}),
	}).Create(b).Error
	return ds.HandleError(err)
}

func (ds *SqliteService) GetBurger(id string) (*model.Burger, error) {
	var b model.Burger
	if err := ds.db.Preload("Episode").First(&b, "id = ?", id).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &b, nil
}

func (ds *SqliteService) ListBurgers() ([]model.Burger, error) {
	var burgers []model.Burger
	if err := ds.db.Order("episode_id asc, name asc").Find(&burgers).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return burgers, nil
}

func (ds *SqliteService) UpdateBurger(b *model.Burger) error {
	res := ds.db.Model(&model.Burger{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"name":        b.Name,
		"description": b.Description,
	})
	if res.Error != nil {
		return ds.HandleError(res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFoundError(gorm.ErrRecordNotFound, "Burger not found")
	}
	return nil
}

// ==================== DAILY PUZZLES ====================

func (ds *SqliteService) GetPuzzleByDate(date string) (*model.DailyPuzzle, error) {
	var p model.DailyPuzzle
	err := ds.db.Preload("Burger").Preload("Burger.Episode").
		First(&p, "date = ?", date).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return &p, nil
}

func (ds *SqliteService) UpsertPuzzle(date, burgerID string) error {
	p := model.DailyPuzzle{
		ID:       uuid.New().String(),
		Date:     date,
		BurgerID: burgerID,
	}
	err := ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"burger_id", "updated_at"}),
	}).Create(&p).Error
	return ds.HandleError(err)
}

func (ds *SqliteService) DeletePuzzleByDate(date string) error {
	res := ds.db.Where("date = ?", date).Delete(&model.DailyPuzzle{})
	if res.Error != nil {
		return ds.HandleError(res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NewNotFoundError(gorm.ErrRecordNotFound, "No puzzle scheduled for that date")
	}
	return nil
}

func (ds *SqliteService) ListPuzzlesFrom(date string) ([]model.DailyPuzzle, error) {
	var puzzles []model.DailyPuzzle
	err := ds.db.Preload("Burger").Preload("Burger.Episode").
		Where("date >= ?", date).
		Order("date asc").
		Find(&puzzles).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return puzzles, nil
}

// LatestPuzzleDate returns the last scheduled date, empty when no puzzles exist
func (ds *SqliteService) LatestPuzzleDate() (string, error) {
	var p model.DailyPuzzle
	err := ds.db.Order("date desc").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", ds.HandleError(err)
	}
	return p.Date, nil
}

// ==================== GAME STATS ====================

func (ds *SqliteService) GetStats(date string) (*model.GameStats, error) {
	var s model.GameStats
	err := ds.db.First(&s, "date = ?", date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.GameStats{Date: date}, nil
	}
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return &s, nil
}

// outcomeColumn maps a reported guess number to its counter column.
// Anything outside 1..MaxGuesses counts as a loss.
func outcomeColumn(guessNumber int) string {
	if guessNumber != shared.OutcomeLoss && guessNumber >= 1 && guessNumber <= shared.MaxGuesses {
		return fmt.Sprintf("win_on_guess%d", guessNumber)
	}
	return "losses"
}

// IncrementOutcome bumps one bucket counter for a date. The row is created on
// first use, then incremented with a single UPDATE so concurrent reports never
// lose counts.
func (ds *SqliteService) IncrementOutcome(date string, guessNumber int) error {
	column := outcomeColumn(guessNumber)

	err := ds.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoNothing: true,
	}).Create(&model.GameStats{Date: date}).Error
	if err != nil {
		return ds.HandleError(err)
	}

	err = ds.db.Model(&model.GameStats{}).
		Where("date = ?", date).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
	return ds.HandleError(err)
}

// ==================== ADMIN USERS ====================

func (ds *SqliteService) GetAdminByEmail(email string) (*model.AdminUser, error) {
	var admin model.AdminUser
	err := ds.db.First(&admin, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, ds.HandleError(err)
	}
	return &admin, nil
}

func (ds *SqliteService) CreateAdmin(admin *model.AdminUser) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	admin.Email = strings.ToLower(admin.Email)
	return ds.HandleError(ds.db.Create(admin).Error)
}

// ==================== MEDIA ====================

func (ds *SqliteService) CreateMediaAsset(asset *model.MediaAsset) error {
	if asset.ID == "" {
		asset.ID = uuid.New().String()
	}
	return ds.HandleError(ds.db.Create(asset).Error)
}

func (ds *SqliteService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := shared.GetAppError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(err, "Record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewConflictError(err, "Record already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewBadRequestError(err, "Related record does not exist")
	default:
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return shared.NewConflictError(err, "Record already exists")
		}

		log.WithFields(log.Fields{
			"error": err.Error(),
		}).Error("Database error occurred")
		return shared.NewInternalError(err)
	}
}
