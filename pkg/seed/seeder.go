package seed

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RahulHansraj/FarmToMarket/entities"
)

const (
	historyDays  = 180
	forecastDays = 15
	seriesDays   = historyDays + forecastDays
)

// Seeder populates reference data and synthesizes per-market, per-crop price
// series. Re-running it upserts prices in place.
type Seeder struct {
	db    *gorm.DB
	rng   *rand.Rand
	table map[string]PriceSpec
	today time.Time
}

func New(db *gorm.DB, table map[string]PriceSpec) *Seeder {
	if table == nil {
		table = defaultPriceTable()
	}
	now := time.Now()
	return &Seeder{
		db:    db,
		rng:   rand.New(rand.NewSource(now.UnixNano())),
		table: table,
		today: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
}

func (s *Seeder) Run() error {
	if err := s.seedCrops(); err != nil {
		return err
	}
	if err := s.seedMarkets(); err != nil {
		return err
	}
	if err := s.seedDefaultUser(); err != nil {
		return err
	}
	return s.seedPrices()
}

func (s *Seeder) seedCrops() error {
	log.Printf("[seed] seeding %d crops", len(cropNames))
	rows := make([]entities.Crop, 0, len(cropNames))
	for _, name := range cropNames {
		rows = append(rows, entities.Crop{Name: name})
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error
}

func (s *Seeder) seedMarkets() error {
	log.Printf("[seed] seeding %d markets", len(marketSeeds))
	for _, m := range marketSeeds {
		row := entities.Market{Name: m.Name, Location: m.Location, Lat: m.Lat, Lng: m.Lng, SpoilageRisk: m.Risk}
		if err := s.db.Where(entities.Market{Name: m.Name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedDefaultUser creates the admin account plus two sample farm-data rows.
func (s *Seeder) seedDefaultUser() error {
	var user entities.User
	err := s.db.Where("email = ?", "admin@example.com").First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user = entities.User{Name: "Admin User", Email: "admin@example.com", Phone: "1234567890", PasswordHash: string(hash)}
	if err := s.db.Create(&user).Error; err != nil {
		return err
	}
	log.Printf("[seed] created default user %s", user.Email)

	samples := []struct {
		crop    string
		qty     float64
		date    string
		loc     string
		storage string
	}{
		{"Wheat", 5000, "2023-10-15", "Field A", "Silo 1"},
		{"Rice (Basmati)", 2000, "2023-11-20", "Field B", "Cold Storage"},
	}
	for _, f := range samples {
		var crop entities.Crop
		if err := s.db.Where("name = ?", f.crop).First(&crop).Error; err != nil {
			return err
		}
		row := entities.FarmData{UserID: user.ID, CropID: crop.ID, QuantityKg: f.qty, HarvestDate: f.date, Location: f.loc, StorageDetails: f.storage}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPrices() error {
	var crops []entities.Crop
	if err := s.db.Find(&crops).Error; err != nil {
		return err
	}
	var markets []entities.Market
	if err := s.db.Find(&markets).Error; err != nil {
		return err
	}

	log.Printf("[seed] generating %d days of prices for %d markets x %d crops", seriesDays, len(markets), len(crops))
	count := 0
	for _, m := range markets {
		for _, c := range crops {
			spec, ok := s.table[c.Name]
			if !ok {
				spec = DefaultSpec
			}
			n, err := s.seedPair(m.ID, c.ID, spec)
			if err != nil {
				return err
			}
			count += n
		}
	}
	log.Printf("[seed] upserted %d price records", count)
	return nil
}

func (s *Seeder) seedPair(marketID, cropID uint, spec PriceSpec) (int, error) {
	points := s.GenerateSeries(spec)
	rows := make([]entities.MarketPrice, 0, len(points))
	for _, p := range points {
		rows = append(rows, entities.MarketPrice{
			MarketID:    marketID,
			CropID:      cropID,
			PricePerKg:  p.Price,
			Date:        p.Date,
			IsPredicted: p.IsPredicted,
		})
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "market_id"}, {Name: "crop_id"}, {Name: "date"}, {Name: "is_predicted"}},
		DoUpdates: clause.AssignmentColumns([]string{"price_per_kg"}),
	}).CreateInBatches(&rows, 500).Error
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// PricePoint is one generated day of a series.
type PricePoint struct {
	Date        string
	Price       float64
	IsPredicted bool
}

// GenerateSeries runs the bounded random walk: a fixed regional multiplier,
// a trend direction held for a random number of days and reversed on expiry,
// daily Gaussian noise plus directional drift, and a soft clamp into
// [0.4*base, 2.5*base] that also forces the trend back toward the band.
func (s *Seeder) GenerateSeries(spec PriceSpec) []PricePoint {
	base, vol := spec.Base, spec.Volatility
	start := s.today.AddDate(0, 0, -(historyDays - 1))

	regional := 0.85 + s.rng.Float64()*0.30
	price := base * regional

	dir := 1
	if s.rng.Intn(2) == 0 {
		dir = -1
	}
	duration := 5 + s.rng.Intn(11) // [5,15]
	counter := 0

	out := make([]PricePoint, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		day := start.AddDate(0, 0, i)

		// periodic reversals simulate seasonal / supply-demand cycles
		if counter >= duration {
			dir *= -1
			duration = 7 + s.rng.Intn(15) // [7,21]
			counter = 0
		}
		counter++

		noise := s.rng.NormFloat64() * (base * vol * 0.1)
		drift := float64(dir) * (base * vol * 0.05)
		price += noise + drift

		if price < base*0.4 {
			price = base * 0.4
			dir = 1 // force upward correction
		} else if price > base*2.5 {
			price = base * 2.5
			dir = -1 // force downward correction
		}

		out = append(out, PricePoint{
			Date:        day.Format("2006-01-02"),
			Price:       math.Round(price*100) / 100,
			IsPredicted: day.After(s.today),
		})
	}
	return out
}
