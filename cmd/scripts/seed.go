// Command seed provisions a demo partner with a default material price
// list and a sample location. Intended for local development only.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/dloopapp/dloop-partner-backend/internal/config"
	"github.com/dloopapp/dloop-partner-backend/internal/models"
	mongorepo "github.com/dloopapp/dloop-partner-backend/internal/repositories/mongodb"
	mongodb "github.com/dloopapp/dloop-partner-backend/pkg/mongodb"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var defaultMaterials = []models.Material{
	{Name: "PET bottles", Category: models.MaterialPlastic, PricePerKg: 0.35, Accepted: true},
	{Name: "Clear glass", Category: models.MaterialGlass, PricePerKg: 0.08, Accepted: true},
	{Name: "Aluminium cans", Category: models.MaterialMetal, PricePerKg: 1.10, Accepted: true},
	{Name: "Copper wire", Category: models.MaterialMetal, PricePerKg: 5.60, Accepted: true},
	{Name: "Cardboard", Category: models.MaterialPaper, PricePerKg: 0.05, Accepted: true},
	{Name: "Small electronics", Category: models.MaterialElectronics, PricePerKg: 0.90, Accepted: false},
}

func main() {
	email := flag.String("email", "demo@dloop.app", "email of the demo partner account")
	password := flag.String("password", "changeme123", "password of the demo partner account")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	uri := config.GetEnv("MONGODB_URI", cfg.MongoDB.URI)
	dbName := config.GetEnv("MONGODB_DATABASE", cfg.MongoDB.Database)

	client, err := mongodb.NewClient(uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(dbName)
	partnerRepo := mongorepo.NewPartnerRepository(db)
	materialRepo := mongorepo.NewMaterialRepository(db)
	locationRepo := mongorepo.NewLocationRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	partner, err := partnerRepo.FindByEmail(ctx, *email)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Fatalf("Failed to look up partner: %v", err)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		partner = &models.Partner{
			Email:        *email,
			Password:     string(hashed),
			BusinessName: "dLoop Demo Recycling",
		}
		if err := partnerRepo.Create(ctx, partner); err != nil {
			log.Fatalf("Failed to create partner: %v", err)
		}
		log.Printf("Created demo partner %s (%s)", *email, partner.ID.Hex())
	} else {
		log.Printf("Partner %s already exists, seeding data for it", *email)
	}

	existing, err := materialRepo.FindByOwner(ctx, partner.ID, "")
	if err != nil {
		log.Fatalf("Failed to list materials: %v", err)
	}
	if len(existing) == 0 {
		for i := range defaultMaterials {
			m := defaultMaterials[i]
			m.OwnerID = partner.ID
			if err := materialRepo.Create(ctx, &m); err != nil {
				log.Fatalf("Failed to seed material %q: %v", m.Name, err)
			}
		}
		log.Printf("Seeded %d materials", len(defaultMaterials))
	}

	locations, err := locationRepo.FindByOwner(ctx, partner.ID)
	if err != nil {
		log.Fatalf("Failed to list locations: %v", err)
	}
	if len(locations) == 0 {
		loc := &models.Location{
			OwnerID:      partner.ID,
			Name:         "Main yard",
			Address:      "Industrieweg 12",
			City:         "Rotterdam",
			PostalCode:   "3044 AS",
			Latitude:     51.9244,
			Longitude:    4.4626,
			OpeningHours: "Mon-Sat 08:00-17:00",
		}
		if err := locationRepo.Create(ctx, loc); err != nil {
			log.Fatalf("Failed to seed location: %v", err)
		}
		log.Println("Seeded 1 location")
	}

	log.Println("Done")
}
