package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"tripdesk/internal/config"
	"tripdesk/internal/database"
	"tripdesk/internal/domain"
	"tripdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	if _, err := users.GetByEmail(ctx, "admin@tripdesk.in"); err != nil {
		hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin := domain.User{
			Email:        "admin@tripdesk.in",
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			Name:         "Reviewer",
		}
		if err := users.Create(ctx, &admin); err != nil {
			log.Fatal("admin create failed:", err)
		}
		log.Println("Admin created: admin@tripdesk.in / admin123")
	}

	if _, err := users.GetByEmail(ctx, "agent@tripdesk.in"); err != nil {
		hash, _ := bcrypt.GenerateFromPassword([]byte("agent123"), bcrypt.DefaultCost)
		agent := domain.User{
			Email:        "agent@tripdesk.in",
			PasswordHash: string(hash),
			Role:         domain.RoleAgent,
			Name:         "Demo Agent",
			Phone:        "+91 98765 43210",
		}
		if err := users.Create(ctx, &agent); err != nil {
			log.Fatal("agent create failed:", err)
		}
		log.Println("Agent created: agent@tripdesk.in / agent123")
	}

	if _, err := os.Stat(cfg.SchemaPath); os.IsNotExist(err) {
		if err := writeDefaultSchema(cfg.SchemaPath); err != nil {
			log.Fatal("schema write failed:", err)
		}
		log.Println("Default schema written to", cfg.SchemaPath)
	}

	log.Println("Seed completed")
}

func writeDefaultSchema(path string) error {
	doc := defaultSchema()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func defaultSchema() domain.SchemaDocument {
	num := func(v float64) *float64 { return &v }

	return domain.SchemaDocument{
		Fields: []domain.FieldDescriptor{
			// contact group
			{Name: "guestName", Kind: domain.FieldText, Label: "Guest Name", Required: true},
			{Name: "email", Kind: domain.FieldEmail, Label: "Email", Required: true},
			{Name: "phone", Kind: domain.FieldText, Label: "Phone", Required: true},
			// trip group
			{Name: "destination", Kind: domain.FieldText, Label: "Destination", Required: true},
			{Name: "startDate", Kind: domain.FieldDate, Label: "Travel Date", Required: true},
			{Name: "duration", Kind: domain.FieldNumber, Label: "Duration (nights)", Required: true, Min: num(1), Max: num(30)},
			{Name: "adults", Kind: domain.FieldNumber, Label: "Adults", Required: true, Min: num(1)},
			{Name: "children", Kind: domain.FieldNumber, Label: "Children", Min: num(0)},
			{Name: "infants", Kind: domain.FieldNumber, Label: "Infants", Min: num(0)},
			{Name: "hotelCategory", Kind: domain.FieldSelect, Label: "Hotel Category", Required: true, Options: []domain.FieldOption{
				{Value: "3*", Label: "3 Star"},
				{Value: "4*", Label: "4 Star"},
				{Value: "5*", Label: "5 Star"},
			}},
			// pricing group
			{Name: "quotePrice", Kind: domain.FieldNumber, Label: "Quote Price", Min: num(0)},
			{Name: "paymentNote", Kind: domain.FieldTextarea, Label: "Payment Note"},
			{Name: "specialRequests", Kind: domain.FieldTextarea, Label: "Special Requests"},
		},
		Metadata: domain.SchemaMetadata{
			InclusionsList: []string{
				"Accommodation",
				"Breakfast",
				"Airport Transfers",
				"Ferry Tickets",
				"Sightseeing as per itinerary",
				"All applicable taxes",
			},
			ExclusionsList: []string{
				"Airfare",
				"Lunch and dinner",
				"Personal expenses",
				"Travel insurance",
				"Anything not mentioned in inclusions",
			},
			BookingPolicy: &domain.BookingPolicy{
				PaymentTerms: []string{
					"50% advance to confirm the booking",
					"Balance due 15 days before travel",
				},
				CancellationTerms: []string{
					"Free cancellation up to 30 days before travel",
					"50% charge between 30 and 15 days",
					"No refund within 15 days of travel",
				},
			},
		},
	}
}
