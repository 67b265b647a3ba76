package hostels

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"outpass_backend/internals/features/directory/housing/model"
)

type HostelSeed struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Capacity int    `json:"capacity"`
}

func SeedHostelsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading hostel seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []HostelSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.HostelModel
		if err := db.Where("hostel_code = ?", data.Code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Hostel '%s' already present, skipped.", data.Code)
			continue
		}

		hostel := model.HostelModel{
			HostelID:       uuid.New(),
			HostelName:     data.Name,
			HostelCode:     data.Code,
			HostelCapacity: data.Capacity,
		}
		if err := db.Create(&hostel).Error; err != nil {
			log.Printf("❌ Failed to seed hostel '%s': %v", data.Code, err)
			continue
		}
		log.Printf("✅ Seeded hostel %s (%s)", data.Name, data.Code)
	}
}
