package students

import (
	"encoding/json"
	"log"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	housingModel "outpass_backend/internals/features/directory/housing/model"
	"outpass_backend/internals/features/directory/students/model"
)

type StudentSeed struct {
	Code       string `json:"code"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	RollNo     string `json:"roll_no"`
	ClassName  string `json:"class_name"`
	Section    string `json:"section"`
	HostelCode string `json:"hostel_code"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading student seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []StudentSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.StudentModel
		if err := db.Where("student_code = ?", data.Code).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Student '%s' already present, skipped.", data.Code)
			continue
		}

		var hostelID *uuid.UUID
		if data.HostelCode != "" {
			var hostel housingModel.HostelModel
			if err := db.Where("hostel_code = ?", data.HostelCode).First(&hostel).Error; err == nil {
				hostelID = &hostel.HostelID
			} else {
				log.Printf("⚠️ Hostel '%s' not found for student '%s'", data.HostelCode, data.Code)
			}
		}

		student := model.StudentModel{
			StudentID:        uuid.New(),
			StudentCode:      data.Code,
			StudentFirstName: data.FirstName,
			StudentLastName:  data.LastName,
			StudentRollNo:    data.RollNo,
			StudentClassName: data.ClassName,
			StudentSection:   data.Section,
			StudentHostelID:  hostelID,
			StudentIsActive:  true,
		}
		if err := db.Create(&student).Error; err != nil {
			log.Printf("❌ Failed to seed student '%s': %v", data.Code, err)
			continue
		}
		log.Printf("✅ Seeded student %s %s (%s)", data.FirstName, data.LastName, data.Code)
	}
}
