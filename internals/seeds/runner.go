package seeds

import (
	"gorm.io/gorm"

	hostels "outpass_backend/internals/seeds/directory/hostels"
	students "outpass_backend/internals/seeds/directory/students"
)

// RunAllSeeds loads the directory reference data. Order matters: students
// reference hostels.
func RunAllSeeds(db *gorm.DB) {
	hostels.SeedHostelsFromJSON(db, "internals/seeds/directory/hostels/data_hostels.json")
	students.SeedStudentsFromJSON(db, "internals/seeds/directory/students/data_students.json")
}
