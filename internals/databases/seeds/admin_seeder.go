package seeds

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	adminModel "rollcall_backend/internals/features/users/admins/model"
)

// SeedDefaultAdmin creates the bootstrap superadmin when the table is
// empty, so a fresh deployment can log in at all. Credentials come from
// ADMIN_EMAIL / ADMIN_PASSWORD; without them the seed is skipped.
func SeedDefaultAdmin(db *gorm.DB) {
	var total int64
	if err := db.Model(&adminModel.AdminUserModel{}).Count(&total).Error; err != nil {
		log.Printf("⚠️ admin seed skipped: %v", err)
		return
	}
	if total > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ admin seed skipped: ADMIN_EMAIL / ADMIN_PASSWORD not set")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("⚠️ admin seed skipped: %v", err)
		return
	}

	admin := adminModel.AdminUserModel{
		AdminUserName:     "Administrator",
		AdminUserEmail:    email,
		AdminUserPassword: string(hash),
		AdminUserRole:     "superadmin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("⚠️ admin seed failed: %v", err)
		return
	}
	log.Printf("✅ Seeded bootstrap admin %s", email)
}
