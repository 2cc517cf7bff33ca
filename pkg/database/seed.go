package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sreeharigs/organicproduct/internal/model"
	"github.com/sreeharigs/organicproduct/pkg/config"
)

// seed inserts the default admin account and the placeholder certificate
// pool. Both are insert-if-absent, so startup stays idempotent.
func seed(db *gorm.DB, cfg *config.SeedConfig) error {
	var count int64
	if err := db.Model(&model.AdminUser{}).
		Where("username = ?", cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := model.AdminUser{
			Username: cfg.AdminUsername,
			Password: string(hashed),
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	certs := make([]model.ApprovedCertificate, 0, cfg.CertCount)
	for i := 0; i < cfg.CertCount; i++ {
		certs = append(certs, model.ApprovedCertificate{
			CertNumber: fmt.Sprintf("%s%d", cfg.CertPrefix, 1000+i),
		})
	}
	if len(certs) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&certs).Error
}
