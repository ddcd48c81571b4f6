package database

import "nhaf/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters for AutoMigrate: referenced tables come first.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Chapter{},
		&models.Member{},
		&models.VolunteerApplication{},
		&models.MembershipApplication{},
		&models.MembershipFee{},
		&models.Donation{},
		&models.DonationTier{},
		&models.BankDetail{},
		&models.Notification{},
		&models.ContactMessage{},
		&models.QuickResponse{},
		&models.ChatMessage{},
		&models.ChatSettings{},
		&models.TeamPageSettings{},
		&models.SiteIdentity{},
		&models.SiteTheme{},
		&models.OrganizationInfo{},
		&models.ContactInfo{},
		&models.ProgramCategory{},
		&models.Program{},
		&models.ImpactStat{},
		&models.Founder{},
		&models.ChapterLocation{},
		&models.Achievement{},
		&models.HeroBanner{},
		&models.HomeContent{},
		&models.AnnouncementPopup{},
		&models.GalleryImage{},
		&models.NavItem{},
		&models.Collaboration{},
	}
}
