package configs

import (
	"math/rand"

	"giftshop/entity"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOwner creates the single level-1 admin on first boot. The admin
// screen refuses to create owners, so this is the only path that does.
func SeedOwner(cfg *Config) error {
	db := DB()
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Warn().Msg("skip seeding owner: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	// At most one owner, ever.
	var count int64
	db.Model(&entity.AdminUser{}).Where("permission_level = ?", entity.PermissionOwner).Count(&count)
	if count > 0 {
		log.Info().Str("username", cfg.AdminUsername).Msg("owner already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := entity.AdminUser{
		Name:            cfg.AdminName,
		Username:        cfg.AdminUsername,
		Email:           cfg.AdminEmail,
		PasswordDigest:  string(hash),
		PermissionLevel: entity.PermissionOwner,
	}
	return db.Create(&owner).Error
}

// --- development fixtures below, never used in production ---

var sampleAdmins = []struct {
	Name, Username, Email string
	PermissionLevel       int
}{
	{"Eivor Wolf-Kissed", "owner", "owner@admin.com", entity.PermissionOwner},
	{"Ezio Auditore", "manager", "manager@admin.com", entity.PermissionManager},
	{"Kassandra Sparta", "editor", "editor@admin.com", entity.PermissionEditor},
	{"Bayek Siwa", "viewer", "viewer@admin.com", entity.PermissionViewer},
}

var sampleCategories = []string{
	"Cookies", "Cakes", "Breads", "Cupcakes", "Brownies", "Vegan", "Seasonal Specials",
}

var sampleProductNames = map[string][]string{
	"Cookies":           {"Chocolate Chip Cookie", "Oatmeal Raisin Cookie", "Peanut Butter Cookie", "Sugar Cookie", "Snickerdoodle", "Double Chocolate Cookie", "Shortbread Cookie", "Macadamia Nut Cookie"},
	"Cakes":             {"Chocolate Cake", "Vanilla Sponge Cake", "Red Velvet Cake", "Carrot Cake", "Lemon Drizzle Cake", "Cheesecake", "Black Forest Cake", "Coffee Cake"},
	"Breads":            {"Sourdough Bread", "Baguette", "Whole Wheat Bread", "Rye Bread", "Ciabatta", "Focaccia", "Brioche", "Multigrain Bread"},
	"Cupcakes":          {"Chocolate Cupcake", "Vanilla Cupcake", "Red Velvet Cupcake", "Lemon Cupcake", "Carrot Cupcake", "Salted Caramel Cupcake", "Strawberry Cupcake", "Cookies & Cream Cupcake"},
	"Brownies":          {"Classic Brownie", "Walnut Brownie", "Fudge Brownie", "Blondie", "Peanut Butter Brownie", "Salted Caramel Brownie", "Cheesecake Brownie", "Espresso Brownie"},
	"Vegan":             {"Vegan Chocolate Cake", "Vegan Cookie", "Vegan Brownie", "Vegan Banana Bread", "Vegan Muffin", "Vegan Cupcake"},
	"Seasonal Specials": {"Pumpkin Spice Muffin", "Gingerbread Cookie", "Eggnog Cupcake", "Peppermint Brownie", "Hot Cross Bun", "Stollen", "Fruitcake"},
}

const sampleDescription = "Delicious handmade treat crafted with the finest ingredients."

// SeedDev wipes and reloads the fixture set. Guarded by SEED_DEV=true.
func SeedDev() error {
	db := DB()
	log.Warn().Msg("[FOR TESTING] running dev seed script")

	// Drop existing records first so the fixture set is deterministic.
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&entity.Product{}).Error; err != nil {
		return err
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&entity.Category{}).Error; err != nil {
		return err
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&entity.AdminUser{}).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	for _, a := range sampleAdmins {
		admin := entity.AdminUser{
			Name:            a.Name,
			Username:        a.Username,
			Email:           a.Email,
			PasswordDigest:  string(hash),
			PermissionLevel: a.PermissionLevel,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}
	log.Info().Int("admins", len(sampleAdmins)).Msg("records created")

	for _, name := range sampleCategories {
		category := entity.Category{Name: name}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
		for _, productName := range sampleProductNames[name] {
			price := randomPrice()
			product := entity.Product{
				Name:           productName,
				Description:    sampleDescription,
				Price:          price,
				SpecialPrice:   randomSpecialPrice(price),
				Stock:          rand.Intn(50),
				AllowBackorder: rand.Float64() < 0.2,
				IsOnSpecial:    rand.Float64() < 0.3,
				IsHidden:       rand.Float64() < 0.1,
				CategoryID:     &category.ID,
			}
			if err := db.Create(&product).Error; err != nil {
				return err
			}
		}
	}
	log.Info().Int("categories", len(sampleCategories)).Msg("records created")

	return nil
}

// randomPrice picks something between 2.00 and 22.00.
func randomPrice() decimal.Decimal {
	cents := 200 + rand.Intn(2001)
	return decimal.New(int64(cents), -2)
}

// randomSpecialPrice discounts roughly a third of products.
func randomSpecialPrice(price decimal.Decimal) *decimal.Decimal {
	if rand.Float64() >= 0.3 {
		return nil
	}
	special := price.Mul(decimal.NewFromFloat(0.8)).Round(2)
	return &special
}
