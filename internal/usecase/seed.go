package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

type demoItem struct {
	name        string
	price       string
	description string
}

type demoCategory struct {
	name    string
	channel model.Channel
	items   []demoItem
}

var demoMenu = []demoCategory{
	{name: "VEG STARTER", channel: model.ChannelRestaurant, items: []demoItem{
		{"PANEER CHILLI DRY", "350.00", "Crispy paneer tossed in spicy chilli sauce"},
		{"FRENCH FRIES", "160.00", "Crispy golden potato fries"},
		{"PAPAD FRY", "20.00", "Deep fried crispy papad"},
	}},
	{name: "NON VEG STARTER", channel: model.ChannelRestaurant, items: []demoItem{
		{"CHICKEN CHILLI", "350.00", "Spicy chicken pieces in Indo-Chinese chilli sauce"},
		{"CHICKEN LOLLIPOP", "350.00", "Drumstick chicken shaped as lollipops"},
		{"PRAWN DRY FRY", "450.00", "Dry roasted prawns with coastal spices"},
	}},
	{name: "CHINESE MAIN COURSE", channel: model.ChannelRestaurant, items: []demoItem{
		{"CHICKEN FRIED RICE", "220.00", "Wok-tossed rice with tender chicken pieces"},
		{"VEG FRIED NOODLES", "180.00", "Hakka noodles with mixed vegetables"},
	}},
	{name: "NON VEG INDIAN MAIN COURSE", channel: model.ChannelRestaurant},
	{name: "VEG INDIAN MAIN COURSE", channel: model.ChannelRestaurant, items: []demoItem{
		{"PANEER BUTTER MASALA", "400.00", "Cottage cheese in rich tomato butter gravy"},
		{"DAL FRY", "120.00", "Tempered yellow lentils with spices"},
	}},
	{name: "SALAD", channel: model.ChannelRestaurant},
	{name: "RICE", channel: model.ChannelRestaurant, items: []demoItem{
		{"PLAIN RICE", "100.00", "Steamed basmati rice"},
		{"CHICKEN BIRYANI", "350.00", "Aromatic basmati rice layered with spiced chicken"},
	}},
	{name: "BEVERAGE", channel: model.ChannelRestaurant},
	{name: "BEER", channel: model.ChannelBar, items: []demoItem{
		{"TUBORG", "120.00", "Danish premium lager beer"},
		{"CORONA", "200.00", "Mexican light beer with lime"},
	}},
	{name: "WHISKEY", channel: model.ChannelBar, items: []demoItem{
		{"BLINDER'S PRIDE", "150.00", "Premium Indian whiskey with smooth finish"},
		{"JAMESON", "400.00", "Irish whiskey, triple distilled"},
		{"GLENFIDDICH 12 YEARS", "750.00", "Single malt Scotch whiskey, aged 12 years"},
	}},
	{name: "WINE", channel: model.ChannelBar, items: []demoItem{
		{"ZUMZIN", "500.00", "Premium Indian red wine"},
	}},
	{name: "RUM AND VODKA", channel: model.ChannelBar, items: []demoItem{
		{"OLD MONK", "200.00", "Dark Indian rum, aged in oak"},
		{"SMIRNOFF VODKA", "150.00", "Premium triple distilled vodka"},
	}},
	{name: "GIN", channel: model.ChannelBar, items: []demoItem{
		{"BOMBAY SAPPHIRE", "350.00", "Premium London dry gin with botanicals"},
	}},
	{name: "SHOTS", channel: model.ChannelBar, items: []demoItem{
		{"TEQUILA SHOTS", "250.00", "Pure tequila shot with lime and salt"},
	}},
	{name: "COCKTAILS", channel: model.ChannelBar, items: []demoItem{
		{"MOJITO", "350.00", "Mint Leaf, Lime Juice, Bacardi, Black Salt, Sugar Syrup"},
		{"MARGARITA", "350.00", "Tequila, Triple Sec, Lime Juice"},
	}},
	{name: "MOCKTAILS", channel: model.ChannelBar, items: []demoItem{
		{"VIRGIN MOJITO", "200.00", "Mint Leaf, Lime Juice, Sugar, Black Salt, Sprite"},
	}},
}

var demoTables = []model.Table{
	{Number: "1", Name: "Table No. 1", Type: model.TableTypeTable},
	{Number: "2", Name: "Table No. 2", Type: model.TableTypeTable},
	{Number: "3", Name: "Table No. 3", Type: model.TableTypeTable},
	{Number: "4", Name: "Table No. 4", Type: model.TableTypeTable},
	{Number: "5", Name: "Lower Table 1", Type: model.TableTypeTable},
	{Number: "6", Name: "Upper Table 1", Type: model.TableTypeTable},
	{Number: "LIKA", Name: "LIKA COTTAGE", Type: model.TableTypeRoom},
	{Number: "BALI", Name: "BALI COTTAGE", Type: model.TableTypeRoom},
}

// SeedOptions controls what Seed creates.
type SeedOptions struct {
	AdminUsername string
	AdminPassword string
	Demo          bool
}

// SeedUseCase bootstraps the admin account and the demo catalog.
type SeedUseCase struct {
	auth       *AuthUseCase
	users      repository.UserRepository
	categories repository.CategoryRepository
	catalog    *CatalogUseCase
	logger     *slog.Logger
}

// NewSeedUseCase constructs SeedUseCase.
func NewSeedUseCase(auth *AuthUseCase, users repository.UserRepository, categories repository.CategoryRepository, catalog *CatalogUseCase, logger *slog.Logger) *SeedUseCase {
	return &SeedUseCase{auth: auth, users: users, categories: categories, catalog: catalog, logger: logger}
}

// Seed is safe to run on every start.
func (u *SeedUseCase) Seed(ctx context.Context, opts SeedOptions) error {
	if opts.AdminPassword != "" {
		if err := u.ensureAdmin(ctx, opts.AdminUsername, opts.AdminPassword); err != nil {
			return err
		}
	}
	if opts.Demo {
		return u.seedDemo(ctx)
	}
	return nil
}

func (u *SeedUseCase) ensureAdmin(ctx context.Context, username, password string) error {
	_, err := u.users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}

	if _, err := u.auth.Register(ctx, username, password, model.RoleAdmin); err != nil && !errors.Is(err, domainErrors.ErrAlreadyExists) {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	u.logger.Info("admin account created", slog.String("username", username))
	return nil
}

func (u *SeedUseCase) seedDemo(ctx context.Context) error {
	existing, err := u.categories.List(ctx, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	items := 0
	for _, dc := range demoMenu {
		category, err := u.catalog.CreateCategory(ctx, model.Category{Name: dc.name, Channel: dc.channel})
		if err != nil {
			return fmt.Errorf("seed category %s: %w", dc.name, err)
		}
		for _, di := range dc.items {
			id := category.ID
			_, err := u.catalog.CreateMenuItem(ctx, model.MenuItem{
				Name:        di.name,
				Description: di.description,
				Price:       decimal.RequireFromString(di.price),
				CategoryID:  &id,
				Channel:     dc.channel,
				Available:   true,
			})
			if err != nil {
				return fmt.Errorf("seed item %s: %w", di.name, err)
			}
			items++
		}
	}

	for _, t := range demoTables {
		if _, err := u.catalog.CreateTable(ctx, t); err != nil && !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return fmt.Errorf("seed table %s: %w", t.Number, err)
		}
	}

	u.logger.Info("demo catalog seeded",
		slog.Int("categories", len(demoMenu)),
		slog.Int("items", items),
		slog.Int("tables", len(demoTables)))
	return nil
}
