package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marmitapp/internal/model"
	"marmitapp/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrMenuNotFound  = errors.New("menu does not exist")
	ErrMenuDateTaken = errors.New("a menu already exists for this date")
	ErrInvalidDate   = errors.New("invalid date")
	ErrTooManyDishes = errors.New("too many dishes in a menu section")
)

// Menu dates arrive as DD/MM/YYYY from legacy clients or as ISO dates.
var menuDateLayouts = []string{"02/01/2006", "2006-01-02"}

// ParseMenuDate normalizes a client-supplied menu date to a calendar date
func ParseMenuDate(s string) (time.Time, error) {
	for _, layout := range menuDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// MenuService provides daily-menu operations
type MenuService interface {
	Create(ctx context.Context, restaurantID uuid.UUID, req model.CreateMenuRequest) (*model.Menu, error)
	List(ctx context.Context) ([]model.Menu, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)
	ByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Menu, error)
	Update(ctx context.Context, subjectID uuid.UUID, req model.UpdateMenuRequest) (*model.Menu, error)
	Delete(ctx context.Context, restaurantID uuid.UUID, date string) error
}

type menuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

func checkMenuCaps(main, side, salads, desserts []model.Dish) error {
	if len(main) > model.MaxMainDishes ||
		len(side) > model.MaxSideDishes ||
		len(salads) > model.MaxSalads ||
		len(desserts) > model.MaxDesserts {
		return ErrTooManyDishes
	}
	return nil
}

// Create publishes the restaurant's menu for a date. A restaurant holds at
// most one menu per date and each section is capped in size.
func (s *menuService) Create(ctx context.Context, restaurantID uuid.UUID, req model.CreateMenuRequest) (*model.Menu, error) {
	date, err := ParseMenuDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := checkMenuCaps(req.MainDishes, req.SideDishes, req.Salads, req.Desserts); err != nil {
		return nil, err
	}

	existing, err := s.menuRepo.FindByRestaurantAndDate(ctx, restaurantID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing menu: %w", err)
	}
	if existing != nil {
		return nil, ErrMenuDateTaken
	}

	menu := &model.Menu{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Date:         date,
		MainDishes:   req.MainDishes,
		SideDishes:   req.SideDishes,
		Salads:       req.Salads,
		Desserts:     req.Desserts,
	}
	if err := s.menuRepo.Create(ctx, menu); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMenuDateTaken
		}
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}
	return menu, nil
}

// List returns every menu
func (s *menuService) List(ctx context.Context) ([]model.Menu, error) {
	menus, err := s.menuRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// GetByID returns one menu
func (s *menuService) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	menu, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

// ByRestaurant returns a restaurant's menus
func (s *menuService) ByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.Menu, error) {
	menus, err := s.menuRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus by restaurant: %w", err)
	}
	return menus, nil
}

// Update replaces an owned menu wholesale. A menu belonging to another
// restaurant is reported as not found.
func (s *menuService) Update(ctx context.Context, subjectID uuid.UUID, req model.UpdateMenuRequest) (*model.Menu, error) {
	menuID, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, ErrMenuNotFound
	}
	date, err := ParseMenuDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := checkMenuCaps(req.MainDishes, req.SideDishes, req.Salads, req.Desserts); err != nil {
		return nil, err
	}

	menu, err := s.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}
	if menu == nil || menu.RestaurantID != subjectID {
		return nil, ErrMenuNotFound
	}

	menu.Date = date
	menu.MainDishes = req.MainDishes
	menu.SideDishes = req.SideDishes
	menu.Salads = req.Salads
	menu.Desserts = req.Desserts

	if err := s.menuRepo.Update(ctx, menu); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMenuDateTaken
		}
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	return menu, nil
}

// Delete removes the authenticated restaurant's menu for a date
func (s *menuService) Delete(ctx context.Context, restaurantID uuid.UUID, dateStr string) error {
	date, err := ParseMenuDate(dateStr)
	if err != nil {
		return err
	}

	menu, err := s.menuRepo.FindByRestaurantAndDate(ctx, restaurantID, date)
	if err != nil {
		return fmt.Errorf("failed to find menu: %w", err)
	}
	if menu == nil {
		return ErrMenuNotFound
	}

	if err := s.menuRepo.DeleteByRestaurantAndDate(ctx, restaurantID, date); err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	return nil
}
