package meal

import (
	"context"
	"time"

	"nutritrack-backend/domain"
	"nutritrack-backend/entities"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.MealRecord) error
		GetMealByID(ctx context.Context, id string) (*entities.MealRecord, error)
		UpdateMeal(ctx context.Context, meal *entities.MealRecord) error
		DeleteMeal(ctx context.Context, id string) error
		GetMeals(ctx context.Context, userID string, filter domain.MealFilter) ([]*entities.MealRecord, int64, error)
		GetMealsByUser(ctx context.Context, userID string) ([]*entities.MealRecord, error)
		GetMealsSince(ctx context.Context, userID string, since time.Time) ([]*entities.MealRecord, error)
		GetAllMeals(ctx context.Context) ([]*entities.MealRecord, error)
		CountMeals(ctx context.Context) (int64, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.MealRecord) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string) (*entities.MealRecord, error) {
	var meal entities.MealRecord
	if err := r.db.WithContext(ctx).Preload("Foods").Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepository) UpdateMeal(ctx context.Context, meal *entities.MealRecord) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *mealRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&entities.MealFood{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.MealRecord{}).Error
	})
}

func (r *mealRepository) GetMeals(ctx context.Context, userID string, filter domain.MealFilter) ([]*entities.MealRecord, int64, error) {
	var meals []*entities.MealRecord
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.MealRecord{}).Where("user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.MealType != "" {
		query = query.Where("meal_type = ?", filter.MealType)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Foods").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&meals).Error; err != nil {
		return nil, 0, err
	}

	return meals, count, nil
}

func (r *mealRepository) GetMealsByUser(ctx context.Context, userID string) ([]*entities.MealRecord, error) {
	var meals []*entities.MealRecord
	if err := r.db.WithContext(ctx).
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetMealsSince(ctx context.Context, userID string, since time.Time) ([]*entities.MealRecord, error) {
	var meals []*entities.MealRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at > ?", userID, since).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetAllMeals(ctx context.Context) ([]*entities.MealRecord, error) {
	var meals []*entities.MealRecord
	if err := r.db.WithContext(ctx).Preload("Foods").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) CountMeals(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.MealRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
