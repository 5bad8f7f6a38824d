package repository

import (
	"context"
	"time"

	"dessertbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewView is a review row joined with its dessert name.
type ReviewView struct {
	ID           int64     `gorm:"column:id"`
	Number       string    `gorm:"column:review_number"`
	Content      string    `gorm:"column:review_content"`
	Time         time.Time `gorm:"column:review_time"`
	User         string    `gorm:"column:review_user"`
	DessertID    int64     `gorm:"column:dessert_id"`
	DessertName  string    `gorm:"column:dessert_name"`
	HasPic       bool      `gorm:"column:has_pic"`
	PicExtension *string   `gorm:"column:pic_extension"`
}

// ImageName mirrors domain.Review.ImageName for projected rows.
func (v *ReviewView) ImageName() string {
	if !v.HasPic || v.PicExtension == nil {
		return ""
	}
	return domain.ImageFileName(v.ID, *v.PicExtension)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, desserts.name AS dessert_name").
		Joins("JOIN desserts ON desserts.id = reviews.dessert_id").
		Order("reviews.id")
}

func (r *ReviewRepository) ListViews(ctx context.Context) ([]ReviewView, error) {
	var rows []ReviewView
	err := r.views(ctx).Scan(&rows).Error
	return rows, err
}

func (r *ReviewRepository) GetView(ctx context.Context, id int64) (*ReviewView, error) {
	var rows []ReviewView
	if err := r.views(ctx).Where("reviews.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *ReviewRepository) ListViewsForDessert(ctx context.Context, dessertID int64) ([]ReviewView, error) {
	var rows []ReviewView
	err := r.views(ctx).Where("reviews.dessert_id = ?", dessertID).Scan(&rows).Error
	return rows, err
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Review{}, id)
}

// Create inserts rv without a picture regardless of its photo fields.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	rv.HasPic = false
	rv.PicExtension = nil
	return r.db.WithContext(ctx).Omit("id", clause.Associations).Create(rv).Error
}

// Update writes the textual columns and the dessert reference. The photo columns
// belong to UpdateImage and are never touched here.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", rv.ID).
		Updates(map[string]any{
			"review_number":  rv.Number,
			"review_content": rv.Content,
			"review_time":    rv.Time,
			"review_user":    rv.User,
			"dessert_id":     rv.DessertID,
		})
	return tx.RowsAffected, tx.Error
}

func (r *ReviewRepository) UpdateImage(ctx context.Context, id int64, ext string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"has_pic":       true,
			"pic_extension": ext,
		})
	return tx.RowsAffected, tx.Error
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Review{}, id)
	return tx.RowsAffected, tx.Error
}

// ListWithPicturesForDessert returns the reviews of a dessert that carry a photo.
func (r *ReviewRepository) ListWithPicturesForDessert(ctx context.Context, dessertID int64) ([]domain.Review, error) {
	var rows []domain.Review
	err := r.db.WithContext(ctx).
		Where("dessert_id = ? AND has_pic = ?", dessertID, true).
		Find(&rows).Error
	return rows, err
}
