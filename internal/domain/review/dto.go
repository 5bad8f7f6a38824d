package review

import (
	"io"
	"time"

	"dessertbook/internal/domain"
	"dessertbook/internal/repository"
)

type ReviewDTO struct {
	ID          int64     `json:"id" form:"id"`
	Number      string    `json:"review_number" form:"review_number" validate:"required,max=20"`
	Content     string    `json:"review_content" form:"review_content" validate:"required,max=2000"`
	Time        time.Time `json:"review_time" form:"review_time" time_format:"2006-01-02T15:04" time_utc:"1"`
	User        string    `json:"review_user" form:"review_user" validate:"max=100"`
	DessertID   int64     `json:"dessert_id" form:"dessert_id" validate:"gt=0"`
	DessertName string    `json:"dessert_name,omitempty"`

	// ImagePath is empty when the review has no photo.
	ImagePath string `json:"image_path,omitempty"`
}

// ImageUpload is a photo payload. Size is the declared payload length.
type ImageUpload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

func (d ReviewDTO) toEntity() *domain.Review {
	return &domain.Review{
		ID:        d.ID,
		Number:    d.Number,
		Content:   d.Content,
		Time:      d.Time,
		User:      d.User,
		DessertID: d.DessertID,
	}
}

func (s *Service) fromView(v repository.ReviewView) ReviewDTO {
	dto := ReviewDTO{
		ID:          v.ID,
		Number:      v.Number,
		Content:     v.Content,
		Time:        v.Time,
		User:        v.User,
		DessertID:   v.DessertID,
		DessertName: v.DessertName,
	}
	if name := v.ImageName(); name != "" {
		dto.ImagePath = s.images.URL(name)
	}
	return dto
}

func (s *Service) fromViews(views []repository.ReviewView) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(views))
	for _, v := range views {
		out = append(out, s.fromView(v))
	}
	return out
}
