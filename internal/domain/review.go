package domain

import "time"

type Review struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Number    string    `gorm:"column:review_number;not null" json:"review_number"`
	Content   string    `gorm:"column:review_content;not null" json:"review_content"`
	Time      time.Time `gorm:"column:review_time" json:"review_time"`
	User      string    `gorm:"column:review_user" json:"review_user"`
	DessertID int64     `gorm:"column:dessert_id;not null;index" json:"dessert_id"`

	// Photo columns are written only by the image upload path.
	HasPic       bool    `gorm:"column:has_pic;not null;default:false" json:"has_pic"`
	PicExtension *string `gorm:"column:pic_extension" json:"pic_extension,omitempty"`

	Dessert *Dessert `gorm:"foreignKey:DessertID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string { return "reviews" }

// ImageName is the stored file name of the review photo, e.g. "5.png".
// Empty when the review has no picture.
func (r *Review) ImageName() string {
	if !r.HasPic || r.PicExtension == nil {
		return ""
	}
	return ImageFileName(r.ID, *r.PicExtension)
}
