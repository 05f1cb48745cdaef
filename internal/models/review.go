package models

import "time"

// ProductReview is customer-authored; reply and report are independent
// optional seller actions on top of it.
type ProductReview struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	ProductID    uint       `gorm:"not null;index" json:"product_id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	Rating       int        `gorm:"not null" json:"rating"`
	Comment      string     `gorm:"type:text" json:"comment"`
	SellerReply  string     `gorm:"type:text" json:"seller_reply,omitempty"`
	RepliedAt    *time.Time `json:"replied_at,omitempty"`
	IsReported   bool       `gorm:"default:false;index" json:"is_reported"`
	ReportReason string     `gorm:"type:text" json:"report_reason,omitempty"`
	ReportedAt   *time.Time `json:"reported_at,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Product      *Product                   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User         *User                      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Translations []ProductReviewTranslation `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"translations,omitempty"`
}

// TableName sets the table name.
func (ProductReview) TableName() string {
	return "product_reviews"
}

// TranslationFor returns the translation row for locale, or nil.
func (r *ProductReview) TranslationFor(locale string) *ProductReviewTranslation {
	for i := range r.Translations {
		if r.Translations[i].Locale == locale {
			return &r.Translations[i]
		}
	}
	return nil
}

// LocalizedComment resolves the comment for locale, falling back to the
// raw stored comment.
func (r *ProductReview) LocalizedComment(locale string) string {
	if tr := r.TranslationFor(locale); tr != nil && tr.Comment != "" {
		return tr.Comment
	}
	return r.Comment
}

// ProductReviewTranslation localizes a review comment per locale.
type ProductReviewTranslation struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	ReviewID uint   `gorm:"column:product_review_id;not null;index;uniqueIndex:idx_review_locale" json:"product_review_id"`
	Locale   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_review_locale" json:"locale"`
	Comment  string `gorm:"type:text" json:"comment"`
}

// TableName sets the table name.
func (ProductReviewTranslation) TableName() string {
	return "product_review_translations"
}
