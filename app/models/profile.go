package models

import "time"

// Profile carries the business/person metadata owned by a user. One row per
// user at most.
type Profile struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	BusinessName        string     `gorm:"type:varchar(200)" json:"business_name"`
	BusinessDescription string     `gorm:"type:text" json:"business_description"`
	YearsOfExperience   int        `gorm:"default:0" json:"years_of_experience"`
	Qualifications      StringList `gorm:"type:text" json:"qualifications"`
	Certifications      StringList `gorm:"type:text" json:"certifications"`
	ServiceAreas        StringList `gorm:"type:text" json:"service_areas"`
	ServiceRadius       int        `gorm:"default:0" json:"service_radius"`
	AverageRating       float64    `gorm:"default:0" json:"average_rating"`
	TotalRatings        int        `gorm:"default:0" json:"total_ratings"`
	ResponseRate        float64    `gorm:"default:0" json:"response_rate"`
	ResponseTime        int        `gorm:"default:0" json:"response_time"`
	Website             string     `gorm:"type:varchar(255)" json:"website"`
	Instagram           string     `gorm:"type:varchar(100)" json:"instagram"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
