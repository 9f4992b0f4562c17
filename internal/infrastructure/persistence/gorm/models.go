// Package gorm provides GORM model definitions and repositories.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Version     int64     `gorm:"default:1"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	AuthorID    uuid.UUID `gorm:"type:char(36);not null;index"`

	Ingredients JSONField   `gorm:"type:json"`
	Steps       StringSlice `gorm:"type:json"`
	Glass       string      `gorm:"type:varchar(50)"`
	Method      string      `gorm:"type:varchar(50)"`
	Garnish     string      `gorm:"type:varchar(255)"`
	Tags        StringSlice `gorm:"type:json"`

	Status      string `gorm:"type:varchar(20);index;default:'draft'"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name
func (RecipeModel) TableName() string {
	return "recipes"
}

// BarItemModel represents the GORM model for bar inventory items
type BarItemModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(50);index"`
	Volume    float64   `gorm:"default:0"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (BarItemModel) TableName() string {
	return "bar_items"
}

// ingredientRecord is the JSON shape of one persisted ingredient line
type ingredientRecord struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Unit     string    `json:"unit"`
	Optional bool      `json:"optional,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

// JSONField stores arbitrary JSON in a single column
type JSONField []byte

// Value implements driver.Valuer
func (j JSONField) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "[]", nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner
func (j *JSONField) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONField: %T", value)
	}
	return nil
}

// StringSlice stores a string slice as JSON
type StringSlice []string

// Value implements driver.Valuer
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (s *StringSlice) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringSlice: %T", value)
	}
	if len(data) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(s))
}
