package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DietType is the dietary classification of an item or variant.
type DietType string

const (
	DietVeg    DietType = "Veg"
	DietNonVeg DietType = "Non-Veg"
	DietEgg    DietType = "Egg"
	DietNone   DietType = "None"
)

// DietTypes lists every accepted diet type in display order.
var DietTypes = []DietType{DietVeg, DietNonVeg, DietEgg, DietNone}

// IsValidDietType reports whether t is one of the enumerated diet types.
func IsValidDietType(t DietType) bool {
	for _, d := range DietTypes {
		if d == t {
			return true
		}
	}
	return false
}

type Price struct {
	Standard        float64 `bson:"standard" json:"standard"`
	HappyHour       float64 `bson:"happyHour" json:"happyHour"`
	HappyHourActive bool    `bson:"isHappyHourActive" json:"isHappyHourActive"`
}

// ZeroPrice is the price an item falls back to when it stops being option-priced.
func ZeroPrice() *Price {
	return &Price{Standard: 0, HappyHour: 0, HappyHourActive: false}
}

type Variant struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price Price              `bson:"price" json:"price"`
	Type  DietType           `bson:"type" json:"type"`
}

type OptionGroup struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Variants    []Variant          `bson:"variants" json:"variants"`
}

// Item is either flat-priced (Price set, no OptionGroups) or option-priced
// (HasOptions, at least one OptionGroup, Price nil).
type Item struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Type         DietType           `bson:"type" json:"type"`
	HasOptions   bool               `bson:"hasOptions" json:"hasOptions"`
	Price        *Price             `bson:"price,omitempty" json:"price,omitempty"`
	OptionGroups []OptionGroup      `bson:"optionGroups,omitempty" json:"optionGroups,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Subcategory struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Items []Item             `bson:"items" json:"items"`
}

// Category is the root of a menu document and the unit of persistence.
type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Image         string             `bson:"image" json:"image"`
	Subcategories []Subcategory      `bson:"subcategories" json:"subcategories"`
}
