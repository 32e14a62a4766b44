package models

import "encoding/json"

// Optional records whether a JSON field was present in a request body.
// A present null decodes as Present with the zero Value.
type Optional[T any] struct {
	Present bool
	Value   T
}

// Some builds a present Optional, mostly for tests and internal callers.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// PriceInput keeps Standard as a pointer so a missing value is detectable.
type PriceInput struct {
	Standard        *float64 `json:"standard"`
	HappyHour       *float64 `json:"happyHour,omitempty"`
	HappyHourActive *bool    `json:"isHappyHourActive,omitempty"`
}

// VariantInput and OptionGroupInput accept an optional existing id; without
// one a new id is assigned.
type VariantInput struct {
	ID    string      `json:"id,omitempty"`
	Name  string      `json:"name"`
	Price *PriceInput `json:"price"`
	Type  DietType    `json:"type,omitempty"`
}

type OptionGroupInput struct {
	ID          string         `json:"id,omitempty"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Variants    []VariantInput `json:"variants"`
}

// ItemInput is the body of an item create request.
type ItemInput struct {
	Name         string             `json:"name"`
	Image        string             `json:"image,omitempty"`
	Description  string             `json:"description,omitempty"`
	Type         DietType           `json:"type,omitempty"`
	HasOptions   bool               `json:"hasOptions"`
	Price        *PriceInput        `json:"price,omitempty"`
	OptionGroups []OptionGroupInput `json:"optionGroups,omitempty"`
}

// ItemUpdate is a partial item update; only present fields are applied.
type ItemUpdate struct {
	Name         Optional[string]             `json:"name"`
	Image        Optional[string]             `json:"image"`
	Description  Optional[string]             `json:"description"`
	Type         Optional[DietType]           `json:"type"`
	HasOptions   Optional[bool]               `json:"hasOptions"`
	Price        Optional[*PriceInput]        `json:"price"`
	OptionGroups Optional[[]OptionGroupInput] `json:"optionGroups"`
}

type CategoryInput struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type SubcategoryInput struct {
	Name  string      `json:"name"`
	Items []ItemInput `json:"items,omitempty"`
}
