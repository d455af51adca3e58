package models

// Food is a stored food item. ID is assigned by the database and never reused.
type Food struct {
	ID             int64  `json:"id" db:"id" example:"1"`
	Name           string `json:"name" db:"name" example:"Milk"`
	BestBeforeDate Date   `json:"bestBeforeDate" db:"best_before_date" swaggertype:"string" format:"date" example:"2024-06-01"`
}

// NewFood is the body of a create request. Both fields are required; the date is a
// pointer so that an absent field fails validation instead of decoding to the zero Date.
type NewFood struct {
	Name           string `json:"name" binding:"required" example:"Milk"`
	BestBeforeDate *Date  `json:"bestBeforeDate" binding:"required" swaggertype:"string" format:"date" example:"2024-06-01"`
}

// FoodList is the envelope returned by the list endpoint
type FoodList struct {
	Foods []Food `json:"foods"`
}
