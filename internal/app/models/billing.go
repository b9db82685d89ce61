package models

// FeeStructure is the expected amount for a fee type. A nil ClassID applies to
// every class. It never produces or changes Fee rows.
type FeeStructure struct {
	ID      int64   `json:"id"`
	ClassID *int64  `json:"class_id"`
	FeeType string  `json:"fee_type"`
	Amount  float64 `json:"amount"`

	ClassName *string `json:"class_name"`
}

// Fee is a charge owed by one student. Status is free text such as "Paid" or "Due".
type Fee struct {
	ID        int64   `json:"id"`
	StudentID int64   `json:"student_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	DueDate   *string `json:"due_date"`
	FeeType   *string `json:"fee_type"`
}
