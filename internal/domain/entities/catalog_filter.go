package entities

// Catalog list filters. Empty fields match everything; values compare
// exactly against the stored record.

type PaperOptionFilter struct {
	Size     string
	Weight   string
	Category string
}

type PrintPricingFilter struct {
	PaperSize string
	ColorType ColorType
}

type FinishingOptionFilter struct {
	Category string
}
