package entities

// ProductType discriminates what kind of print job is being priced.

type ProductType string

const (
	ProductTypePlain   ProductType = "plain"
	ProductTypeBooklet ProductType = "booklet"
	ProductTypeNotepad ProductType = "notepad"
)

// Sides is single- or double-sided printing.

type Sides string

const (
	SidesSingle Sides = "Single"
	SidesDouble Sides = "Double"
)

// BindingType is the booklet binding style.

type BindingType string

const (
	BindingSaddleStitch BindingType = "saddle_stitch"
	BindingPerfectBound BindingType = "perfect_bound"
	BindingCoil         BindingType = "coil"
	BindingWireO        BindingType = "wire_o"
	BindingStaple       BindingType = "staple"
)

// CoverPrinting is the booklet cover ink configuration, front/back.

type CoverPrinting string

const (
	CoverPrinting44 CoverPrinting = "4/4"
	CoverPrinting40 CoverPrinting = "4/0"
	CoverPrinting41 CoverPrinting = "4/1"
	CoverPrinting11 CoverPrinting = "1/1"
)

// PaperSelection identifies a paper stock by its catalog attributes rather
// than by id, so the pricing engine can relax the match progressively.

type PaperSelection struct {
	Size     string `json:"size"`
	Category string `json:"category"`
	Weight   string `json:"weight"`
	Color    string `json:"color,omitempty"`
}

// JobConfig describes one print job to price. ProductType selects which of
// the product-specific fields apply; the layout mirrors the quote item rows
// the shop stores, with product-specific fields left zero when unused.

type JobConfig struct {
	ProductType ProductType    `json:"product_type"`
	Paper       PaperSelection `json:"paper"`
	ColorType   ColorType      `json:"color_type"`
	Quantity    int            `json:"quantity"`

	// Plain jobs.
	Sides     Sides    `json:"sides,omitempty"`
	NUp       int      `json:"n_up,omitempty"`
	Finishing []string `json:"finishing,omitempty"`

	// Booklets. Paper above is the inside stock; CoverPaper applies only
	// when SelfCover is false.
	PageCount     int            `json:"page_count,omitempty"`
	SelfCover     bool           `json:"self_cover,omitempty"`
	CoverPaper    PaperSelection `json:"cover_paper,omitempty"`
	Binding       BindingType    `json:"binding,omitempty"`
	CoverPrinting CoverPrinting  `json:"cover_printing,omitempty"`

	// Notepads.
	SheetsPerPad int  `json:"sheets_per_pad,omitempty"`
	Parts        int  `json:"parts,omitempty"`
	BackingBoard bool `json:"backing_board,omitempty"`
}

// PriceBreakdown is the priced result of one JobConfig. All component costs
// are per finished unit; TotalPrice is UnitPrice times Quantity rounded to
// cents. DefaultsUsed names the nominal rates substituted when catalog
// lookups missed (empty when everything matched).

type PriceBreakdown struct {
	PaperCost     float64  `json:"paper_cost"`
	PrintingCost  float64  `json:"printing_cost"`
	FinishingCost float64  `json:"finishing_cost"`
	BindingCost   float64  `json:"binding_cost"`
	UnitPrice     float64  `json:"unit_price"`
	Quantity      int      `json:"quantity"`
	TotalPrice    float64  `json:"total_price"`
	DefaultsUsed  []string `json:"defaults_used,omitempty"`
}
