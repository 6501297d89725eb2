package model

// PnlMonthly is one profit-and-loss column: (year, month, dataType) where
// dataType is "actual" or "budget". Category fields are pointers so a sync run
// that only carries some categories never zeroes the others.
type PnlMonthly struct {
	DTO
	Year     int    `gorm:"not null;uniqueIndex:idx_pnl_month" json:"year"`
	Month    int    `gorm:"not null;uniqueIndex:idx_pnl_month" json:"month"`
	DataType string `gorm:"not null;default:actual;uniqueIndex:idx_pnl_month" json:"dataType"`

	RevenueFood      *float64 `json:"revenueFood"`
	RevenueBeverage  *float64 `json:"revenueBeverage"`
	RevenueOther     *float64 `json:"revenueOther"`
	TotalRevenue     *float64 `json:"totalRevenue"`
	CogsFood         *float64 `json:"cogsFood"`
	CogsBeverage     *float64 `json:"cogsBeverage"`
	TotalCogs        *float64 `json:"totalCogs"`
	GrossProfit      *float64 `json:"grossProfit"`
	Salaries         *float64 `json:"salaries"`
	CasualWages      *float64 `json:"casualWages"`
	EmployeeBenefits *float64 `json:"employeeBenefits"`
	TotalLabor       *float64 `json:"totalLabor"`
	Rent             *float64 `json:"rent"`
	Utilities        *float64 `json:"utilities"`
	Insurance        *float64 `json:"insurance"`
	Depreciation     *float64 `json:"depreciation"`
	TotalFixedCosts  *float64 `json:"totalFixedCosts"`
	Marketing        *float64 `json:"marketing"`
	Maintenance      *float64 `json:"maintenance"`
	OtherOpex        *float64 `json:"otherOpex"`
	TotalOpex        *float64 `json:"totalOpex"`
	Ebit             *float64 `json:"ebit"`
}

func (PnlMonthly) TableName() string { return "pnl_monthly" }

type PnlMonthlies []PnlMonthly

type PnlSyncInput struct {
	SheetId      string `json:"sheetId" validate:"required_without=CsvUrl"`
	SheetName    string `json:"sheetName" validate:"required_without=CsvUrl"`
	CsvUrl       string `json:"csvUrl" validate:"omitempty,url"`
	YearOverride *int   `json:"yearOverride" validate:"omitempty,min=2000,max=2100"`
	DataType     string `json:"dataType" validate:"omitempty,oneof=actual budget"`
}

// PnlSyncResult distinguishes "found structure, nothing matched" from "found
// nothing": monthColumns is reported even when processed is zero.
type PnlSyncResult struct {
	Processed    int          `json:"processed"`
	MonthColumns []string     `json:"monthColumns"`
	Debug        PnlSyncDebug `json:"debug"`
}

type PnlSyncDebug struct {
	MatchedCategories   []string          `json:"matchedCategories"`
	UnmatchedLabels     []string          `json:"unmatchedLabels"`
	SampleValues        map[string]string `json:"sampleValues"`
	SectionChanges      map[string]int    `json:"sectionChanges"`
	YearOverrideApplied bool              `json:"yearOverrideApplied"`
}
