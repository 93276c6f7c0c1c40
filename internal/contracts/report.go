package contracts

// ReportQuery selects the export format and an optional inclusive date
// window. Omitted bounds leave that side of the window open.
type ReportQuery struct {
	Format    string `form:"format" binding:"omitempty,oneof=csv pdf"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}
