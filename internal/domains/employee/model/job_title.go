package model

import "bestevents/shared/enum"

type JobTitle string

const (
	JobTitleSalesManager     JobTitle = "sales_manager"
	JobTitleSalesperson      JobTitle = "salesperson"
	JobTitleMarketingManager JobTitle = "marketing_manager"
	JobTitleMarketer         JobTitle = "marketer"
	JobTitleAccountant       JobTitle = "accountant"
	JobTitleDesigner         JobTitle = "designer"
	JobTitleHandyman         JobTitle = "handyman"
)

var JobTitles = enum.NewTable(
	enum.Member[JobTitle]{Code: JobTitleSalesManager, Label: "Sales Manager"},
	enum.Member[JobTitle]{Code: JobTitleSalesperson, Label: "Salesperson"},
	enum.Member[JobTitle]{Code: JobTitleMarketingManager, Label: "Marketing Manager"},
	enum.Member[JobTitle]{Code: JobTitleMarketer, Label: "Marketer"},
	enum.Member[JobTitle]{Code: JobTitleAccountant, Label: "Accountant"},
	enum.Member[JobTitle]{Code: JobTitleDesigner, Label: "Designer"},
	enum.Member[JobTitle]{Code: JobTitleHandyman, Label: "Handyman"},
)

func (j JobTitle) IsValid() bool {
	return JobTitles.Contains(j)
}

func (j JobTitle) Label() string {
	return JobTitles.Label(j)
}

// IsManagerial reports whether holders of the title may have subordinates.
func (j JobTitle) IsManagerial() bool {
	return j == JobTitleSalesManager || j == JobTitleMarketingManager
}

// UnmarshalText accepts a code or a display label. Unknown values are kept as given
// and rejected later by validation.
func (j *JobTitle) UnmarshalText(text []byte) error {
	*j, _ = JobTitles.Parse(string(text))

	return nil
}
