package consts

// Report enumerations are exposed verbatim in API payloads.
const (
	ReportStatusPending    = "Pending"
	ReportStatusInProgress = "In Progress"
	ReportStatusResolved   = "Resolved"
	ReportStatusClosed     = "Closed"

	ReportPriorityLow      = "Low"
	ReportPriorityMedium   = "Medium"
	ReportPriorityHigh     = "High"
	ReportPriorityCritical = "Critical"

	AnimalConditionCritical = "Critical"
	AnimalConditionInjured  = "Injured"
	AnimalConditionSick     = "Sick"
	AnimalConditionHealthy  = "Healthy"
	AnimalConditionUnknown  = "Unknown"
)

const MaxReportPhotos = 5

var (
	ReportStatuses   = []string{ReportStatusPending, ReportStatusInProgress, ReportStatusResolved, ReportStatusClosed}
	ReportPriorities = []string{ReportPriorityLow, ReportPriorityMedium, ReportPriorityHigh, ReportPriorityCritical}
	AnimalConditions = []string{AnimalConditionCritical, AnimalConditionInjured, AnimalConditionSick, AnimalConditionHealthy, AnimalConditionUnknown}
)
