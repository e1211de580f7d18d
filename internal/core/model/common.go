package model

// Activity type vocabulary observed in the feed. Unrecognized values are
// passed through unchanged for forward compatibility.
const (
	ActivityRunning     = "Running"
	ActivityIdle        = "Idle"
	ActivitySetup       = "Setup"
	ActivityMaintenance = "Maintenance"
	ActivityBreakdown   = "Breakdown"
	ActivityOff         = "Off"
)

// Canonical column keys after header normalization.
const (
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldMachineId    = "machine_id"
	FieldActivityType = "activity_type"
	FieldRemark       = "remark"
	FieldSubmittedBy  = "submitted_by"
	FieldTimestamp    = "timestamp"
)

// RecognizedFields lists every column the pipeline consumes. Anything else in
// the feed header is ignored.
var RecognizedFields = []string{
	FieldStartTime,
	FieldEndTime,
	FieldMachineId,
	FieldActivityType,
	FieldRemark,
	FieldSubmittedBy,
	FieldTimestamp,
}

// BillableVocabulary is the set of activity types a billable filter may be
// configured from.
var BillableVocabulary = []string{
	ActivityRunning,
	ActivitySetup,
	ActivityMaintenance,
	ActivityIdle,
}
