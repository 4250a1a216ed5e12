package enum

// JobCardStatus represents the repair workflow status of a job card
type JobCardStatus string

const (
	JobCardStatusReceived   JobCardStatus = "received"
	JobCardStatusDiagnosis  JobCardStatus = "diagnosis"
	JobCardStatusInProgress JobCardStatus = "in-progress"
	JobCardStatusReady      JobCardStatus = "ready"
	JobCardStatusDelivered  JobCardStatus = "delivered"
)

// JobCardStatuses lists the workflow steps in order. Tracking timelines and
// status indices rely on this ordering.
var JobCardStatuses = []JobCardStatus{
	JobCardStatusReceived,
	JobCardStatusDiagnosis,
	JobCardStatusInProgress,
	JobCardStatusReady,
	JobCardStatusDelivered,
}

// JobCardStatusLabels maps statuses to customer-facing labels
var JobCardStatusLabels = map[JobCardStatus]string{
	JobCardStatusReceived:   "Vehicle Received",
	JobCardStatusDiagnosis:  "Diagnosis Complete",
	JobCardStatusInProgress: "Repair In Progress",
	JobCardStatusReady:      "Ready for Delivery",
	JobCardStatusDelivered:  "Delivered",
}

// IsValid reports whether the value is a known job card status
func (s JobCardStatus) IsValid() bool {
	return s.Index() >= 0
}

// Index returns the position of the status in the workflow, or -1 if unknown
func (s JobCardStatus) Index() int {
	for i, status := range JobCardStatuses {
		if status == s {
			return i
		}
	}
	return -1
}

// Label returns the customer-facing label for the status
func (s JobCardStatus) Label() string {
	return JobCardStatusLabels[s]
}
