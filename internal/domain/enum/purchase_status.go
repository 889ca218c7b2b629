package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PurchaseStatus represents the status of a purchase order.
// The lifecycle is strictly forward-moving: Draft -> Submitted -> Approved -> Received.
// Cancelled is reachable from any non-terminal state.
type PurchaseStatus int

const (
	PurchaseStatusDraft     PurchaseStatus = 0
	PurchaseStatusSubmitted PurchaseStatus = 1
	PurchaseStatusApproved  PurchaseStatus = 2
	PurchaseStatusReceived  PurchaseStatus = 3
	PurchaseStatusCancelled PurchaseStatus = 4
)

func (s PurchaseStatus) String() string {
	switch s {
	case PurchaseStatusDraft:
		return "Draft"
	case PurchaseStatusSubmitted:
		return "Submitted"
	case PurchaseStatusApproved:
		return "Approved"
	case PurchaseStatusReceived:
		return "Received"
	case PurchaseStatusCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible
func (s PurchaseStatus) IsTerminal() bool {
	return s == PurchaseStatusReceived || s == PurchaseStatusCancelled
}

// CanTransitionTo reports whether a transition from s to target is allowed.
// No reverse transitions exist.
func (s PurchaseStatus) CanTransitionTo(target PurchaseStatus) bool {
	if target == PurchaseStatusCancelled {
		return !s.IsTerminal()
	}
	switch s {
	case PurchaseStatusDraft:
		return target == PurchaseStatusSubmitted
	case PurchaseStatusSubmitted:
		return target == PurchaseStatusApproved
	case PurchaseStatusApproved:
		return target == PurchaseStatusReceived
	}
	return false
}

func (s PurchaseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PurchaseStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PurchaseStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = PurchaseStatusDraft
	case "Submitted":
		*s = PurchaseStatusSubmitted
	case "Approved":
		*s = PurchaseStatusApproved
	case "Received":
		*s = PurchaseStatusReceived
	case "Cancelled":
		*s = PurchaseStatusCancelled
	}
	return nil
}

func (s PurchaseStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PurchaseStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PurchaseStatus(v)
	case int:
		*s = PurchaseStatus(v)
	}
	return nil
}
