package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ClaimStatus represents the status of an insurance claim.
// Forward-only: Submitted -> Approved -> Paid, Rejected terminal from Submitted.
type ClaimStatus int

const (
	ClaimStatusSubmitted ClaimStatus = 0
	ClaimStatusApproved  ClaimStatus = 1
	ClaimStatusRejected  ClaimStatus = 2
	ClaimStatusPaid      ClaimStatus = 3
)

func (s ClaimStatus) String() string {
	return [...]string{"Submitted", "Approved", "Rejected", "Paid"}[s]
}

// CanTransitionTo reports whether a transition from s to target is allowed
func (s ClaimStatus) CanTransitionTo(target ClaimStatus) bool {
	switch s {
	case ClaimStatusSubmitted:
		return target == ClaimStatusApproved || target == ClaimStatusRejected
	case ClaimStatusApproved:
		return target == ClaimStatusPaid
	}
	return false
}

func (s ClaimStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ClaimStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ClaimStatus(i)
		return nil
	}
	switch str {
	case "Submitted":
		*s = ClaimStatusSubmitted
	case "Approved":
		*s = ClaimStatusApproved
	case "Rejected":
		*s = ClaimStatusRejected
	case "Paid":
		*s = ClaimStatusPaid
	}
	return nil
}

func (s ClaimStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ClaimStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ClaimStatusSubmitted
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ClaimStatus(v)
	case int:
		*s = ClaimStatus(v)
	}
	return nil
}
