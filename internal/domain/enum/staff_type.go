package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// StaffType distinguishes scheduled clinical staff
type StaffType int

const (
	StaffTypeDoctor StaffType = 0
	StaffTypeNurse  StaffType = 1
)

func (t StaffType) String() string {
	return [...]string{"Doctor", "Nurse"}[t]
}

func (t StaffType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *StaffType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = StaffType(i)
		return nil
	}
	switch str {
	case "Doctor", "doctor":
		*t = StaffTypeDoctor
	case "Nurse", "nurse":
		*t = StaffTypeNurse
	}
	return nil
}

func (t StaffType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *StaffType) Scan(value interface{}) error {
	if value == nil {
		*t = StaffTypeDoctor
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = StaffType(v)
	case int:
		*t = StaffType(v)
	}
	return nil
}
