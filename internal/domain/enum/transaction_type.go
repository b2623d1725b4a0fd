package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionType represents the direction of a stock movement
type TransactionType int

const (
	TransactionTypeStockIn  TransactionType = 0
	TransactionTypeStockOut TransactionType = 1
)

func (t TransactionType) String() string {
	names := [...]string{"Stock In", "Stock Out"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Stock In"
	}
	return names[t]
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TransactionType(i)
		return nil
	}
	switch str {
	case "Stock In":
		*t = TransactionTypeStockIn
	case "Stock Out":
		*t = TransactionTypeStockOut
	}
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeStockIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TransactionType(v)
	case int:
		*t = TransactionType(v)
	}
	return nil
}
