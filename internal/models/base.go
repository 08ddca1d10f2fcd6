// internal/models/base.go
package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/bytedance/sonic"
)

// Attributes is a free-form JSON object column, used for player details such
// as batting hand or bowling style.
type Attributes map[string]interface{}

func (a Attributes) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := sonic.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan unmarshals a JSON column into the map. Drivers hand back either bytes
// or a string depending on the column type.
func (a *Attributes) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*a = Attributes{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("Attributes: expected []byte or string, got %T", src)
	}
	if len(b) == 0 {
		*a = Attributes{}
		return nil
	}
	out := Attributes{}
	if err := sonic.Unmarshal(b, &out); err != nil {
		return err
	}
	*a = out
	return nil
}
