package validation

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Item pairs a decoded list element with the id it carried.
type Item[T any] struct {
	ID    int
	Value T
}

// DecodeList validates every element of a bulk payload as T. Each element
// must also carry a unique numeric id. Paths are reported as field[i].x.
func DecodeList[T any](raw []json.RawMessage, field string) ([]Item[T], error) {
	var all Errors
	out := make([]Item[T], 0, len(raw))
	seen := make(map[int]bool, len(raw))

	for i, r := range raw {
		at := fmt.Sprintf("%s[%d]", field, i)

		var head struct {
			ID *int `json:"id"`
		}
		if err := json.Unmarshal(r, &head); err != nil || head.ID == nil {
			all = append(all, FieldError{Path: at + ".id", Message: "Required"})
			continue
		}
		if seen[*head.ID] {
			all = append(all, FieldError{Path: at + ".id", Message: "Duplicate id"})
			continue
		}
		seen[*head.ID] = true

		var v T
		if err := Decode(r, &v); err != nil {
			var errs Errors
			if errors.As(Prefix(err, at), &errs) {
				all = append(all, errs...)
				continue
			}
			return nil, err
		}
		out = append(out, Item[T]{ID: *head.ID, Value: v})
	}
	if len(all) > 0 {
		return nil, all
	}
	return out, nil
}
