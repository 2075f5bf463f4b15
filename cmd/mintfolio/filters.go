package main

import (
	"strings"

	"mintfolio/pkg/export"
	"mintfolio/pkg/models"
)

type filters struct {
	minAmount   float64
	maxAmount   float64
	description string
}

func (f *filters) toFilterFunc() export.FilterFunc {
	return func(t models.Transaction) bool {
		if f.minAmount != 0 && t.Amount < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && t.Amount > f.maxAmount {
			return false
		}
		if f.description != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.description)) {
			return false
		}
		return true
	}
}
