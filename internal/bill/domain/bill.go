package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

const Name = "bill"

var ErrUnknownFilter = errors.New("unknown bill filter")

const (
	TypeElectricity  Type = "ELECTRICITY"
	TypeColdWater    Type = "COLD_WATER"
	TypeHotWater     Type = "HOT_WATER"
	TypeGas          Type = "GAS"
	TypeInternet     Type = "INTERNET"
	TypeHouseService Type = "HOUSE_SERVICE"
)

const (
	StatusOpen   Status = "OPEN"
	StatusPaid   Status = "PAID"
	StatusFailed Status = "FAILED"
)

const (
	PriorityLow     Priority = "LOW"
	PriorityMedium  Priority = "MEDIUM"
	PriorityHigh    Priority = "HIGH"
	PriorityOverdue Priority = "OVERDUE"
)

const (
	ProviderPayPal = "PAYPAL"
	ProviderStripe = "STRIPE"
	ProviderBLIK   = "BLIK"
)

const (
	FilterAll     Filter = "all"
	FilterOpen    Filter = "open"
	FilterPaid    Filter = "paid"
	FilterOverdue Filter = "overdue"
)

type (
	ID       int
	Type     string
	Status   string
	Priority string
	Filter   string

	Bill struct {
		ID              ID
		Name            string
		Amount          float64
		DueDate         string
		IssueDate       string
		Type            Type
		Status          Status
		Priority        Priority
		CompanyName     string
		UserName        string
		TotalPaid       float64
		RemainingAmount float64
	}

	Summary struct {
		Total       int
		Open        int
		Paid        int
		Outstanding float64
	}
)

func Types() []Type {
	return []Type{TypeElectricity, TypeColdWater, TypeHotWater, TypeGas, TypeInternet, TypeHouseService}
}

func Providers() []string {
	return []string{ProviderPayPal, ProviderStripe, ProviderBLIK}
}

func Filters() []Filter {
	return []Filter{FilterAll, FilterOpen, FilterPaid, FilterOverdue}
}

// Label turns ELECTRICITY into "Electricity" and HOUSE_SERVICE into "House Service".
func (t Type) Label() string {
	return label(string(t))
}

func (t Type) Valid() bool {
	for _, known := range Types() {
		if t == known {
			return true
		}
	}
	return false
}

func (s Status) Label() string {
	return label(string(s))
}

func (p Priority) Label() string {
	return label(string(p))
}

func (f Filter) Label() string {
	if f == FilterAll {
		return "All Bills"
	}
	return label(string(f))
}

func ParseFilter(value string) (Filter, error) {
	if value == "" {
		return FilterAll, nil
	}
	for _, f := range Filters() {
		if string(f) == value {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFilter, value)
}

func (f Filter) Match(b Bill) bool {
	switch f {
	case FilterOpen:
		return b.Status == StatusOpen
	case FilterPaid:
		return b.Status == StatusPaid
	case FilterOverdue:
		return b.Priority == PriorityOverdue
	default:
		return true
	}
}

func (f Filter) Apply(bills []Bill) []Bill {
	result := make([]Bill, 0, len(bills))
	for _, b := range bills {
		if f.Match(b) {
			result = append(result, b)
		}
	}
	return result
}

// Payable reports whether the bill can still be paid. A payment always covers the full bill amount.
func (b Bill) Payable() bool {
	return b.Status != StatusPaid
}

// Summarize counts over the unfiltered list. Outstanding sums what is left to pay on open bills.
func Summarize(bills []Bill) Summary {
	summary := Summary{Total: len(bills)}
	for _, b := range bills {
		switch b.Status {
		case StatusOpen:
			summary.Open++
			summary.Outstanding += b.RemainingAmount
		case StatusPaid:
			summary.Paid++
		}
	}
	return summary
}

func label(value string) string {
	words := strings.Fields(strcase.ToDelimited(value, ' '))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
