package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRecord_Recalculate(t *testing.T) {
	cases := []struct {
		name       string
		basic      string
		allowances string
		deductions string
		want       string
	}{
		{"defaults", "5000", "500", "200", "5300"},
		{"zero amounts", "0", "0", "0", "0"},
		{"deductions exceed income", "100", "0", "500", "-400"},
		{"fractional amounts", "4999.99", "0.01", "0.50", "4999.50"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := Record{
				BasicSalary: decimal.RequireFromString(c.basic),
				Allowances:  decimal.RequireFromString(c.allowances),
				Deductions:  decimal.RequireFromString(c.deductions),
			}
			rec.Recalculate()

			assert.True(t, rec.NetSalary.Equal(decimal.RequireFromString(c.want)),
				"net salary = %s, want %s", rec.NetSalary, c.want)
		})
	}
}

func TestRecord_RecalculateOverwritesStaleNet(t *testing.T) {
	rec := Record{
		BasicSalary: decimal.NewFromInt(5000),
		Allowances:  decimal.NewFromInt(500),
		Deductions:  decimal.NewFromInt(200),
		NetSalary:   decimal.NewFromInt(99999),
	}
	rec.Recalculate()

	assert.True(t, rec.NetSalary.Equal(decimal.NewFromInt(5300)))
}
