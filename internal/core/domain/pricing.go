package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PriceTable maps a seat price tier to its amount.
type PriceTable map[int]decimal.Decimal

func DefaultPriceTable() PriceTable {
	return PriceTable{
		1: decimal.NewFromInt(150),
		2: decimal.NewFromInt(100),
		3: decimal.NewFromInt(75),
	}
}

// ParsePriceTable reads a "tier:amount" list such as "1:150,2:100,3:75".
func ParsePriceTable(s string) (PriceTable, error) {
	table := PriceTable{}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tierStr, amountStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid price tier entry %q", part)
		}

		tier, err := strconv.Atoi(strings.TrimSpace(tierStr))
		if err != nil || tier < 1 {
			return nil, fmt.Errorf("invalid price tier %q", tierStr)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
		if err != nil {
			return nil, fmt.Errorf("invalid amount for tier %d: %w", tier, err)
		}

		table[tier] = amount
	}

	return table, nil
}

// Price returns zero for tiers missing from the table.
func (p PriceTable) Price(tier int) decimal.Decimal {
	if amount, ok := p[tier]; ok {
		return amount
	}

	return decimal.Zero
}

func (p PriceTable) Subtotal(seats []SelectedSeatInfo) decimal.Decimal {
	return lo.Reduce(seats, func(sum decimal.Decimal, s SelectedSeatInfo, _ int) decimal.Decimal {
		return sum.Add(p.Price(s.PriceTier))
	}, decimal.Zero)
}
