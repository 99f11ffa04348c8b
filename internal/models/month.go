package models

import (
	"fmt"
	"sort"
	"strings"
)

// Month is a month label of the count calendar. Labels are the Portuguese
// three-letter abbreviations used to name the monthly extracts.
type Month string

const (
	Jan Month = "jan"
	Fev Month = "fev"
	Mar Month = "mar"
	Abr Month = "abr"
	Mai Month = "mai"
	Jun Month = "jun"
	Jul Month = "jul"
	Ago Month = "ago"
	Set Month = "set"
	Out Month = "out"
	Nov Month = "nov"
	Dez Month = "dez"
)

// Months is the full ordered month domain.
var Months = []Month{Jan, Fev, Mar, Abr, Mai, Jun, Jul, Ago, Set, Out, Nov, Dez}

var monthOrdinals = func() map[Month]int {
	m := make(map[Month]int, len(Months))
	for i, month := range Months {
		m[month] = i + 1
	}
	return m
}()

// ParseMonth normalizes s (case, surrounding spaces) and checks it belongs to the domain.
func ParseMonth(s string) (Month, error) {
	m := Month(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown month label %q", s)
	}
	return m, nil
}

// Ordinal returns the calendar position of m, 1 for jan through 12 for dez, 0 when unknown.
func (m Month) Ordinal() int {
	return monthOrdinals[m]
}

// Valid reports whether m is one of the twelve month labels.
func (m Month) Valid() bool {
	return m.Ordinal() > 0
}

func (m Month) String() string {
	return string(m)
}

// MonthLess orders months by calendar position. Labels outside the domain sort last,
// lexically among themselves.
func MonthLess(a, b Month) bool {
	oa, ob := a.Ordinal(), b.Ordinal()
	switch {
	case oa == 0 && ob == 0:
		return a < b
	case oa == 0:
		return false
	case ob == 0:
		return true
	default:
		return oa < ob
	}
}

// SortMonths sorts ms in place in calendar order.
func SortMonths(ms []Month) {
	sort.SliceStable(ms, func(i, j int) bool { return MonthLess(ms[i], ms[j]) })
}
