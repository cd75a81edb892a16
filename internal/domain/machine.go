package domain

import (
	"fmt"
	"math"
)

// Machine describes one piece of shop-floor equipment. RunRate is in
// impressions per hour. LeadHours is dead time before the machine can
// start on a job (die mounting, glue drying on the previous run).
type Machine struct {
	Name      string  `json:"name"`
	RunRate   float64 `json:"run_rate"`
	LeadHours float64 `json:"lead_hours"`
}

// machineCatalog is the shop's equipment list with rated throughput.
var machineCatalog = []*Machine{
	{Name: "SM102-CX FOUR COLOUR", RunRate: 8000},
	{Name: "SM102-P FIVE COLOUR", RunRate: 7500},
	{Name: "SM 52", RunRate: 7000},
	{Name: "GTO 52 SEMI-AUTO-2 COLOUR", RunRate: 4500},
	{Name: "GTO 52 MANUAL-2 COLOUR", RunRate: 4000},
	{Name: "FOLDING UNIT CONTINUOUS FOLD", RunRate: 8000},
	{Name: "MBO-B30E SINGLE FOLD", RunRate: 16000},
	{Name: "POLAR MACHINE FOR BOOKS", RunRate: 2000},
	{Name: "POLAR MACHINE FOR SHEETS", RunRate: 50000},
	{Name: "3 WAY TRIMMER", RunRate: 5000},
	{Name: "PERFECT BINDING", RunRate: 500},
	{Name: "LAMINATION UNIT", RunRate: 2500},
	{Name: "PEDDLER SADDLE STITCH", RunRate: 1000},
	{Name: "DIE CUTTER", RunRate: 3000, LeadHours: 8},
	{Name: "FOLDER GLUER", RunRate: 12000, LeadHours: 2},
}

// MachineCatalog returns the shop's machine list in display order.
func MachineCatalog() []*Machine {
	out := make([]*Machine, len(machineCatalog))
	copy(out, machineCatalog)
	return out
}

// LookupMachine finds a machine by its exact name.
func LookupMachine(name string) (*Machine, error) {
	for _, m := range machineCatalog {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, &ErrUnknownMachine{Message: fmt.Sprintf("unknown machine: %s", name)}
}

// CalculateImpressions converts a finished quantity into press
// impressions: sheets = ceil(qty / ups), padded by the overage buffer.
func CalculateImpressions(finishedQty, upsPerSheet int, oversPct float64) (int, error) {
	if upsPerSheet < 1 {
		return 0, fmt.Errorf("ups_per_sheet must be at least 1, got %d", upsPerSheet)
	}
	if finishedQty < 0 {
		return 0, fmt.Errorf("finished_qty must not be negative, got %d", finishedQty)
	}
	sheets := math.Ceil(float64(finishedQty) / float64(upsPerSheet))
	return int(sheets * (1 + oversPct/100)), nil
}

// ErrUnknownMachine is returned when a production step names a machine
// that is not in the catalog
type ErrUnknownMachine struct {
	Message string
}

func (e *ErrUnknownMachine) Error() string {
	return e.Message
}
