package sovereigntax

import "fmt"

// AccountingMethod defines the lot selection order when matching a sale.
type AccountingMethod int

const (
	// FIFO (First-In, First-Out) consumes the oldest lots first.
	FIFO AccountingMethod = iota
	// LIFO (Last-In, First-Out) consumes the most recent lots first.
	LIFO
	// HIFO (Highest-In, First-Out) consumes the most expensive lots first,
	// minimizing the taxable gain of the sale.
	HIFO
	// SpecificID consumes exactly the lots designated by the caller, in the
	// order given. Without selections it degrades to FIFO with a warning.
	SpecificID
)

func (m AccountingMethod) String() string {
	switch m {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	case HIFO:
		return "hifo"
	case SpecificID:
		return "specific-id"
	default:
		return "unknown"
	}
}

// ParseAccountingMethod parses a string into an AccountingMethod.
func ParseAccountingMethod(s string) (AccountingMethod, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "hifo":
		return HIFO, nil
	case "specific-id":
		return SpecificID, nil
	default:
		return 0, fmt.Errorf("unknown accounting method: %q", s)
	}
}

// AccountingMethods lists the automatic methods, the ones that can run
// without caller-supplied lot selections. Used by side-by-side comparisons.
func AccountingMethods() []AccountingMethod {
	return []AccountingMethod{FIFO, LIFO, HIFO}
}
