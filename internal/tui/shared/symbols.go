package shared

// ActiveSymbol returns a circled dot symbol with ASCII fallback
func ActiveSymbol() string {
	if unicodeDisabled {
		return "[*]"
	}

	return "◉"
}

// CancelledSymbol returns a cancelled/prohibited symbol with ASCII fallback
func CancelledSymbol() string {
	if unicodeDisabled {
		return "[!]"
	}

	return "⊘"
}

// ErrorSymbol returns a cross with ASCII fallback
func ErrorSymbol() string {
	if unicodeDisabled {
		return "[X]"
	}

	return "✗"
}

// PendingSymbol returns an empty circle with ASCII fallback
func PendingSymbol() string {
	if unicodeDisabled {
		return "[ ]"
	}

	return "○"
}

// SuccessSymbol returns a check mark with ASCII fallback
func SuccessSymbol() string {
	if unicodeDisabled {
		return "[OK]"
	}

	return "✓"
}
