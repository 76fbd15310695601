package analyzer

// OnceBeforeDefault contains the rules to be applied just once before the
// DefaultRules.
var OnceBeforeDefault = []Rule{
	{"resolve_columns", resolveColumns},
}

// DefaultRules to apply when analyzing expressions.
var DefaultRules = []Rule{
	{"coerce_in_literals", coerceInLiterals},
}

// OnceAfterDefault contains the rules to be applied just once after the
// DefaultRules.
var OnceAfterDefault = []Rule{
	{"apply_switch_in", applySwitchIn},
}

// DefaultValidationRules to apply while analyzing expressions.
var DefaultValidationRules = []Rule{
	{"validate_resolved", validateIsResolved},
}
