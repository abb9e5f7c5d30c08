package object

// CommandNames is the canonical set of built-in command tokens shared
// between the parser (to classify a bare word as a Command rather than
// a Symbol) and the evaluator (which owns the actual handlers). Kept
// here, rather than in eval, so the parser never needs to import eval.
var CommandNames = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "NEG": true,
	"DUP": true, "DUP2": true, "DROP": true, "SWAP": true, "OVER": true, "ROT": true,
	"DEPTH": true, "CLEAR": true,
	"==": true, "<>": true, "<": true, ">": true, "<=": true, ">=": true,
	"AND": true, "OR": true, "NOT": true,
	"STO": true, "RCL": true, "PURGE": true,
	"EVAL": true, "EXEC": true,
	"PRECISION": true, "STD": true, "FIX": true, "SCI": true, "ENG": true, "SIG": true,
}

// IsCommandName reports whether name is one of the built-in commands.
func IsCommandName(name string) bool { return CommandNames[name] }
