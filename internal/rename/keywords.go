package rename

// keywords lists Python's reserved words. A rename candidate
// or generated token that collides with one of these is never emitted /
// never usable, since it would change program meaning rather than merely
// obfuscate it.
var keywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {}, "finally": {},
	"for": {}, "from": {}, "global": {}, "if": {}, "import": {}, "in": {},
	"is": {}, "lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

func isKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}
