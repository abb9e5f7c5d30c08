package control

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var fold = cases.Fold()

// foldedKeyword NFC-normalizes and case-folds tok, so a keyword typed
// with a combining-form Unicode variant of a letter still compares
// equal to its precomposed form before the case-insensitive match.
func foldedKeyword(tok string) string {
	return fold.String(norm.NFC.String(tok))
}

// Keyword names the case-insensitive tokens that open and close the five
// control constructs (spec §4.7/§6: RPL keywords are matched without
// regard to case, e.g. "if"/"IF"/"If" are the same token).
type Keyword int

const (
	KwIf Keyword = iota
	KwThen
	KwElse
	KwEnd
	KwDo
	KwUntil
	KwWhile
	KwRepeat
	KwStart
	KwFor
	KwNext
	KwStep
)

var keywordText = map[Keyword]string{
	KwIf:     "IF",
	KwThen:   "THEN",
	KwElse:   "ELSE",
	KwEnd:    "END",
	KwDo:     "DO",
	KwUntil:  "UNTIL",
	KwWhile:  "WHILE",
	KwRepeat: "REPEAT",
	KwStart:  "START",
	KwFor:    "FOR",
	KwNext:   "NEXT",
	KwStep:   "STEP",
}

// MatchKeyword reports whether tok is the given keyword, ignoring case.
func MatchKeyword(tok string, kw Keyword) bool {
	return foldedKeyword(tok) == foldedKeyword(keywordText[kw])
}

// LookupKeyword returns the Keyword named by tok, if any. Used by the
// parser's dispatch table to recognize a control construct's opening
// token without hardcoding string literals in two packages.
func LookupKeyword(tok string) (Keyword, bool) {
	folded := foldedKeyword(tok)
	for kw, text := range keywordText {
		if foldedKeyword(text) == folded {
			return kw, true
		}
	}
	return 0, false
}
