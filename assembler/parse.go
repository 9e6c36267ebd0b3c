package assembler

import "strings"

var pseudoNames = map[string]bool{
	"ORG": true,
	"EQU": true,
	"FCB": true,
	"FDB": true,
	"END": true,
}

// lexLine splits one line of source into label, mnemonic, operand text and
// comment. A label is recognised either by occupying column 1 or by a
// trailing colon, matching the classic 6800 assembler convention.
func lexLine(raw string, lineNumber int) (*SourceLine, *AssembleError) {
	sl := &SourceLine{RawText: raw, LineNumber: lineNumber}

	line := raw
	if idx := strings.IndexByte(line, ';'); idx != -1 {
		sl.Comment = strings.TrimSpace(line[idx+1:])
		line = line[:idx]
	}

	hasLeadingSpace := len(line) > 0 && (line[0] == ' ' || line[0] == '\t')
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		sl.Kind = BodyEmpty
		return sl, nil
	}

	rest := trimmed
	firstWord, remainder := splitFirstField(rest)
	switch {
	case strings.HasSuffix(firstWord, ":"):
		sl.Label = strings.TrimSuffix(firstWord, ":")
		rest = strings.TrimSpace(remainder)
	case !hasLeadingSpace:
		sl.Label = firstWord
		rest = strings.TrimSpace(remainder)
	}

	if rest == "" {
		sl.Kind = BodyEmpty
		return sl, nil
	}

	mnemonic, operand := splitFirstField(rest)
	sl.Mnemonic = strings.ToUpper(mnemonic)
	sl.OperandText = strings.TrimSpace(operand)

	if pseudoNames[sl.Mnemonic] {
		sl.Kind = BodyPseudo
	} else {
		sl.Kind = BodyInstruction
	}
	return sl, nil
}

// splitFirstField splits s into its first whitespace-delimited field and the
// untrimmed remainder.
func splitFirstField(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i == -1 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
