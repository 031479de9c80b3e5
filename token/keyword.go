package token

// keywords is the process-wide keyword table: built once, never mutated,
// matched ASCII-case-insensitively against uppercased lexemes.
var keywords map[string]Keyword

// maxKeywordLen short-circuits identifier lookup: any lexeme longer than
// this cannot possibly be a keyword.
var maxKeywordLen int

func init() {
	keywords = map[string]Keyword{
		"SELECT":   SELECT,
		"FROM":     FROM,
		"WHERE":    WHERE,
		"GROUP":    GROUP,
		"BY":       BY,
		"ORDER":    ORDER,
		"LIMIT":    LIMIT,
		"OFFSET":   OFFSET,
		"AS":       AS,
		"DESC":     DESC,
		"ASC":      ASC,
		"CREATE":   CREATE,
		"TABLE":    TABLE,
		"IS":       IS,
		"NULL":     NULL,
		"AND":      AND,
		"OR":       OR,
		"NOT":      NOT,
		"HAVING":   HAVING,
		"DISTINCT": DISTINCT,
		"IN":       IN,
		"BETWEEN":  BETWEEN,
		"LIKE":     LIKE,

		// recognized-but-unexecuted statement keywords
		"INSERT": INSERT,
		"INTO":   INTO,
		"VALUES": VALUES,
		"UPDATE": UPDATE,
		"SET":    SET,
		"DELETE": DELETE,
		"DROP":   DROP,
		"INDEX":  INDEX,
		"JOIN":   JOIN,
	}
	for name := range keywords {
		if len(name) > maxKeywordLen {
			maxKeywordLen = len(name)
		}
	}
}

// LookupKeyword reports whether the ASCII-uppercased form of word names a
// keyword, and if so which one. Identifiers preserve their original case;
// only this lookup is case-folded.
func LookupKeyword(word string) (Keyword, bool) {
	if len(word) > maxKeywordLen {
		return NoKeyword, false
	}
	upper := []byte(word)
	for i, c := range upper {
		if c >= 'a' && c <= 'z' {
			upper[i] = c - ('a' - 'A')
		}
	}
	kw, ok := keywords[string(upper)]
	return kw, ok
}

// IsKeyword reports whether word (any case) names a keyword.
func IsKeyword(word string) bool {
	_, ok := LookupKeyword(word)
	return ok
}
