package data

import (
	"strings"

	"github.com/paperlang/paper/lexer"
)

// currencyIndex is the built lookup surface over CurrenciesDocument: the
// classifier-facing code/name/spaced-symbol checks, the lexer-facing
// adjacent-symbol tables, and minor-unit counts for display rounding.
type currencyIndex struct {
	codes            map[string]bool
	names            map[string]bool
	spacedSymbols    map[string]string
	minorUnitsByCode map[string]int
	symbols          lexer.SymbolTables
}

func buildCurrencyIndex(doc CurrenciesDocument) *currencyIndex {
	idx := &currencyIndex{
		codes:            make(map[string]bool),
		names:            make(map[string]bool),
		spacedSymbols:    make(map[string]string),
		minorUnitsByCode: make(map[string]int),
		symbols: lexer.SymbolTables{
			Unambiguous: make(map[string]string),
			Ambiguous:   make(map[string]string),
		},
	}

	for _, c := range doc.Unambiguous {
		code := strings.ToUpper(c.Code)
		idx.codes[strings.ToLower(code)] = true
		idx.minorUnitsByCode[code] = c.MinorUnits
		for _, name := range c.Names {
			idx.names[strings.ToLower(name)] = true
		}
		for _, sym := range c.SymbolAdjacent {
			idx.symbols.Unambiguous[sym] = code
		}
		for _, sym := range c.SymbolSpaced {
			idx.spacedSymbols[strings.ToLower(sym)] = code
		}
	}

	for _, name := range doc.Ambiguous.Name {
		idx.names[strings.ToLower(name)] = true
	}
	for _, sym := range doc.Ambiguous.SymbolAdjacent {
		idx.symbols.Ambiguous[sym.Symbol] = sym.Dimension
	}
	for _, sym := range doc.Ambiguous.SymbolSpaced {
		idx.spacedSymbols[strings.ToLower(sym.Symbol)] = sym.Dimension
	}

	return idx
}

func (idx *currencyIndex) isCode(name string) bool {
	return idx.codes[strings.ToLower(name)]
}

func (idx *currencyIndex) isName(name string) bool {
	return idx.names[strings.ToLower(name)]
}

func (idx *currencyIndex) spacedSymbol(name string) (string, bool) {
	code, ok := idx.spacedSymbols[strings.ToLower(name)]
	return code, ok
}

func (idx *currencyIndex) minorUnits(code string) int {
	if n, ok := idx.minorUnitsByCode[strings.ToUpper(code)]; ok {
		return n
	}
	return 2
}

func (idx *currencyIndex) symbolTables() *lexer.SymbolTables {
	return &idx.symbols
}
