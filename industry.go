package stockmanager

import "strings"

// UnknownIndustry is the label of stocks no lookup could classify.
const UnknownIndustry = "unknown"

// IndustryLookup classifies a stock code into an industry.
type IndustryLookup interface {
	Industry(stockCode string) (industry string, ok bool)
}

// IndustryMap is a static stock code to industry table.
type IndustryMap map[string]string

func (m IndustryMap) Industry(code string) (string, bool) {
	v, ok := m[code]
	return v, ok && v != ""
}

// ExchangeBoards classifies mainland China A-shares by the listing board
// encoded in the first three digits of their code.
type ExchangeBoards struct{}

var boardPrefixes = []struct {
	prefixes []string
	board    string
}{
	{[]string{"600", "601", "603", "605"}, "Shanghai main board"},
	{[]string{"000", "001"}, "Shenzhen main board"},
	{[]string{"002", "003"}, "SME board"},
	{[]string{"300", "301"}, "ChiNext"},
	{[]string{"688", "689"}, "STAR market"},
}

func (ExchangeBoards) Industry(code string) (string, bool) {
	for _, b := range boardPrefixes {
		for _, p := range b.prefixes {
			if strings.HasPrefix(code, p) {
				return b.board, true
			}
		}
	}
	return "", false
}

// Industries chains lookups, the first one that knows the code wins.
type Industries []IndustryLookup

func (l Industries) Industry(code string) (string, bool) {
	for _, lookup := range l {
		if lookup == nil {
			continue
		}
		if v, ok := lookup.Industry(code); ok {
			return v, true
		}
	}
	return "", false
}

// industryOf returns the industry of code, or UnknownIndustry.
func industryOf(lookup IndustryLookup, code string) string {
	if lookup == nil {
		return UnknownIndustry
	}
	if v, ok := lookup.Industry(code); ok {
		return v
	}
	return UnknownIndustry
}
