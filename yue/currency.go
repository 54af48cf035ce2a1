package yue

import (
	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/rewrite"
	"github.com/npillmayer/tnorm/ruletable"
)

// CurrencyData holds the data for localizing currency expressions.
//
// A currency token (e.g. "HK$") in front of a numeric value, possibly wrapped in
// markup by an upstream tagger (e.g. `currency: "HK$"`), is deleted, and the
// Cantonese currency particle is inserted after the value. Currency names
// are replaced by the particle. Finally, idioms rewrite decimal amounts into
// their colloquial forms. Idioms are applied one after the other, in order.
type CurrencyData struct {
	Tokens       []string          // currency tokens read as the local currency
	MarkupPrefix string            // markup preceding a token
	MarkupSuffix string            // markup following a token
	Particle     string            // local currency particle
	Names        []ruletable.Entry // currency names → particle
	Idioms       []ruletable.Entry // ordered list of idioms
}

// DefaultCurrency is the currency data for Hong Kong dollars.
var DefaultCurrency = CurrencyData{
	Tokens:       []string{"HKD", "HK＄", "HK$", "$"},
	MarkupPrefix: `currency: "`,
	MarkupSuffix: `"`,
	Particle:     "蚊",
	Names: []ruletable.Entry{
		{Input: "美元", Output: "蚊"},
		{Input: "港元", Output: "蚊"},
		{Input: "港幣", Output: "蚊"},
	},
	Idioms: decimalIdioms(),
}

// decimalIdioms: 點五蚊 → 個半蚊, then 點X蚊 → 個X.
func decimalIdioms() []ruletable.Entry {
	idioms := []ruletable.Entry{{Input: "點五蚊", Output: "個半蚊"}}
	for _, d := range []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"} {
		idioms = append(idioms, ruletable.Entry{Input: "點" + d + "蚊", Output: "個" + d})
	}
	return idioms
}

// currencyRelations returns the relations of the currency stage, in order:
//
//  1. token before a numeral: delete the token (and its markup), append the particle
//  2. currency names → particle
//  3. one relation per idiom
//
func currencyRelations(cd CurrencyData) ([]*rewrite.Relation, error) {
	var rels []*rewrite.Relation
	if len(cd.Tokens) > 0 {
		token := rewrite.Literal(cd.Tokens...)
		denomination := rewrite.Delete(token)
		if cd.MarkupPrefix != "" {
			markup := []*rewrite.Relation{
				rewrite.Delete(rewrite.Literal(cd.MarkupPrefix)),
				rewrite.Delete(token),
			}
			if cd.MarkupSuffix != "" {
				markup = append(markup, rewrite.Delete(rewrite.Literal(cd.MarkupSuffix)))
			}
			denomination = rewrite.Union(rewrite.Concat(markup...), denomination)
		}
		rels = append(rels, rewrite.Concat(
			denomination,
			rewrite.Optional(rewrite.Delete(rewrite.Span(charset.Space))),
			rewrite.InsertAfter(rewrite.Number(charset.NumeralDigit, charset.DecimalSeparator), cd.Particle),
		).Named("currency-token"))
	}
	if len(cd.Names) > 0 {
		names, err := ruletable.FromEntries("currency-names", cd.Names, true)
		if err != nil {
			return nil, err
		}
		rels = append(rels, rewrite.FromTable(names).Named("currency-names"))
	}
	for _, idiom := range cd.Idioms {
		rels = append(rels, rewrite.CrossLiteral(idiom.Input, idiom.Output).Named("idiom-"+idiom.Input))
	}
	return rels, nil
}
