package rewrite_test

import (
	"fmt"

	"github.com/npillmayer/tnorm/charset"
	"github.com/npillmayer/tnorm/rewrite"
)

func ExampleCompose() {
	currency, _ := rewrite.Compose(
		// HK$五點五 → 五點五蚊
		rewrite.PassThrough(rewrite.Concat(
			rewrite.Delete(rewrite.Literal("HK$", "$")),
			rewrite.InsertAfter(rewrite.Number(charset.NumeralDigit, charset.DecimalSeparator), "蚊"),
		)),
		// 點五蚊 → 個半蚊
		rewrite.PassThrough(rewrite.CrossLiteral("點五蚊", "個半蚊")),
	)
	out, _ := currency.Apply("HK$五點五")
	fmt.Println(out)
	// Output: 五個半蚊
}

func ExamplePassThrough() {
	tag := rewrite.InsertAround(rewrite.Span(charset.Digit), "<num>", "</num>")
	_, err := tag.Apply("room 101")
	fmt.Println(err != nil)
	out, _ := rewrite.PassThrough(tag).Apply("room 101")
	fmt.Println(out)
	// Output:
	// true
	// room <num>101</num>
}
