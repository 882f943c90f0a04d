// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible diagnostics in the user's language.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the catalog languages, the first being the fallback.
var Supported = []language.Tag{
	language.AmericanEnglish,
	language.Japanese,
}

// japanese maps en-US format keys to their ja-JP translations.
var japanese = map[string]string{
	"invalid number of arguments":          "引数の個数がただしくありません",
	"offset %d: cannot tokenize %q":        "%d文字目: %qはトークナイズできません",
	"offset %d: number %q is out of range": "%d文字目: 数%qは範囲外です",
	"offset %d: expected %q":               "%d文字目: %qではありません",
	"offset %d: expected a number, got %v": "%d文字目: 数ではありません (%v)",
	"operator":                             "記号",
	"number":                               "整数",
	"end of input":                         "終端",

	// emulator
	"intel noprefix syntax required":          "intel noprefix 構文が必要です",
	"directive syntax":                        "ディレクティブの構文が不正です",
	"directive invalid":                       "不明なディレクティブです",
	"label duplicated":                        "ラベルが重複しています",
	"opcode invalid":                          "不明な命令です",
	"excessive arguments":                     "オペランドが多すぎます",
	"value missing":                           "オペランドがありません",
	"register invalid":                        "レジスタが不正です",
	"immediate out of range":                  "即値が範囲外です",
	"ip out of program":                       "命令ポインタがプログラム外です",
	"stack empty":                             "スタックが空です",
	"stack full":                              "スタックが一杯です",
	"tick limit exceeded":                     "実行命令数の上限を超えました",
	"global entry %v missing":                 "グローバルな入口%vがありません",
	"'%v' is not a value or register":         "'%v'は値でもレジスタでもありません",
	"'%v' is not a valid expression":          "'%v'は正しい式ではありません",
	"'%v' evaluates to %d, accumulator is %d": "'%v'の値は%dですが、アキュムレータは%dです",
	"line %d '%v' %v":                         "%d行目 '%v' %v",
	"line %d %v":                              "%d行目 %v",
	"unknown arguments: %v":                   "不明な引数: %v",
}

var printer *message.Printer

func init() {
	for key, text := range japanese {
		_ = message.SetString(language.AmericanEnglish, key, key)
		_ = message.SetString(language.Japanese, key, text)
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("addsub: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = NewPrinter(locales...)
}

// NewPrinter returns a printer for the best supported match of locales.
func NewPrinter(locales ...string) *message.Printer {
	matcher := language.NewMatcher(Supported)
	_, index, _ := matcher.Match(parse(locales)...)
	return message.NewPrinter(Supported[index])
}

// parse converts locale names, silently dropping malformed ones.
func parse(locales []string) (tags []language.Tag) {
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
