// Package bullet maps DrawingML auto-number scheme tokens to bullet types and
// to the stable CSS class names used by the HTML renderer.
//
// The class names are part of the rendered output contract: external
// stylesheets select on them, so existing names never change. This includes
// the historical spelling "list_style_romon_lower_char_paren_r".
package bullet

import "fmt"

// Type identifies an auto-numbering scheme.
type Type int

// Auto-numbering schemes, in the order of the DrawingML ST_TextAutonumberScheme
// enumeration. ArabicPlain is the zero value.
const (
	ArabicPlain Type = iota
	AlphaLowerParenBoth
	AlphaUpperParenBoth
	AlphaLowerParenR
	AlphaUpperParenR
	AlphaLowerPeriod
	AlphaUpperPeriod
	ArabicParenBoth
	ArabicParenR
	ArabicPeriod
	RomanLowerParenBoth
	RomanUpperParenBoth
	RomanLowerParenR
	RomanUpperParenR
	RomanLowerPeriod
	RomanUpperPeriod
	CircleNumDoubleBytePlain
	CircleNumWingdingsBlackPlain
	CircleNumWingdingsWhitePlain
	ArabicDoubleBytePeriod
	ArabicDoubleBytePlain
	EastAsianSimplifiedChinesePeriod
	EastAsianSimplifiedChinesePlain
	EastAsianTraditionalChinesePeriod
	EastAsianTraditionalChinesePlain
	EastAsianJapaneseDoubleBytePeriod
	EastAsianJapaneseKoreanPlain
	EastAsianJapaneseKoreanPeriod
	Arabic1Minus
	Arabic2Minus
	Hebrew2Minus
	ThaiAlphaPeriod
	ThaiAlphaParenR
	ThaiAlphaParenBoth
	ThaiNumPeriod
	ThaiNumParenR
	ThaiNumParenBoth
	HindiAlphaPeriod
	HindiNumPeriod
	HindiNumParenR
	HindiAlpha1Period

	numTypes
)

// DefaultClass is the class name used for values outside the known range.
const DefaultClass = "list_style_default"

type entry struct {
	token string
	class string
}

var table = [numTypes]entry{
	ArabicPlain:                       {"arabicPlain", "list_style_arabic_plain"},
	AlphaLowerParenBoth:               {"alphaLcParenBoth", "list_style_alpha_lower_char_paren_both"},
	AlphaUpperParenBoth:               {"alphaUcParenBoth", "list_style_alpha_upper_char_paren_both"},
	AlphaLowerParenR:                  {"alphaLcParenR", "list_style_alpha_lower_char_paren_r"},
	AlphaUpperParenR:                  {"alphaUcParenR", "list_style_alpha_upper_char_paren_r"},
	AlphaLowerPeriod:                  {"alphaLcPeriod", "list_style_alpha_lower_char_period"},
	AlphaUpperPeriod:                  {"alphaUcPeriod", "list_style_alpha_upper_char_period"},
	ArabicParenBoth:                   {"arabicParenBoth", "list_style_arabic_paren_both"},
	ArabicParenR:                      {"arabicParenR", "list_style_arabic_paren_r"},
	ArabicPeriod:                      {"arabicPeriod", "list_style_arabic_period"},
	RomanLowerParenBoth:               {"romanLcParenBoth", "list_style_roman_lower_char_paren_both"},
	RomanUpperParenBoth:               {"romanUcParenBoth", "list_style_roman_upper_char_paren_both"},
	RomanLowerParenR:                  {"romanLcParenR", "list_style_romon_lower_char_paren_r"},
	RomanUpperParenR:                  {"romanUcParenR", "list_style_roman_upper_char_paren_r"},
	RomanLowerPeriod:                  {"romanLcPeriod", "list_style_roman_lower_char_period"},
	RomanUpperPeriod:                  {"romanUcPeriod", "list_style_roman_upper_char_period"},
	CircleNumDoubleBytePlain:          {"circleNumDbPlain", "list_style_circle_num_double_byte_plain"},
	CircleNumWingdingsBlackPlain:      {"circleNumWdBlackPlain", "list_style_circle_num_wingdings_black_plain"},
	CircleNumWingdingsWhitePlain:      {"circleNumWdWhitePlain", "list_style_circle_num_wingdings_white_plain"},
	ArabicDoubleBytePeriod:            {"arabicDbPeriod", "list_style_arabic_double_byte_period"},
	ArabicDoubleBytePlain:             {"arabicDbPlain", "list_style_arabic_double_byte_plain"},
	EastAsianSimplifiedChinesePeriod:  {"ea1ChsPeriod", "list_style_east_asian_simplified_chinese_period"},
	EastAsianSimplifiedChinesePlain:   {"ea1ChsPlain", "list_style_east_asian_simplified_chinese_plain"},
	EastAsianTraditionalChinesePeriod: {"ea1ChtPeriod", "list_style_east_asian_traditional_chinese_period"},
	EastAsianTraditionalChinesePlain:  {"ea1ChtPlain", "list_style_east_asian_traditional_chinese_plain"},
	EastAsianJapaneseDoubleBytePeriod: {"ea1JpnChsDbPeriod", "list_style_east_asian_japanese_double_byte_period"},
	EastAsianJapaneseKoreanPlain:      {"ea1JpnKorPlain", "list_style_east_asian_japanese_korean_plain"},
	EastAsianJapaneseKoreanPeriod:     {"ea1JpnKorPeriod", "list_style_east_asian_japanese_korean_period"},
	Arabic1Minus:                      {"arabic1Minus", "list_style_arabic_1_minus"},
	Arabic2Minus:                      {"arabic2Minus", "list_style_arabic_2_minus"},
	Hebrew2Minus:                      {"hebrew2Minus", "list_style_hebrew_2_minus"},
	ThaiAlphaPeriod:                   {"thaiAlphaPeriod", "list_style_thai_alpha_period"},
	ThaiAlphaParenR:                   {"thaiAlphaParenR", "list_style_thai_alpha_paren_r"},
	ThaiAlphaParenBoth:                {"thaiAlphaParenBoth", "list_style_thai_alpha_paren_both"},
	ThaiNumPeriod:                     {"thaiNumPeriod", "list_style_thai_num_period"},
	ThaiNumParenR:                     {"thaiNumParenR", "list_style_thai_num_paren_r"},
	ThaiNumParenBoth:                  {"thaiNumParenBoth", "list_style_thai_num_paren_both"},
	HindiAlphaPeriod:                  {"hindiAlphaPeriod", "list_style_hindi_alpha_period"},
	HindiNumPeriod:                    {"hindiNumPeriod", "list_style_hindi_num_period"},
	HindiNumParenR:                    {"hindiNumParenR", "list_style_hindi_num_paren_r"},
	HindiAlpha1Period:                 {"hindiAlpha1Period", "list_style_hindi_alpha_1_period"},
}

var byToken = func() map[string]Type {
	m := make(map[string]Type, numTypes)
	for i, e := range table {
		m[e.token] = Type(i)
	}
	return m
}()

// Count is the number of known bullet types.
const Count = int(numTypes)

// Lookup returns the type for a scheme token.
func Lookup(token string) (Type, bool) {
	t, ok := byToken[token]
	return t, ok
}

// Classify returns the type for a scheme token, or def when the token is not
// recognised.
func Classify(token string, def Type) Type {
	if t, ok := byToken[token]; ok {
		return t
	}
	return def
}

// ClassName returns the stylesheet class for t.
func ClassName(t Type) string {
	if !t.Valid() {
		return DefaultClass
	}
	return table[t].class
}

// Valid reports whether t is a known bullet type.
func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// Token returns the scheme token for t, or "" when t is not valid.
func (t Type) Token() string {
	if !t.Valid() {
		return ""
	}
	return table[t].token
}

// String returns the scheme token, or a placeholder for unknown values.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return table[t].token
}

// Types returns all known types in enumeration order.
func Types() []Type {
	out := make([]Type, numTypes)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}
