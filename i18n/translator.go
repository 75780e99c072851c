package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "duplicate_key":
			return "キーが重複しています"
		case "too_short":
			return "短すぎます"
		case "too_long":
			return "長すぎます"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "打ち切られました"
		case "dependency_unavailable":
			return "依存先サービスが利用できません"
		case "additional_property":
			return "未知のプロパティです"
		case "unevaluated_property":
			return "未評価のプロパティです"
		case "unevaluated_item":
			return "未評価の要素です"
		case "too_few_items":
			return "配列の要素が少なすぎます"
		case "too_many_items":
			return "配列の要素が多すぎます"
		case "too_few_properties":
			return "プロパティの数が少なすぎます"
		case "too_many_properties":
			return "プロパティの数が多すぎます"
		case "minimum":
			return "最小値を下回っています"
		case "maximum":
			return "最大値を超えています"
		case "multiple_of":
			return "倍数条件を満たしていません"
		case "pattern":
			return "パターンに一致しません"
		case "format":
			return "フォーマットを満たしていません"
		case "enum":
			return "列挙値のいずれにも一致しません"
		case "const":
			return "固定値と一致しません"
		case "not":
			return "否定スキーマに一致してしまいました"
		case "unique_items":
			return "要素が重複しています"
		case "contains":
			return "containsの条件を満たしていません"
		case "property_names":
			return "プロパティ名がスキーマを満たしていません"
		case "dependent_required":
			return "依存プロパティが不足しています"
		case "one_of":
			return "oneOfの条件を満たしていません"
		case "any_of":
			return "anyOfの条件を満たしていません"
		case "all_of":
			return "allOfの条件を満たしていません"
		case "unresolved_ref":
			return "$refを解決できません"
		case "cyclic_ref":
			return "$refが循環しています"
		case "duplicate_id":
			return "$idが重複しています"
		case "unsupported_draft":
			return "サポートされていないドラフトです"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "duplicate_key":
			return "duplicate key"
		case "too_short":
			return "too short"
		case "too_long":
			return "too long"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "truncated"
		case "dependency_unavailable":
			return "dependency unavailable"
		case "additional_property":
			return "additional property not allowed"
		case "unevaluated_property":
			return "unevaluated property not allowed"
		case "unevaluated_item":
			return "unevaluated item not allowed"
		case "too_few_items":
			return "array has too few items"
		case "too_many_items":
			return "array has too many items"
		case "too_few_properties":
			return "object has too few properties"
		case "too_many_properties":
			return "object has too many properties"
		case "minimum":
			return "value is below the minimum"
		case "maximum":
			return "value is above the maximum"
		case "multiple_of":
			return "value is not a multiple of the required divisor"
		case "pattern":
			return "value does not match pattern"
		case "format":
			return "value does not satisfy format"
		case "enum":
			return "value is not one of the enumerated values"
		case "const":
			return "value does not equal the const value"
		case "not":
			return "value must not validate against the not schema"
		case "unique_items":
			return "array elements are not unique"
		case "contains":
			return "array does not satisfy contains"
		case "property_names":
			return "a property name does not satisfy propertyNames"
		case "dependent_required":
			return "a dependent required property is missing"
		case "one_of":
			return "value does not satisfy exactly one schema in oneOf"
		case "any_of":
			return "value does not satisfy any schema in anyOf"
		case "all_of":
			return "value does not satisfy all schemas in allOf"
		case "unresolved_ref":
			return "$ref could not be resolved"
		case "cyclic_ref":
			return "$ref forms a cycle"
		case "duplicate_id":
			return "duplicate $id"
		case "unsupported_draft":
			return "unsupported draft"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
