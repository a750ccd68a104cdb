package models

import "encoding/json"

// 名前付きのフィールド以外に受け付けた任意のフィールド（Extras）
// Mongoではドキュメントのトップレベルに、RDBではextrasカラムにJSONで保存する
// JSONではトップレベルに展開する

func keySet(keys ...string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// どのエンティティでも任意フィールドとして受け付けないキー
var reservedKeys = keySet("_id", "id", "createdAt", "extras")

// pickExtras rawから既知のキーと予約キーを除いた残り。なければnil
func pickExtras(raw map[string]interface{}, known map[string]bool) map[string]interface{} {
	extras := map[string]interface{}{}
	for k, v := range raw {
		if known[k] || reservedKeys[k] {
			continue
		}
		extras[k] = v
	}
	if len(extras) == 0 {
		return nil
	}
	return extras
}

func marshalWithExtras(v interface{}, extras map[string]interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extras) == 0 {
		return b, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	for k, val := range extras {
		if _, ok := doc[k]; !ok {
			doc[k] = val
		}
	}
	return json.Marshal(doc)
}

func unmarshalWithExtras(data []byte, v interface{}, known map[string]bool) (map[string]interface{}, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return pickExtras(doc, known), nil
}
