package types

// Input 宿主传入的选中文本
type Input struct {
	Text string `json:"text"`
}

// Modifiers 调用完成时采样的修饰键状态
type Modifiers struct {
	Shift  bool `json:"shift"`
	Option bool `json:"option"`
}

// LanguageRecord languages.json 中的一条记录
type LanguageRecord struct {
	Name string `json:"name"`
}

// LanguageFile languages.json 的顶层结构
type LanguageFile struct {
	Langs []LanguageRecord `json:"langs"`
}
